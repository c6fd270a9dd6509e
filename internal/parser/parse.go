package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/podo-rush/internal/game"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Commands() []CommandDef {
	return p.registry.Commands()
}

func (p *Parser) Parse(raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Type a command, or help."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	match, alternates := p.registry.matchCommand(tokens)
	if match.Canonical == "" || match.Score < 0.5 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Unknown command. Try help, home, grape, ticketing, calendar, rankings, quit.",
		}
		return intent
	}

	if len(alternates) > 0 && (match.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				{Raw: raw, Normalised: match.Canonical, Kind: commandKind(match.Canonical), Verb: match.Canonical, Confidence: match.Score},
				{Raw: raw, Normalised: alternates[0].Canonical, Kind: commandKind(alternates[0].Canonical), Verb: alternates[0].Canonical, Confidence: alternates[0].Score},
			},
		}
		return intent
	}

	intent.Verb = match.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(match.Score)

	def, _ := p.registry.command(intent.Verb)
	rest := tokens[match.Consumed:]
	if def.Arg == ArgNone {
		return intent
	}
	if len(rest) == 0 {
		if def.Required {
			intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs %s.", def.Canonical, argHint(def.Arg))}
			intent.Confidence = 0.42
		}
		return intent
	}

	arg, score, ok := resolveArg(def.Arg, rest)
	if !ok {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs %s.", def.Canonical, argHint(def.Arg))}
		intent.Confidence = 0.42
		return intent
	}
	intent.Args = []string{arg}
	intent.Confidence = clampScore(intent.Confidence*0.75 + score*0.25)
	return intent
}

func commandKind(verb string) IntentKind {
	if verb == "help" {
		return Help
	}
	return Command
}

func argHint(k ArgKind) string {
	switch k {
	case ArgGame:
		return "grape or ticket"
	case ArgNumber:
		return "a page number"
	case ArgBank:
		return "a bank (" + strings.Join(game.Banks, ", ") + ")"
	case ArgDate:
		return "a date (30 or 31)"
	default:
		return "an argument"
	}
}

func resolveArg(k ArgKind, tokens []string) (string, float64, bool) {
	switch k {
	case ArgGame:
		return resolveGame(tokens[0])
	case ArgNumber:
		n, err := strconv.Atoi(tokens[0])
		if err != nil || n < 1 {
			return "", 0, false
		}
		return strconv.Itoa(n), 1, true
	case ArgBank:
		bank, ok := MatchBank(strings.Join(tokens, " "))
		return bank, 1, ok
	case ArgDate:
		return resolveDate(tokens)
	default:
		return "", 0, false
	}
}

var gameWords = map[string]string{
	"grape":     "grape",
	"grapes":    "grape",
	"podo":      "grape",
	"ticket":    "ticket",
	"tickets":   "ticket",
	"ticketing": "ticket",
}

func resolveGame(token string) (string, float64, bool) {
	if g, ok := gameWords[token]; ok {
		return g, 1, true
	}
	best, bestDist := "", 99
	for word, g := range gameWords {
		d := levenshtein.ComputeDistance(token, word)
		if d < bestDist || (d == bestDist && g < best) {
			best, bestDist = g, d
		}
	}
	if bestDist > 2 {
		return "", 0, false
	}
	return best, 0.8, true
}

var bankAliases = map[string]string{
	"신한":      "신한",
	"shinhan": "신한",
	"kb국민":    "KB국민",
	"kb":      "KB국민",
	"국민":      "KB국민",
	"kookmin": "KB국민",
	"우리":      "우리",
	"woori":   "우리",
	"하나":      "하나",
	"hana":    "하나",
	"카카오":     "카카오",
	"kakao":   "카카오",
}

// MatchBank maps free text (romanised or Hangul, small typos allowed) to
// one of the offered banks.
func MatchBank(raw string) (string, bool) {
	n := strings.ReplaceAll(normaliseInput(raw), " ", "")
	if n == "" {
		return "", false
	}
	if bank, ok := bankAliases[n]; ok {
		return bank, true
	}
	best, bestDist := "", 99
	for alias, bank := range bankAliases {
		d := levenshtein.ComputeDistance(n, alias)
		if d < bestDist || (d == bestDist && bank < best) {
			best, bestDist = bank, d
		}
	}
	if bestDist > 1 || len([]rune(n)) < 3 {
		return "", false
	}
	return best, true
}

func resolveDate(tokens []string) (string, float64, bool) {
	joined := strings.Join(tokens, "-")
	for _, opt := range game.ConcertDates {
		day := opt.Value[len(opt.Value)-2:]
		if joined == opt.Value || joined == day {
			return opt.Value, 1, true
		}
	}
	switch tokens[0] {
	case "sat", "saturday":
		return game.ConcertDates[0].Value, 0.9, true
	case "sun", "sunday":
		return game.ConcertDates[1].Value, 0.9, true
	case "1", "first":
		return game.ConcertDates[0].Value, 0.8, true
	case "2", "second":
		return game.ConcertDates[1].Value, 0.8, true
	}
	return "", 0, false
}

func clampScore(v float64) float64 {
	return max(0, min(1, v))
}
