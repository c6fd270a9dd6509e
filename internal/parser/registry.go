package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type commandPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Registry struct {
	commands map[string]CommandDef
	order    []string
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]CommandDef)}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if _, ok := r.commands[c.Canonical]; !ok {
		r.order = append(r.order, c.Canonical)
	}
	r.commands[c.Canonical] = c

	for _, a := range append([]string{c.Canonical}, c.Aliases...) {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, commandPhrase{canonical: c.Canonical, alias: n, tokens: tokenise(n)})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

// Commands lists definitions in registration order.
func (r *Registry) Commands() []CommandDef {
	out := make([]CommandDef, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

type commandCandidate struct {
	Canonical string
	Consumed  int
	Score     float64
}

// matchCommand scores every phrase against the leading tokens: exact and
// alias hits first, then single-word prefixes, then edit distance.
func (r *Registry) matchCommand(tokens []string) (commandCandidate, []commandCandidate) {
	if len(tokens) == 0 {
		return commandCandidate{}, nil
	}
	cands := make([]commandCandidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		consumed := min(len(tokens), len(phrase.tokens))
		prefix := strings.Join(tokens[:consumed], " ")

		switch {
		case consumed == len(phrase.tokens) && prefix == phrase.alias:
			score := 1.0
			if phrase.alias != phrase.canonical {
				score = 0.97
			}
			cands = append(cands, commandCandidate{phrase.canonical, consumed, score})
		case len(phrase.tokens) == 1 && len([]rune(tokens[0])) >= 2 && strings.HasPrefix(phrase.alias, tokens[0]):
			cands = append(cands, commandCandidate{phrase.canonical, 1, 0.9})
		case len([]rune(prefix)) >= 3:
			dist := levenshtein.ComputeDistance(prefix, phrase.alias)
			if dist > levenshteinLimit(len([]rune(phrase.alias))) {
				continue
			}
			score := 0.72 - 0.08*float64(dist)
			if phrase.alias != phrase.canonical {
				score += 0.03
			}
			cands = append(cands, commandCandidate{phrase.canonical, consumed, score})
		}
	}
	if len(cands) == 0 {
		return commandCandidate{}, nil
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			if cands[i].Consumed == cands[j].Consumed {
				return cands[i].Canonical < cands[j].Canonical
			}
			return cands[i].Consumed > cands[j].Consumed
		}
		return cands[i].Score > cands[j].Score
	})

	best := cands[0]
	alts := make([]commandCandidate, 0, 3)
	seen := map[string]bool{best.Canonical: true}
	for _, c := range cands[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) == cap(alts) {
			break
		}
	}
	return best, alts
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands"}, Summary: "list commands"},
		{Canonical: "home", Aliases: []string{"main", "menu", "back"}, Summary: "return to the main screen"},
		{Canonical: "grape", Aliases: []string{"podo", "grape game", "play grape"}, Summary: "start the grape-finding game"},
		{Canonical: "ticketing", Aliases: []string{"ticket", "tickets", "buy tickets"}, Summary: "start the ticketing practice"},
		{Canonical: "calendar", Aliases: []string{"cal", "schedule", "events"}, Summary: "open the concert calendar"},
		{Canonical: "rankings", Aliases: []string{"ranking", "ranks", "leaderboard", "top"}, Arg: ArgGame, Summary: "show a leaderboard (grape or ticket)"},
		{Canonical: "retry", Aliases: []string{"again", "play again"}, Summary: "play the current ranking's game again"},
		{Canonical: "next", Aliases: []string{"next page"}, Summary: "next ranking page"},
		{Canonical: "prev", Aliases: []string{"previous", "prev page"}, Summary: "previous ranking page"},
		{Canonical: "page", Arg: ArgNumber, Required: true, Summary: "jump to a ranking page"},
		{Canonical: "bank", Arg: ArgBank, Required: true, Summary: "pick the paying bank"},
		{Canonical: "date", Aliases: []string{"day"}, Arg: ArgDate, Required: true, Summary: "pick the concert date"},
		{Canonical: "quit", Aliases: []string{"exit", "q"}, Summary: "leave PODO RUSH"},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
