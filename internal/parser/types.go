package parser

type IntentKind int

const (
	Command IntentKind = iota
	Help
	Unknown
)

// Intent is one parsed command-bar line.
type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ArgKind says how a command's argument is resolved.
type ArgKind int

const (
	ArgNone ArgKind = iota
	ArgGame
	ArgNumber
	ArgBank
	ArgDate
)

type CommandDef struct {
	Canonical string
	Aliases   []string
	Arg       ArgKind
	Required  bool
	Summary   string
}
