package parser

import "testing"

func TestNormalisationTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  RANKINGS  ", want: "rankings"},
		{in: "date 2025-08-30!!", want: "date 2025 08 30"},
		{in: "bank   KB국민", want: "bank kb국민"},
	}
	for _, tc := range tests {
		got := normaliseInput(tc.in)
		if got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestAliasMapsToCanonical(t *testing.T) {
	p := New()
	tests := map[string]string{
		"cal":         "calendar",
		"menu":        "home",
		"leaderboard": "rankings",
		"q":           "quit",
		"buy tickets": "ticketing",
		"commands":    "help",
	}
	for in, want := range tests {
		intent := p.Parse(in)
		if intent.Verb != want {
			t.Fatalf("Parse(%q) verb=%q want=%q", in, intent.Verb, want)
		}
		if intent.Clarify != nil {
			t.Fatalf("Parse(%q) unexpected clarify: %+v", in, intent.Clarify)
		}
	}
}

func TestTypoMapsToCommand(t *testing.T) {
	p := New()
	intent := p.Parse("calender")
	if intent.Verb != "calendar" {
		t.Fatalf("expected calendar verb, got %q", intent.Verb)
	}
	if intent.Confidence < 0.6 {
		t.Fatalf("expected decent confidence for typo correction, got %.2f", intent.Confidence)
	}
}

func TestRankingsGameArgument(t *testing.T) {
	p := New()
	tests := map[string]string{
		"rankings grape":     "grape",
		"ranks ticketing":    "ticket",
		"leaderboard tickte": "ticket",
		"top podo":           "grape",
	}
	for in, want := range tests {
		intent := p.Parse(in)
		if intent.Verb != "rankings" || len(intent.Args) != 1 || intent.Args[0] != want {
			t.Fatalf("Parse(%q) = %q %v, want rankings [%s]", in, intent.Verb, intent.Args, want)
		}
	}
	if intent := p.Parse("rankings"); intent.Clarify != nil || len(intent.Args) != 0 {
		t.Fatalf("expected optional game argument, got %+v", intent)
	}
	if intent := p.Parse("rankings calendar"); intent.Clarify == nil {
		t.Fatalf("expected clarify for unknown game")
	}
}

func TestPageNeedsNumber(t *testing.T) {
	p := New()
	if intent := p.Parse("page 3"); intent.Verb != "page" || intent.Args[0] != "3" {
		t.Fatalf("expected page 3, got %+v", intent)
	}
	if intent := p.Parse("page"); intent.Clarify == nil {
		t.Fatalf("expected clarify for page without a number")
	}
	if intent := p.Parse("page zero"); intent.Clarify == nil {
		t.Fatalf("expected clarify for a non-numeric page")
	}
}

func TestMatchBank(t *testing.T) {
	tests := map[string]string{
		"신한":      "신한",
		"KB국민":    "KB국민",
		"kb":      "KB국민",
		"Shinhan": "신한",
		"shinhn":  "신한",
		"woori":   "우리",
		"kakao":   "카카오",
		"hanna":   "하나",
	}
	for in, want := range tests {
		got, ok := MatchBank(in)
		if !ok || got != want {
			t.Fatalf("MatchBank(%q)=%q,%v want %q", in, got, ok, want)
		}
	}
	for _, in := range []string{"", "citibank", "x"} {
		if got, ok := MatchBank(in); ok {
			t.Fatalf("MatchBank(%q) unexpectedly matched %q", in, got)
		}
	}
}

func TestBankCommand(t *testing.T) {
	p := New()
	intent := p.Parse("bank kookmin")
	if intent.Verb != "bank" || len(intent.Args) != 1 || intent.Args[0] != "KB국민" {
		t.Fatalf("expected bank KB국민, got %+v", intent)
	}
	if intent := p.Parse("bank citibank"); intent.Clarify == nil {
		t.Fatalf("expected clarify for unknown bank")
	}
}

func TestDateCommand(t *testing.T) {
	p := New()
	tests := map[string]string{
		"date 30":         "2025-08-30",
		"date 2025-08-31": "2025-08-31",
		"day sunday":      "2025-08-31",
		"date sat":        "2025-08-30",
	}
	for in, want := range tests {
		intent := p.Parse(in)
		if intent.Verb != "date" || len(intent.Args) != 1 || intent.Args[0] != want {
			t.Fatalf("Parse(%q) = %+v, want %s", in, intent, want)
		}
	}
	if intent := p.Parse("date 29"); intent.Clarify == nil {
		t.Fatalf("expected clarify for a date without a show")
	}
}

func TestUnknownReturnsClarify(t *testing.T) {
	p := New()
	intent := p.Parse("dance wildly")
	if intent.Kind != Unknown || intent.Clarify == nil {
		t.Fatalf("expected unknown with clarify, got %+v", intent)
	}
}

func TestHelpKind(t *testing.T) {
	p := New()
	if intent := p.Parse("help"); intent.Kind != Help {
		t.Fatalf("expected help kind, got %v", intent.Kind)
	}
	if len(p.Commands()) == 0 || p.Commands()[0].Canonical != "help" {
		t.Fatalf("expected commands in registration order")
	}
}
