package theme

import (
	"testing"
	"unicode/utf8"
)

func runeWidth(s string) int32 { return int32(utf8.RuneCountInString(s)) * 10 }

func TestFitTextKeepsShortText(t *testing.T) {
	if got := fitText("karina", 60, runeWidth); got != "karina" {
		t.Fatalf("expected text untouched, got %q", got)
	}
	if got := fitText("karina", 0, runeWidth); got != "karina" {
		t.Fatalf("zero width should not cut, got %q", got)
	}
}

func TestFitTextCutsOnRunes(t *testing.T) {
	got := fitText("에스파 콘서트 티켓팅", 50, runeWidth)
	if got != "에스파 …" {
		t.Fatalf("unexpected fit %q", got)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("fit produced invalid utf8 %q", got)
	}
}

func TestFitTextFallsBackToEllipsis(t *testing.T) {
	if got := fitText("winter", 5, runeWidth); got != ellipsis {
		t.Fatalf("expected bare ellipsis, got %q", got)
	}
}
