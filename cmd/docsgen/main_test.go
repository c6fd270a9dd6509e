package main

import (
	"strings"
	"testing"
)

func TestTicketingDocListsTotals(t *testing.T) {
	doc := generateTicketingDoc()
	for _, want := range []string{"312,500", "154,000", "| Credit card | yes |", "2025-08-30"} {
		if !strings.Contains(doc.Content, want) {
			t.Fatalf("ticketing doc missing %q", want)
		}
	}
}

func TestStorageDocListsKeys(t *testing.T) {
	doc := generateStorageDoc()
	for _, want := range []string{"podo_grape_rankings", "podo_ticket_rankings", "podo_last_grape_name", "podo_last_ticket_name"} {
		if !strings.Contains(doc.Content, want) {
			t.Fatalf("storage doc missing %q", want)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	if got := formatFloat(0.7); got != "0.7" {
		t.Fatalf("formatFloat(0.7) = %q", got)
	}
	if got := formatFloat(1); got != "1" {
		t.Fatalf("formatFloat(1) = %q", got)
	}
}
