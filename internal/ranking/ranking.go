// Package ranking keeps the per-game leaderboards in the local store.
package ranking

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/appengine-ltd/podo-rush/internal/game"
)

// Game describes where one game keeps its leaderboard and which JSON field
// carries the player's name.
type Game struct {
	Slug        string
	Title       string
	Key         string
	LastNameKey string
	NameField   string
}

var (
	Grape = Game{
		Slug:        "grape",
		Title:       "Grape Finding",
		Key:         "podo_grape_rankings",
		LastNameKey: "podo_last_grape_name",
		NameField:   "nickname",
	}
	Ticket = Game{
		Slug:        "ticket",
		Title:       "Ticketing",
		Key:         "podo_ticket_rankings",
		LastNameKey: "podo_last_ticket_name",
		NameField:   "name",
	}
)

var Games = []Game{Grape, Ticket}

func GameBySlug(slug string) (Game, error) {
	s := strings.ToLower(strings.TrimSpace(slug))
	for _, g := range Games {
		if g.Slug == s {
			return g, nil
		}
	}
	if s == "ticketing" {
		return Ticket, nil
	}
	return Game{}, fmt.Errorf("unknown game %q (want grape or ticket)", slug)
}

// Entry is one finished run. Time is in milliseconds.
type Entry struct {
	Name string
	Time float64
}

func NewEntry(name string, elapsed time.Duration) Entry {
	return Entry{Name: name, Time: game.Millis(elapsed)}
}

func (e Entry) Elapsed() time.Duration {
	return game.FromMillis(e.Time)
}

type wireEntry struct {
	Nickname *string `json:"nickname,omitempty"`
	Name     *string `json:"name,omitempty"`
	Time     float64 `json:"time"`
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var w wireEntry
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.Nickname != nil:
		e.Name = *w.Nickname
	case w.Name != nil:
		e.Name = *w.Name
	default:
		e.Name = ""
	}
	e.Time = w.Time
	return nil
}

// toWire shapes entries the way the game's stored list names them.
func toWire(g Game, entries []Entry) []wireEntry {
	out := make([]wireEntry, len(entries))
	for i, e := range entries {
		name := e.Name
		out[i].Time = e.Time
		if g.NameField == "nickname" {
			out[i].Nickname = &name
		} else {
			out[i].Name = &name
		}
	}
	return out
}

// FoldName is the form names are compared in: trimmed, NFC-normalized and
// case-folded.
func FoldName(name string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(name)))
}

// Highlighted reports whether entry belongs to the last player of the game.
func Highlighted(e Entry, lastName string) bool {
	last := strings.TrimSpace(lastName)
	return last != "" && strings.TrimSpace(e.Name) == last
}
