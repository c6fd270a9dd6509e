package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/appengine-ltd/podo-rush/internal/game"
	"github.com/appengine-ltd/podo-rush/internal/ranking"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateGrapeDoc(),
		generateTicketingDoc(),
		generateCalendarDoc(),
		generateStorageDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Game Reference\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateGrapeDoc() docFile {
	var b strings.Builder
	b.WriteString("# Grape Finding\n\n")
	b.WriteString("Source: `internal/game/grape.go`.\n\n")
	b.WriteString(fmt.Sprintf("The board is a %dx%d grid (%d cells). ", game.GrapeGridSize, game.GrapeGridSize, game.GrapeCellCount))
	b.WriteString(fmt.Sprintf("Picking an area hides **%d** grapes in distinct cells; the timer stops when all are found.\n\n", game.GrapeTargetCount))

	b.WriteString("| Area |\n")
	b.WriteString("| --- |\n")
	for i := range game.GrapeAreaCount {
		b.WriteString("| ")
		b.WriteString(game.AreaLabel(i))
		b.WriteString(" |\n")
	}
	b.WriteString("\n")
	b.WriteString(nicknameRules(ranking.Grape))

	return docFile{Name: "grape.md", Title: "Grape Finding", Content: b.String()}
}

func generateTicketingDoc() docFile {
	var b strings.Builder
	b.WriteString("# Ticketing\n\n")
	b.WriteString("Source: `internal/game/ticketing.go`.\n\n")
	b.WriteString(fmt.Sprintf("Concert: **%s**.\n\n", escape(game.ConcertTitle)))

	b.WriteString("## Steps\n\n")
	for s := game.StepName; s <= game.StepDone; s++ {
		b.WriteString(fmt.Sprintf("%d. %s\n", int(s)+1, s))
	}

	b.WriteString("\n## Schedule\n\n")
	b.WriteString("| Date | Times |\n")
	b.WriteString("| --- | --- |\n")
	times := make([]string, 0, len(game.ShowTimes))
	for _, t := range game.ShowTimes {
		times = append(times, t.Label)
	}
	for _, d := range game.ConcertDates {
		b.WriteString(fmt.Sprintf("| %s | %s |\n", escape(d.Label), strings.Join(times, ", ")))
	}

	b.WriteString("\n## Seats\n\n")
	b.WriteString(fmt.Sprintf("%d rows of %d seats (%d total). Each seat is open with probability %s. ",
		game.SeatRows, game.SeatColumns, game.SeatCount, formatFloat(game.SeatAvailability)))
	b.WriteString(fmt.Sprintf("At most %d seats can be held; the quantity must match the held seats.\n\n", game.MaxSelectedSeats))

	b.WriteString("## Price\n\n")
	b.WriteString("| Item | Amount |\n")
	b.WriteString("| --- | --- |\n")
	b.WriteString(fmt.Sprintf("| Ticket (each) | %s |\n", game.FormatWon(game.TicketPrice)))
	b.WriteString(fmt.Sprintf("| Booking fee | %s |\n", game.FormatWon(game.BookingFee)))
	b.WriteString(fmt.Sprintf("| Shipping | %s |\n", game.FormatWon(game.ShippingFee)))
	b.WriteString("\n")
	for q := 1; q <= game.MaxSelectedSeats; q++ {
		for _, d := range []game.Delivery{game.DeliveryOnsite, game.DeliveryShipping} {
			b.WriteString(fmt.Sprintf("- %d ticket(s), %s: %s\n", q, d.Label(), game.FormatWon(game.TicketTotal(q, d))))
		}
	}

	b.WriteString("\n## Payment\n\n")
	b.WriteString("| Method | Needs bank |\n")
	b.WriteString("| --- | --- |\n")
	for _, p := range game.PaymentMethods {
		b.WriteString(fmt.Sprintf("| %s | %s |\n", escape(p.Label()), yesNo(p.NeedsBank())))
	}
	b.WriteString(fmt.Sprintf("\nBanks: %s.\n\n", strings.Join(game.Banks, ", ")))
	b.WriteString(nicknameRules(ranking.Ticket))

	return docFile{Name: "ticketing.md", Title: "Ticketing", Content: b.String()}
}

func generateCalendarDoc() docFile {
	var b strings.Builder
	b.WriteString("# Calendar\n\n")
	b.WriteString("Source: `internal/game/calendar.go`.\n\n")
	b.WriteString(fmt.Sprintf("Months render as a Monday-first grid of %d days. Dates use `%s`. ", game.GridDays, game.DateLayout))
	b.WriteString(fmt.Sprintf("Events export to `%s`.\n\n", game.ICSFileName))

	for _, t := range []game.EventType{game.EventConcert, game.EventTicketing} {
		b.WriteString(fmt.Sprintf("## %s checklist\n\n", t.Label()))
		for _, item := range game.DefaultChecklist(t) {
			b.WriteString(fmt.Sprintf("- [ ] %s\n", escape(item.Label)))
		}
		b.WriteString("\n")
	}

	return docFile{Name: "calendar.md", Title: "Calendar", Content: b.String()}
}

func generateStorageDoc() docFile {
	var b strings.Builder
	b.WriteString("# Storage Keys\n\n")
	b.WriteString("Source: `internal/ranking/ranking.go` (`Games`).\n\n")
	b.WriteString("| Game | Ranking key | Name field | Last name key |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, g := range ranking.Games {
		b.WriteString(fmt.Sprintf("| %s | `%s` | `%s` | `%s` |\n", escape(g.Title), g.Key, g.NameField, g.LastNameKey))
	}
	b.WriteString("\nRanking values are JSON arrays of `{name, time}` with time in milliseconds. ")
	b.WriteString("Readers accept either `name` or `nickname`. Last names are plain strings.\n")

	return docFile{Name: "storage.md", Title: "Storage Keys", Content: b.String()}
}

func nicknameRules(g ranking.Game) string {
	return fmt.Sprintf("Nicknames are trimmed and compared case-insensitively against `%s`; a taken name is rejected.\n", g.Key)
}

func formatFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
