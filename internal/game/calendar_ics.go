package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	icsProductID = "-//podo-rush//calendar//EN"
	ICSFileName  = "podo-calendar.ics"

	// icsLineOctets is the longest content line before folding, CRLF excluded.
	icsLineOctets = 75
)

// WriteICS writes the events as an iCalendar document. Events with a time
// become two-hour floating-time entries, the rest are all-day.
func WriteICS(w io.Writer, events []CalendarEvent, stamp time.Time) error {
	bw := bufio.NewWriter(w)
	line := func(format string, args ...any) {
		writeFolded(bw, fmt.Sprintf(format, args...))
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:%s", icsProductID)
	line("CALSCALE:GREGORIAN")
	line("X-WR-CALNAME:Podo Rush")

	for _, ev := range events {
		day, err := time.Parse(DateLayout, ev.Date)
		if err != nil {
			continue
		}
		line("BEGIN:VEVENT")
		line("UID:%s@podo-rush", ev.ID)
		line("DTSTAMP:%s", stamp.UTC().Format("20060102T150405Z"))
		if start, ok := eventStart(day, ev.Time); ok {
			line("DTSTART:%s", start.Format("20060102T150405"))
			line("DTEND:%s", start.Add(2*time.Hour).Format("20060102T150405"))
		} else {
			line("DTSTART;VALUE=DATE:%s", day.Format("20060102"))
			line("DTEND;VALUE=DATE:%s", day.AddDate(0, 0, 1).Format("20060102"))
		}
		line("SUMMARY:%s", icsEscape(fmt.Sprintf("[%s] %s", ev.Type.Label(), ev.Name)))
		if place := eventPlace(ev); place != "" {
			line("LOCATION:%s", icsEscape(place))
		}
		line("DESCRIPTION:%s", icsEscape(checklistText(ev.Checklist)))
		line("CATEGORIES:%s", strings.ToUpper(string(ev.Type)))
		line("END:VEVENT")
	}

	line("END:VCALENDAR")
	return bw.Flush()
}

func eventStart(day time.Time, hhmm string) (time.Time, bool) {
	if hhmm == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), true
}

func eventPlace(ev CalendarEvent) string {
	if ev.Type == EventTicketing {
		return ev.Venue
	}
	return ev.Location
}

func checklistText(items []ChecklistItem) string {
	lines := make([]string, 0, len(items))
	for _, c := range items {
		mark := "[ ]"
		if c.Done {
			mark = "[x]"
		}
		lines = append(lines, mark+" "+c.Label)
	}
	return strings.Join(lines, "\n")
}

var icsEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\r\n", `\n`, "\n", `\n`, "\r", `\n`)

func icsEscape(s string) string {
	return icsEscaper.Replace(s)
}

// writeFolded writes one content line, folding it into chunks of at most
// icsLineOctets octets. Continuation lines start with a space, which counts
// toward the limit. Folds never split a UTF-8 sequence.
func writeFolded(w *bufio.Writer, content string) {
	limit := icsLineOctets
	for len(content) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		w.WriteString(content[:cut])
		w.WriteString("\r\n ")
		content = content[cut:]
		limit = icsLineOctets - 1
	}
	w.WriteString(content)
	w.WriteString("\r\n")
}

// SaveICS writes the events to dir/ICSFileName and returns the path.
func SaveICS(dir string, events []CalendarEvent, stamp time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, ICSFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteICS(f, events, stamp); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
