package ranking

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/appengine-ltd/podo-rush/internal/game"
)

// WriteCSV writes rank, name, milliseconds and formatted seconds.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "name", "time_ms", "seconds"}); err != nil {
		return err
	}
	for i, e := range entries {
		rec := []string{
			strconv.Itoa(i + 1),
			e.Name,
			strconv.FormatFloat(e.Time, 'f', -1, 64),
			FormatTime(e),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the list in the same shape the store keeps it in.
func WriteJSON(w io.Writer, g Game, entries []Entry) error {
	return json.NewEncoder(w).Encode(toWire(g, entries))
}

// FormatTime renders the entry time as seconds with two decimals.
func FormatTime(e Entry) string {
	return game.FormatMillis(e.Time)
}
