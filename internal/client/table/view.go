package table

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/ipms/internal/client/client"
)

// Column renders one field of a row. Tone is optional.
type Column[T any] struct {
	Header string
	Value  func(T) string
	Tone   func(T) Tone
}

// View renders controller state as text.
type View[T any] struct {
	Title   string
	Noun    string
	Columns []Column[T]
	Color   bool
	// Actions is a hint line printed under the table, e.g. "edit <id>".
	Actions string
}

// Render writes exactly one of: the loading line, the error banner, the
// empty placeholder, or the table.
func (v View[T]) Render(w io.Writer, s State[T]) error {
	if v.Title != "" {
		if _, err := fmt.Fprintf(w, "== %s ==\n", v.Title); err != nil {
			return err
		}
	}
	if line := filterLine(s); line != "" {
		fmt.Fprintf(w, "filters: %s\n", line)
	}

	switch {
	case s.Loading:
		_, err := fmt.Fprintf(w, "Loading %s...\n", v.Noun)
		return err
	case s.Err != nil:
		_, err := fmt.Fprintln(w, Paint("! "+client.UserMessage(s.Err), ToneError, v.Color))
		return err
	case len(s.Rows) == 0:
		hint := fmt.Sprintf("No %s have been created yet.", v.Noun)
		if s.Filtered() {
			hint = "Try adjusting your search criteria."
		}
		_, err := fmt.Fprintf(w, "No %s found\n%s\n", v.Noun, hint)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	headers := make([]string, len(v.Columns))
	for i, c := range v.Columns {
		headers[i] = strings.ToUpper(c.Header)
		if c.Tone != nil {
			headers[i] = Paint(headers[i], ToneDefault, v.Color)
		}
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, row := range s.Rows {
		cells := make([]string, len(v.Columns))
		for i, c := range v.Columns {
			val := c.Value(row)
			if c.Tone != nil {
				val = Paint(val, c.Tone(row), v.Color)
			}
			cells[i] = val
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "%d %s\n", len(s.Rows), v.Noun)
	if v.Actions != "" {
		fmt.Fprintln(w, v.Actions)
	}
	return nil
}

// filterLine lists the non-empty filters as key=value, sorted by key.
func filterLine[T any](s State[T]) string {
	keys := make([]string, 0, len(s.Filters))
	for k, v := range s.Filters {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + strconv.Quote(s.Filters[k])
	}
	return strings.Join(parts, " ")
}

// FormatTime renders t in local time, or "-" when unset.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// FormatDate is FormatTime without the clock.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateOnly)
}
