// Package export renders fetched list pages into downloadable report files
// (PDF and Excel). Formatting only; fetching and filtering happen upstream.
package export

import "time"

// Column describes one report column. Width is in millimetres for PDF output;
// zero distributes the remaining width evenly.
type Column struct {
	Header string
	Width  float64
}

// Document is a fully materialized report: a title, columns, and
// pre-stringified rows.
type Document struct {
	Title       string
	Columns     []Column
	Rows        [][]string
	GeneratedAt time.Time
}

// Rows stringifies a slice of entities through a per-feature cell function.
func Rows[T any](items []T, cells func(T) []string) [][]string {
	out := make([][]string, 0, len(items))
	for _, it := range items {
		out = append(out, cells(it))
	}
	return out
}

func (d Document) generatedAt() time.Time {
	if d.GeneratedAt.IsZero() {
		return time.Now()
	}
	return d.GeneratedAt
}
