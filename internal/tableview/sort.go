package tableview

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Direction orders a sorted column ascending or descending.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// SortSpec names the active sort column and direction. An empty Key means
// the sort stage is a no-op and input order is preserved.
type SortSpec struct {
	Key       string
	Direction Direction
}

// timestampLayouts are tried in order when parsing date-typed cells. The
// bastion API emits RFC 3339; the remaining layouts cover older payloads.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseNumber(value string) (float64, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// sortRows stably sorts rows in place by the given column. Records whose
// value cannot be parsed for number/date columns sort after all parsable
// values in both directions; reversing the direction never pulls missing
// values to the front. Ties keep their input order.
func sortRows[T any](rows []row[T], col Column[T], dir Direction) {
	desc := dir == Descending

	switch col.Sort {
	case SortNumber:
		sort.SliceStable(rows, func(i, j int) bool {
			a, aok := parseNumber(col.Value(rows[i].record))
			b, bok := parseNumber(col.Value(rows[j].record))
			if aok != bok {
				return aok
			}
			if !aok {
				return false
			}
			if desc {
				return b < a
			}
			return a < b
		})
	case SortDate:
		sort.SliceStable(rows, func(i, j int) bool {
			a, aok := parseTimestamp(col.Value(rows[i].record))
			b, bok := parseTimestamp(col.Value(rows[j].record))
			if aok != bok {
				return aok
			}
			if !aok {
				return false
			}
			if desc {
				return a.After(b)
			}
			return a.Before(b)
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			a := strings.ToLower(col.Value(rows[i].record))
			b := strings.ToLower(col.Value(rows[j].record))
			if desc {
				return b < a
			}
			return a < b
		})
	}
}
