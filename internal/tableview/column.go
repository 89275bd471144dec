package tableview

import "fmt"

// SortType selects the comparison semantics for a sortable column.
type SortType int

const (
	// SortString compares values case-insensitively as text.
	SortString SortType = iota
	// SortNumber compares values numerically; unparsable values sort last.
	SortNumber
	// SortDate compares values by parsed timestamp; unparsable values sort last.
	SortDate

	sortTypeCount
)

// Column describes how one field of a record is labeled, rendered, sorted,
// and prioritized for display. Value extracts the field's string form and is
// used for display, search, and sorting alike.
type Column[T any] struct {
	// Key uniquely identifies the column within its set.
	Key string

	// Title is the header label shown above the column.
	Title string

	// Sortable marks the column as a valid sort target.
	Sortable bool

	// Sort selects the comparator used when this column is the sort key.
	Sort SortType

	// Priority controls responsive hiding: priority 1 columns are always
	// shown, higher priorities are folded away first on narrow layouts.
	Priority int

	// Renderer is a declarative token (e.g. "text", "status", "age") that
	// the presentation layer resolves to an actual cell renderer. The
	// engine itself never interprets it.
	Renderer string

	// Value extracts the column's string value from a record. A nil field
	// is the caller's responsibility to coerce to "".
	Value func(T) string
}

// ConfigError reports a caller programming error in the engine configuration.
// It is returned from New rather than deferred to runtime so that a bad
// column set fails at construction.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return "tableview: " + e.msg
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

func validateColumns[T any](columns []Column[T]) error {
	if len(columns) == 0 {
		return configErrorf("at least one column is required")
	}
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if col.Key == "" {
			return configErrorf("column with empty key")
		}
		if _, dup := seen[col.Key]; dup {
			return configErrorf("duplicate column key %q", col.Key)
		}
		seen[col.Key] = struct{}{}
		if col.Value == nil {
			return configErrorf("column %q has no value accessor", col.Key)
		}
		if col.Sortable && (col.Sort < 0 || col.Sort >= sortTypeCount) {
			return configErrorf("column %q has unrecognized sort type %d", col.Key, col.Sort)
		}
	}
	return nil
}
