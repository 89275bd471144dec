package tableview

// Mode is the rendering projection chosen for the current viewport width.
type Mode int

const (
	// ModeTable renders every visible column in a full table.
	ModeTable Mode = iota
	// ModeCompactList renders only priority-1 columns as a condensed list,
	// with the remaining fields folded into a caller-supplied detail line.
	ModeCompactList
)

// DefaultBreakpoint is the terminal width below which panes switch to the
// compact list projection.
const DefaultBreakpoint = 100

// project chooses the rendering mode and visible column subset for the given
// width. Below the breakpoint only priority-1 columns survive; above it the
// user-controlled visibility toggles apply. The two hide mechanisms are
// deliberately independent: priority drives responsive folding, hidden
// drives the column picker, and neither overrides the other.
func project[T any](width, breakpoint int, columns []Column[T], hidden map[string]bool) (Mode, []Column[T]) {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if width > 0 && width < breakpoint {
		out := make([]Column[T], 0, len(columns))
		for _, col := range columns {
			if col.Priority == 1 {
				out = append(out, col)
			}
		}
		return ModeCompactList, out
	}
	out := make([]Column[T], 0, len(columns))
	for _, col := range columns {
		if hidden[col.Key] {
			continue
		}
		out = append(out, col)
	}
	return ModeTable, out
}
