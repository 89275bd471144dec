package tableview

import "sort"

// SelectionMode controls how many rows may be selected at once.
type SelectionMode int

const (
	// SelectionNone disables row selection entirely.
	SelectionNone SelectionMode = iota
	// SelectionSingle allows at most one selected row; toggling a new row
	// clears the previous one.
	SelectionSingle
	// SelectionMulti allows any number of selected rows.
	SelectionMulti
)

// Selection tracks the set of selected record identities. It survives
// search, filter, sort, and page changes untouched; identities are pruned
// only when the raw collection is replaced.
type Selection struct {
	mode SelectionMode
	ids  map[string]struct{}
}

// NewSelection returns an empty selection with the given mode.
func NewSelection(mode SelectionMode) *Selection {
	return &Selection{mode: mode, ids: map[string]struct{}{}}
}

// Toggle flips the selection state of one identity and reports whether the
// selection changed. In single mode toggling a new identity replaces the
// previous one; in none mode Toggle is ignored.
func (s *Selection) Toggle(id string) bool {
	if s.mode == SelectionNone {
		return false
	}
	if _, on := s.ids[id]; on {
		delete(s.ids, id)
		return true
	}
	if s.mode == SelectionSingle {
		clear(s.ids)
	}
	s.ids[id] = struct{}{}
	return true
}

// SelectAll adds every given identity to the selection. The caller scopes
// the argument to the currently filtered collection, never the full raw
// one. In single mode only the first identity is taken.
func (s *Selection) SelectAll(ids []string) bool {
	if s.mode == SelectionNone || len(ids) == 0 {
		return false
	}
	if s.mode == SelectionSingle {
		ids = ids[:1]
	}
	changed := false
	for _, id := range ids {
		if _, on := s.ids[id]; !on {
			s.ids[id] = struct{}{}
			changed = true
		}
	}
	return changed
}

// Deselect removes the given identities, reporting whether anything changed.
func (s *Selection) Deselect(ids []string) bool {
	changed := false
	for _, id := range ids {
		if _, on := s.ids[id]; on {
			delete(s.ids, id)
			changed = true
		}
	}
	return changed
}

// Clear empties the selection and reports whether it was non-empty.
func (s *Selection) Clear() bool {
	if len(s.ids) == 0 {
		return false
	}
	clear(s.ids)
	return true
}

// IsSelected reports whether the identity is currently selected.
func (s *Selection) IsSelected(id string) bool {
	_, on := s.ids[id]
	return on
}

// Count returns the number of selected identities.
func (s *Selection) Count() int {
	return len(s.ids)
}

// AllSelected reports whether every one of the given identities is
// selected. An empty argument reports false; there is nothing to select.
func (s *Selection) AllSelected(ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if _, on := s.ids[id]; !on {
			return false
		}
	}
	return true
}

// Identities returns the selected identities in sorted order.
func (s *Selection) Identities() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// prune drops identities that are no longer present in the raw collection.
func (s *Selection) prune(present map[string]struct{}) bool {
	changed := false
	for id := range s.ids {
		if _, ok := present[id]; !ok {
			delete(s.ids, id)
			changed = true
		}
	}
	return changed
}
