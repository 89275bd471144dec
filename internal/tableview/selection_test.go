package tableview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_NoneModeIgnoresEverything(t *testing.T) {
	s := NewSelection(SelectionNone)
	assert.False(t, s.Toggle("a"))
	assert.False(t, s.SelectAll([]string{"a", "b"}))
	assert.Equal(t, 0, s.Count())
}

func TestSelection_ToggleRoundTrips(t *testing.T) {
	s := NewSelection(SelectionMulti)
	assert.True(t, s.Toggle("a"))
	assert.True(t, s.IsSelected("a"))
	assert.True(t, s.Toggle("a"))
	assert.False(t, s.IsSelected("a"))
}

func TestSelection_AllSelectedDemotedWhenScopeGrows(t *testing.T) {
	s := NewSelection(SelectionMulti)
	s.SelectAll([]string{"a", "b"})
	assert.True(t, s.AllSelected([]string{"a", "b"}))

	// The filtered set growing demotes all-selected to partial without
	// touching the selection itself.
	assert.False(t, s.AllSelected([]string{"a", "b", "c"}))
	assert.Equal(t, 2, s.Count())
}

func TestSelection_AllSelectedFalseForEmptyScope(t *testing.T) {
	s := NewSelection(SelectionMulti)
	assert.False(t, s.AllSelected(nil))
}

func TestSelection_PruneDropsMissingIdentities(t *testing.T) {
	s := NewSelection(SelectionMulti)
	s.SelectAll([]string{"a", "b", "c"})
	changed := s.prune(map[string]struct{}{"b": {}})
	assert.True(t, changed)
	assert.Equal(t, []string{"b"}, s.Identities())
	assert.False(t, s.prune(map[string]struct{}{"b": {}}))
}

func TestSelection_IdentitiesSorted(t *testing.T) {
	s := NewSelection(SelectionMulti)
	s.SelectAll([]string{"z", "a", "m"})
	assert.Equal(t, []string{"a", "m", "z"}, s.Identities())
}

func TestPageCount_NeverBelowOne(t *testing.T) {
	assert.Equal(t, 1, pageCount(0, 10))
	assert.Equal(t, 1, pageCount(10, 10))
	assert.Equal(t, 2, pageCount(11, 10))
	assert.Equal(t, 5, pageCount(47, 10))
}
