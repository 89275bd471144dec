package tableview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columnKeys[T any](cols []Column[T]) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Key
	}
	return out
}

func TestProject_NarrowViewportKeepsOnlyPriorityOne(t *testing.T) {
	mode, cols := project(80, DefaultBreakpoint, testColumns(), nil)
	assert.Equal(t, ModeCompactList, mode)
	assert.Equal(t, []string{"name", "status"}, columnKeys(cols))
}

func TestProject_WideViewportRespectsVisibilityToggles(t *testing.T) {
	hidden := map[string]bool{"bits": true}
	mode, cols := project(140, DefaultBreakpoint, testColumns(), hidden)
	assert.Equal(t, ModeTable, mode)
	assert.Equal(t, []string{"name", "status", "expires"}, columnKeys(cols))
}

func TestProject_PriorityAndVisibilityAreIndependent(t *testing.T) {
	// Hiding a priority-1 column via the picker must not affect the
	// compact projection, and priority must not affect the wide one.
	hidden := map[string]bool{"status": true}

	_, narrow := project(60, DefaultBreakpoint, testColumns(), hidden)
	assert.Equal(t, []string{"name", "status"}, columnKeys(narrow))

	_, wide := project(200, DefaultBreakpoint, testColumns(), hidden)
	assert.Equal(t, []string{"name", "expires", "bits"}, columnKeys(wide))
}

func TestEngine_ModeSwitchPreservesViewState(t *testing.T) {
	e := newTestEngine(t, Config[testRecord]{
		SearchKeys: []string{"name"},
		PageSize:   2,
		Selection:  SelectionMulti,
	})
	e.SetRecords([]testRecord{
		{ID: 1, Name: "cert-a"}, {ID: 2, Name: "cert-b"},
		{ID: 3, Name: "cert-c"}, {ID: 4, Name: "cert-d"},
	})
	e.SetSearch("cert")
	e.SetPage(2)
	e.ToggleID("3")
	e.SetWidth(150)
	require.Equal(t, ModeTable, e.View().Mode)

	e.SetWidth(60)
	v := e.View()
	assert.Equal(t, ModeCompactList, v.Mode)
	assert.Equal(t, 2, v.Page)
	assert.Equal(t, "cert", e.Search())
	assert.Equal(t, []string{"3"}, e.SelectedIdentities())
	assert.Equal(t, []string{"3", "4"}, v.Identities)
}
