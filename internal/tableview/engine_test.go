package tableview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID      int
	Name    string
	Status  string
	Expires string
	KeyBits string
}

func testColumns() []Column[testRecord] {
	return []Column[testRecord]{
		{Key: "name", Title: "Name", Sortable: true, Sort: SortString, Priority: 1, Value: func(r testRecord) string { return r.Name }},
		{Key: "status", Title: "Status", Sortable: true, Sort: SortString, Priority: 1, Renderer: "status", Value: func(r testRecord) string { return r.Status }},
		{Key: "expires", Title: "Expires", Sortable: true, Sort: SortDate, Priority: 2, Renderer: "date", Value: func(r testRecord) string { return r.Expires }},
		{Key: "bits", Title: "Key Bits", Sortable: true, Sort: SortNumber, Priority: 3, Value: func(r testRecord) string { return r.KeyBits }},
	}
}

func newTestEngine(t *testing.T, cfg Config[testRecord]) *Engine[testRecord] {
	t.Helper()
	if cfg.Columns == nil {
		cfg.Columns = testColumns()
	}
	if cfg.Identity == nil {
		cfg.Identity = func(r testRecord) string { return fmt.Sprintf("%d", r.ID) }
	}
	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func TestNew_RejectsDuplicateColumnKeys(t *testing.T) {
	cols := testColumns()
	cols = append(cols, Column[testRecord]{Key: "name", Title: "Name Again", Value: func(r testRecord) string { return r.Name }})
	_, err := New(Config[testRecord]{Columns: cols})
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestNew_RejectsUnrecognizedSortType(t *testing.T) {
	cols := []Column[testRecord]{
		{Key: "name", Title: "Name", Sortable: true, Sort: SortType(42), Value: func(r testRecord) string { return r.Name }},
	}
	_, err := New(Config[testRecord]{Columns: cols})
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestNew_RejectsUnknownSearchKey(t *testing.T) {
	_, err := New(Config[testRecord]{Columns: testColumns(), SearchKeys: []string{"nope"}})
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestSearch_SubstringOverConfiguredKeys(t *testing.T) {
	e := newTestEngine(t, Config[testRecord]{SearchKeys: []string{"name"}})
	e.SetRecords([]testRecord{
		{ID: 1, Name: "cert-1.example.com"},
		{ID: 2, Name: "cert-10.example.com"},
		{ID: 3, Name: "api.test.com"},
	})

	e.SetSearch("cert-1")
	v := e.View()
	require.Len(t, v.Rows, 2)
	assert.Equal(t, []string{"1", "2"}, v.Identities)
	assert.Equal(t, 2, v.TotalFiltered)

	// Case-insensitive, and an empty query is a no-op.
	e.SetSearch("CERT-1")
	assert.Equal(t, 2, e.TotalFiltered())
	e.SetSearch("")
	assert.Equal(t, 3, e.TotalFiltered())
}

func TestSearch_DoesNotMatchUnconfiguredColumns(t *testing.T) {
	e := newTestEngine(t, Config[testRecord]{SearchKeys: []string{"name"}})
	e.SetRecords([]testRecord{
		{ID: 1, Name: "web", Status: "expired"},
		{ID: 2, Name: "expired-mirror", Status: "valid"},
	})

	e.SetSearch("expired")
	v := e.View()
	require.Len(t, v.Rows, 1)
	assert.Equal(t, "2", v.Identities[0])
}

func TestFilters_ComposeWithAndAndResetPage(t *testing.T) {
	e := newTestEngine(t, Config[testRecord]{
		PageSize: 2,
		Filters: map[string]Predicate[testRecord]{
			"status": func(r testRecord, v string) bool { return r.Status == v },
			"bits":   func(r testRecord, v string) bool { return r.KeyBits == v },
		},
	})
	var records []testRecord
	for i := 1; i <= 8; i++ {
		status := "valid"
		if i%2 == 0 {
			status = "expired"
		}
		records = append(records, testRecord{ID: i, Name: fmt.Sprintf("cert-%d", i), Status: status, KeyBits: "2048"})
	}
	e.SetRecords(records)
	e.SetPage(3)
	require.Equal(t, 3, e.Page())

	e.SetFilter("status", "expired")
	assert.Equal(t, 1, e.Page(), "filter change must reset page to 1")
	assert.Equal(t, 4, e.TotalFiltered())

	e.SetFilter("bits", "4096")
	assert.Equal(t, 0, e.TotalFiltered(), "filters compose with AND")

	// Empty value is the "no filter" sentinel.
	e.SetFilter("bits", "")
	assert.Equal(t, 4, e.TotalFiltered())
}

func TestFilters_PanickingPredicateExcludesOnlyOffendingRecord(t *testing.T) {
	var failures []string
	e := newTestEngine(t, Config[testRecord]{
		Filters: map[string]Predicate[testRecord]{
			"status": func(r testRecord, v string) bool {
				if r.Name == "poison" {
					panic("malformed record")
				}
				return r.Status == v
			},
		},
		Callbacks: Callbacks{
			OnFilterError: func(key string, err error) {
				failures = append(failures, key+": "+err.Error())
			},
		},
	})
	e.SetRecords([]testRecord{
		{ID: 1, Name: "good", Status: "valid"},
		{ID: 2, Name: "poison", Status: "valid"},
		{ID: 3, Name: "fine", Status: "valid"},
	})

	e.SetFilter("status", "valid")
	v := e.View()
	assert.Equal(t, []string{"1", "3"}, v.Identities)
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "status")
}

func TestPagination_ClampsAndSnapsBack(t *testing.T) {
	e := newTestEngine(t, Config[testRecord]{SearchKeys: []string{"name"}, PageSize: 10})
	var records []testRecord
	for i := 1; i <= 35; i++ {
		records = append(records, testRecord{ID: i, Name: fmt.Sprintf("cert-%02d", i)})
	}
	e.SetRecords(records)

	assert.Equal(t, 4, e.PageCount())
	e.SetPage(4)
	require.Len(t, e.View().Rows, 5)

	// Narrowing the search to a single page must snap back, never freeze
	// on an out-of-range empty page.
	e.SetSearch("cert-01")
	assert.Equal(t, 1, e.Page())
	assert.Equal(t, 1, e.PageCount())

	e.SetSearch("")
	e.SetPage(99)
	assert.Equal(t, 4, e.Page())
	e.SetPage(-3)
	assert.Equal(t, 1, e.Page())
}

func TestSetPageSize_PreservesFirstVisibleRecord(t *testing.T) {
	e := newTestEngine(t, Config[testRecord]{PageSize: 10})
	var records []testRecord
	for i := 0; i < 50; i++ {
		records = append(records, testRecord{ID: i, Name: fmt.Sprintf("cert-%02d", i)})
	}
	e.SetRecords(records)

	e.SetPage(3) // first visible index 20
	e.SetPageSize(7)
	assert.Equal(t, 3, e.Page(), "index 20 lives on page 3 at size 7")
	assert.Equal(t, "14", e.View().Identities[0])

	e.SetPageSize(25)
	assert.Equal(t, 1, e.Page())
}

func TestSelection_SelectAllScopedToFilteredSet(t *testing.T) {
	e := newTestEngine(t, Config[testRecord]{
		SearchKeys: []string{"name"},
		Selection:  SelectionMulti,
	})
	e.SetRecords([]testRecord{
		{ID: 1, Name: "cert-1.example.com"},
		{ID: 2, Name: "cert-10.example.com"},
		{ID: 3, Name: "api.test.com"},
	})

	e.SetSearch("cert-1")
	e.ToggleSelectAll()
	assert.ElementsMatch(t, []string{"1", "2"}, e.SelectedIdentities(),
		"select all must not touch records excluded by the search")

	// Widening the filter keeps existing selections; they are not silently
	// dropped just because the filtered set grew.
	e.SetSearch("")
	assert.ElementsMatch(t, []string{"1", "2"}, e.SelectedIdentities())

	// Narrowing the other way keeps an out-of-filter selection too.
	e.SetSearch("api")
	assert.Equal(t, 2, e.SelectedCount())

	// Toggling select-all twice round-trips.
	e.SetSearch("")
	e.ToggleSelectAll()
	assert.Equal(t, 3, e.SelectedCount())
	e.ToggleSelectAll()
	assert.Equal(t, 0, e.SelectedCount())
}

func TestSelection_SingleModeReplacesPrevious(t *testing.T) {
	e := newTestEngine(t, Config[testRecord]{Selection: SelectionSingle})
	e.SetRecords([]testRecord{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})

	e.ToggleID("1")
	e.ToggleID("2")
	assert.Equal(t, []string{"2"}, e.SelectedIdentities())
	e.ToggleID("2")
	assert.Equal(t, 0, e.SelectedCount())
}

func TestSetRecords_ResetsSearchAndPrunesSelection(t *testing.T) {
	var selectionEvents []int
	e := newTestEngine(t, Config[testRecord]{
		SearchKeys: []string{"name"},
		Selection:  SelectionMulti,
		Callbacks: Callbacks{
			OnSelection: func(count int) { selectionEvents = append(selectionEvents, count) },
		},
	})
	e.SetRecords([]testRecord{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})
	e.ToggleID("1")
	e.ToggleID("2")
	e.SetSearch("a")

	e.SetRecords([]testRecord{{ID: 2, Name: "b"}, {ID: 3, Name: "c"}})
	assert.Equal(t, "", e.Search(), "search resets on wholesale replacement")
	assert.Equal(t, []string{"2"}, e.SelectedIdentities(), "identity 1 pruned")
	assert.Equal(t, []int{1, 2, 1}, selectionEvents)
}

func TestEmptyCollection_IsValidTerminalState(t *testing.T) {
	e := newTestEngine(t, Config[testRecord]{})
	e.SetRecords(nil)

	v := e.View()
	assert.Empty(t, v.Rows)
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, 1, v.PageCount)
	assert.Equal(t, 0, v.TotalFiltered)
}

func TestDegradedIdentity_FallsBackToPositionAndWarns(t *testing.T) {
	type anonymous struct{ Label string }
	var warnings []string
	e, err := New(Config[anonymous]{
		Columns: []Column[anonymous]{
			{Key: "label", Title: "Label", Value: func(r anonymous) string { return r.Label }},
		},
		Callbacks: Callbacks{Warn: func(msg string) { warnings = append(warnings, msg) }},
	})
	require.NoError(t, err)

	e.SetRecords([]anonymous{{Label: "x"}, {Label: "y"}})
	v := e.View()
	assert.Equal(t, []string{"#0", "#1"}, v.Identities)
	require.Len(t, warnings, 1, "degraded mode is reported once")

	e.SetRecords([]anonymous{{Label: "z"}})
	assert.Len(t, warnings, 1)
}

func TestReflectedIdentity_UsesIDFieldWhenNoAccessor(t *testing.T) {
	type withID struct {
		ID   int64
		Name string
	}
	e, err := New(Config[withID]{
		Columns: []Column[withID]{
			{Key: "name", Title: "Name", Value: func(r withID) string { return r.Name }},
		},
	})
	require.NoError(t, err)

	e.SetRecords([]withID{{ID: 41, Name: "a"}, {ID: 7, Name: "b"}})
	assert.Equal(t, []string{"41", "7"}, e.View().Identities)
}

func TestScenario_UnparsableDatesStayLastAcrossPages(t *testing.T) {
	e := newTestEngine(t, Config[testRecord]{
		PageSize:    10,
		InitialSort: SortSpec{Key: "expires", Direction: Ascending},
	})
	var records []testRecord
	for i := 1; i <= 44; i++ {
		records = append(records, testRecord{
			ID:      i,
			Name:    fmt.Sprintf("cert-%02d", i),
			Expires: fmt.Sprintf("2026-07-%02d", i%28+1),
		})
	}
	for i := 45; i <= 47; i++ {
		records = append(records, testRecord{ID: i, Name: fmt.Sprintf("cert-%02d", i), Expires: "not-a-date"})
	}
	e.SetRecords(records)

	require.Equal(t, 5, e.PageCount())
	e.SetPage(5)
	v := e.View()
	require.Len(t, v.Rows, 7)
	assert.Equal(t, []string{"45", "46", "47"}, v.Identities[4:],
		"unparsable dates land on the last rows ascending")

	e.SortBy("expires") // toggle to descending
	e.SetPage(5)
	v = e.View()
	assert.Equal(t, []string{"45", "46", "47"}, v.Identities[4:],
		"unparsable dates stay last descending too")
}

func TestView_DeterministicForIdenticalInputs(t *testing.T) {
	build := func() View[testRecord] {
		e := newTestEngine(t, Config[testRecord]{
			SearchKeys:  []string{"name", "status"},
			PageSize:    5,
			InitialSort: SortSpec{Key: "name", Direction: Descending},
			Filters: map[string]Predicate[testRecord]{
				"status": func(r testRecord, v string) bool { return r.Status == v },
			},
		})
		var records []testRecord
		for i := 0; i < 40; i++ {
			status := "valid"
			if i%3 == 0 {
				status = "revoked"
			}
			records = append(records, testRecord{ID: i, Name: fmt.Sprintf("cert-%02d", i%20), Status: status})
		}
		e.SetRecords(records)
		e.SetSearch("cert-1")
		e.SetFilter("status", "valid")
		e.SetPage(2)
		return e.View()
	}

	first := build()
	second := build()
	assert.Equal(t, first.Identities, second.Identities)
	assert.Equal(t, first.TotalFiltered, second.TotalFiltered)
	assert.Equal(t, first.Page, second.Page)
	assert.Equal(t, first.PageCount, second.PageCount)
}
