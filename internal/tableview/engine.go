package tableview

// row pairs a record with its resolved identity so the pipeline can carry
// both through every stage.
type row[T any] struct {
	record T
	id     string
}

// Callbacks notify the presentation layer of state changes. All fields are
// optional. Callbacks fire after the engine has recomputed, so reading the
// engine from inside one observes the new state.
type Callbacks struct {
	OnSearch    func(query string)
	OnFilter    func(key, value string)
	OnSort      func(spec SortSpec)
	OnPage      func(page int)
	OnSelection func(count int)

	// OnFilterError reports a structured filter predicate that panicked
	// while evaluating a record. The record is excluded from the result.
	OnFilterError func(key string, err error)

	// Warn reports degraded-mode conditions, such as falling back to
	// positional identities.
	Warn func(msg string)
}

// Config assembles everything the owning page controller supplies to a view
// engine. Records are set separately via SetRecords.
type Config[T any] struct {
	Columns []Column[T]

	// SearchKeys names the columns whose values the free-text search
	// matches against. Every entry must name a configured column.
	SearchKeys []string

	// Filters maps filter keys to caller predicates for the structured
	// filter stage.
	Filters map[string]Predicate[T]

	// Identity extracts a stable record identity. When nil the engine
	// falls back to a reflected ID field, then to the positional index
	// (degraded mode, reported through Callbacks.Warn).
	Identity func(T) string

	InitialSort SortSpec
	PageSize    int
	Selection   SelectionMode

	// Breakpoint is the viewport width below which the engine projects
	// the compact list mode. Zero uses DefaultBreakpoint.
	Breakpoint int

	Callbacks Callbacks
}

// View is one recomputed rendering projection: the visible page window plus
// the counts and column set the presentation layer needs.
type View[T any] struct {
	// Rows is the current page window, in display order.
	Rows []T

	// Identities aligns with Rows.
	Identities []string

	// TotalFiltered is the record count after search and filters but
	// before pagination; it scopes select-all and the "n of m" readout.
	TotalFiltered int

	Page      int
	PageCount int

	Mode    Mode
	Columns []Column[T]
}

// Engine composes the search, filter, sort, and pagination stages over an
// in-memory record collection and tracks the transient interaction state:
// search text, structured filters, sort spec, page, selection, and the
// responsive projection.
//
// Every input change recomputes the pipeline synchronously; the engine
// performs no I/O, no caching beyond the current filtered slice, and no
// debouncing (rate limiting rapid search input is the caller's concern).
// A single Engine instance is owned by exactly one presentation surface and
// is not safe for concurrent use.
type Engine[T any] struct {
	columns    []Column[T]
	searchCols []Column[T]
	predicates map[string]Predicate[T]
	identity   func(T) string
	breakpoint int
	callbacks  Callbacks

	rows []row[T] // raw collection with resolved identities

	search  string
	filters map[string]string
	sort    SortSpec

	page     int
	pageSize int

	selection *Selection

	width  int
	hidden map[string]bool

	visible        []row[T] // searched + filtered + sorted, pre-pagination
	warnedIdentity bool
}

// New validates the configuration and returns an empty engine. Configuration
// mistakes (duplicate column keys, unknown sort types, search keys naming no
// column) return a *ConfigError.
func New[T any](cfg Config[T]) (*Engine[T], error) {
	if err := validateColumns(cfg.Columns); err != nil {
		return nil, err
	}

	byKey := make(map[string]Column[T], len(cfg.Columns))
	for _, col := range cfg.Columns {
		byKey[col.Key] = col
	}

	searchCols := make([]Column[T], 0, len(cfg.SearchKeys))
	for _, key := range cfg.SearchKeys {
		col, ok := byKey[key]
		if !ok {
			return nil, configErrorf("search key %q names no column", key)
		}
		searchCols = append(searchCols, col)
	}

	if cfg.InitialSort.Key != "" {
		col, ok := byKey[cfg.InitialSort.Key]
		if !ok {
			return nil, configErrorf("initial sort key %q names no column", cfg.InitialSort.Key)
		}
		if !col.Sortable {
			return nil, configErrorf("initial sort key %q is not sortable", cfg.InitialSort.Key)
		}
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	e := &Engine[T]{
		columns:    cfg.Columns,
		searchCols: searchCols,
		predicates: cfg.Filters,
		identity:   cfg.Identity,
		breakpoint: cfg.Breakpoint,
		callbacks:  cfg.Callbacks,
		filters:    map[string]string{},
		sort:       cfg.InitialSort,
		page:       1,
		pageSize:   pageSize,
		selection:  NewSelection(cfg.Selection),
		hidden:     map[string]bool{},
	}
	e.recompute()
	return e, nil
}

// SetRecords replaces the raw collection wholesale. The search query resets,
// selections referring to identities no longer present are pruned, and the
// page is re-clamped. Structured filters and the sort spec persist.
func (e *Engine[T]) SetRecords(records []T) {
	e.rows = make([]row[T], len(records))
	present := make(map[string]struct{}, len(records))
	for i, record := range records {
		id := e.identityOf(record, i)
		e.rows[i] = row[T]{record: record, id: id}
		present[id] = struct{}{}
	}

	e.search = ""
	pruned := e.selection.prune(present)
	e.recompute()

	if pruned && e.callbacks.OnSelection != nil {
		e.callbacks.OnSelection(e.selection.Count())
	}
}

func (e *Engine[T]) identityOf(record T, index int) string {
	if e.identity != nil {
		return e.identity(record)
	}
	if id, ok := reflectIdentity(record); ok {
		return id
	}
	if !e.warnedIdentity {
		e.warnedIdentity = true
		if e.callbacks.Warn != nil {
			e.callbacks.Warn("no identity accessor and no ID field; falling back to positional indices (selection is unstable across refreshes)")
		}
	}
	return positionalIdentity(index)
}

// SetSearch replaces the free-text query and recomputes. The page is
// clamped, not reset, so a query that still fills the current page keeps it.
func (e *Engine[T]) SetSearch(query string) {
	if e.search == query {
		return
	}
	e.search = query
	e.recompute()
	if e.callbacks.OnSearch != nil {
		e.callbacks.OnSearch(query)
	}
}

// Search returns the active query.
func (e *Engine[T]) Search() string {
	return e.search
}

// SetFilter activates a structured filter value for the given key. The
// empty string deactivates the filter. Any filter change snaps the page
// back to 1.
func (e *Engine[T]) SetFilter(key, value string) {
	if e.filters[key] == value {
		return
	}
	if value == "" {
		delete(e.filters, key)
	} else {
		e.filters[key] = value
	}
	e.page = 1
	e.recompute()
	if e.callbacks.OnFilter != nil {
		e.callbacks.OnFilter(key, value)
	}
}

// Filter returns the active value for a filter key, or "" when inactive.
func (e *Engine[T]) Filter(key string) string {
	return e.filters[key]
}

// SortBy applies column-header click semantics: a new sortable key sorts
// ascending, the active key toggles direction. Unknown or unsortable keys
// are ignored.
func (e *Engine[T]) SortBy(key string) {
	col := e.columnByKey(key)
	if col == nil || !col.Sortable {
		return
	}
	if e.sort.Key == key {
		e.sort.Direction = e.sort.Direction.Toggle()
	} else {
		e.sort = SortSpec{Key: key, Direction: Ascending}
	}
	e.recompute()
	if e.callbacks.OnSort != nil {
		e.callbacks.OnSort(e.sort)
	}
}

// SetSort replaces the sort spec outright, bypassing toggle semantics.
func (e *Engine[T]) SetSort(spec SortSpec) {
	if spec.Key != "" {
		col := e.columnByKey(spec.Key)
		if col == nil || !col.Sortable {
			return
		}
	}
	e.sort = spec
	e.recompute()
	if e.callbacks.OnSort != nil {
		e.callbacks.OnSort(e.sort)
	}
}

// Sort returns the active sort spec.
func (e *Engine[T]) Sort() SortSpec {
	return e.sort
}

// SetPage jumps to a page, clamped into the valid range. Only the
// pagination stage re-runs.
func (e *Engine[T]) SetPage(page int) {
	clamped := clampPage(page, pageCount(len(e.visible), e.pageSize))
	if clamped == e.page {
		return
	}
	e.page = clamped
	if e.callbacks.OnPage != nil {
		e.callbacks.OnPage(e.page)
	}
}

// NextPage advances one page when possible.
func (e *Engine[T]) NextPage() {
	e.SetPage(e.page + 1)
}

// PrevPage goes back one page when possible.
func (e *Engine[T]) PrevPage() {
	e.SetPage(e.page - 1)
}

// SetPageSize changes the page size, repositioning the page so the first
// record that was visible before the change stays visible.
func (e *Engine[T]) SetPageSize(size int) {
	if size <= 0 || size == e.pageSize {
		return
	}
	firstIndex := (e.page - 1) * e.pageSize
	e.pageSize = size
	e.page = clampPage(firstIndex/size+1, pageCount(len(e.visible), size))
	if e.callbacks.OnPage != nil {
		e.callbacks.OnPage(e.page)
	}
}

// PageSize returns the current page size.
func (e *Engine[T]) PageSize() int {
	return e.pageSize
}

// ToggleRow flips the selection state of one record. It resolves the
// identity through the configured accessor; callers in degraded positional
// mode must use ToggleID with an identity from View.Identities instead.
func (e *Engine[T]) ToggleRow(record T) {
	if e.identity != nil {
		e.toggleID(e.identity(record))
		return
	}
	if id, ok := reflectIdentity(record); ok {
		e.toggleID(id)
	}
}

// ToggleID flips the selection state of one identity.
func (e *Engine[T]) ToggleID(id string) {
	e.toggleID(id)
}

func (e *Engine[T]) toggleID(id string) {
	if e.selection.Toggle(id) && e.callbacks.OnSelection != nil {
		e.callbacks.OnSelection(e.selection.Count())
	}
}

// ToggleSelectAll selects every record in the currently filtered (not
// merely visible, not full raw) collection, or deselects them when they are
// all already selected. Records excluded by the active search or filters
// are never touched.
func (e *Engine[T]) ToggleSelectAll() {
	ids := make([]string, len(e.visible))
	for i, r := range e.visible {
		ids[i] = r.id
	}
	var changed bool
	if e.selection.AllSelected(ids) {
		changed = e.selection.Deselect(ids)
	} else {
		changed = e.selection.SelectAll(ids)
	}
	if changed && e.callbacks.OnSelection != nil {
		e.callbacks.OnSelection(e.selection.Count())
	}
}

// ClearSelection empties the selection.
func (e *Engine[T]) ClearSelection() {
	if e.selection.Clear() && e.callbacks.OnSelection != nil {
		e.callbacks.OnSelection(0)
	}
}

// IsSelected reports whether the identity is selected.
func (e *Engine[T]) IsSelected(id string) bool {
	return e.selection.IsSelected(id)
}

// SelectedCount returns the number of selected identities.
func (e *Engine[T]) SelectedCount() int {
	return e.selection.Count()
}

// SelectedIdentities returns the selected identities in sorted order.
func (e *Engine[T]) SelectedIdentities() []string {
	return e.selection.Identities()
}

// SetWidth records the viewport width for the responsive projection.
// Switching modes changes only the rendering projection; search, filters,
// sort, page, and selection are untouched.
func (e *Engine[T]) SetWidth(width int) {
	e.width = width
}

// ToggleColumn flips a column's user-controlled visibility. Priority-based
// responsive folding is independent of this toggle.
func (e *Engine[T]) ToggleColumn(key string) {
	if e.columnByKey(key) == nil {
		return
	}
	e.hidden[key] = !e.hidden[key]
}

// ColumnHidden reports the user-controlled visibility toggle for a column.
func (e *Engine[T]) ColumnHidden(key string) bool {
	return e.hidden[key]
}

// Columns returns the full column descriptor set.
func (e *Engine[T]) Columns() []Column[T] {
	return e.columns
}

// TotalFiltered returns the record count after search and filters.
func (e *Engine[T]) TotalFiltered() int {
	return len(e.visible)
}

// Page returns the current 1-based page.
func (e *Engine[T]) Page() int {
	return e.page
}

// PageCount returns the number of pages for the filtered collection.
func (e *Engine[T]) PageCount() int {
	return pageCount(len(e.visible), e.pageSize)
}

// View assembles the current page window and projection. Given identical
// inputs the result is identical; the pipeline is a pure function of the
// raw records and the transient view state.
func (e *Engine[T]) View() View[T] {
	window := pageWindow(e.visible, e.page, e.pageSize)
	rows := make([]T, len(window))
	ids := make([]string, len(window))
	for i, r := range window {
		rows[i] = r.record
		ids[i] = r.id
	}
	mode, cols := project(e.width, e.breakpoint, e.columns, e.hidden)
	return View[T]{
		Rows:          rows,
		Identities:    ids,
		TotalFiltered: len(e.visible),
		Page:          e.page,
		PageCount:     e.PageCount(),
		Mode:          mode,
		Columns:       cols,
	}
}

func (e *Engine[T]) columnByKey(key string) *Column[T] {
	for i := range e.columns {
		if e.columns[i].Key == key {
			return &e.columns[i]
		}
	}
	return nil
}

// recompute runs the full pipeline: search → structured filters → sort,
// then re-clamps the page against the new filtered count. Pagination itself
// happens lazily in View.
func (e *Engine[T]) recompute() {
	visible := searchRows(e.rows, e.search, e.searchCols)
	visible = filterRows(visible, e.filters, e.predicates, e.callbacks.OnFilterError)

	if e.sort.Key != "" {
		if col := e.columnByKey(e.sort.Key); col != nil {
			// Sort a copy so repeated recomputations always start from
			// input order and stay deterministic.
			sorted := make([]row[T], len(visible))
			copy(sorted, visible)
			sortRows(sorted, *col, e.sort.Direction)
			visible = sorted
		}
	} else if len(visible) == len(e.rows) {
		// No stage restricted anything; copy so later SetRecords cannot
		// alias the visible slice.
		visible = append([]row[T](nil), visible...)
	}

	e.visible = visible
	e.page = clampPage(e.page, pageCount(len(visible), e.pageSize))
}
