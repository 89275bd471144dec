package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rivo/tview"

	"github.com/bastionhq/certview/internal/bastion"
	"github.com/bastionhq/certview/internal/state"
	"github.com/bastionhq/certview/internal/tableview"
)

// rowAction is a daemon operation offered for the record under the cursor.
// run is bound to the record at the time the actions modal opens.
type rowAction struct {
	Label   string
	Confirm string
	Run     func(ctx context.Context, client *bastion.Client) error
}

// filterOption is one stop in a pane's filter cycle. An empty value turns
// the filter off.
type filterOption struct {
	Key   string
	Value string
	Label string
}

// pane is the per-resource surface the view model drives. Each resource tab
// implements it through resourcePane with its own record type.
type pane interface {
	title() string
	setResources(res state.Resources)

	setSearch(query string)
	activeSearch() string

	cycleFilter()
	filterLabel() string

	cycleSort()
	toggleOrder()
	sortLabel() string

	nextPage()
	prevPage()
	growPageSize()
	shrinkPageSize()
	pageSize() int
	setWidth(width int)
	toggleWideColumns()

	moveCursor(delta int)
	cursorTop()
	cursorBottom()

	toggleSelect()
	toggleSelectAll()
	clearSelection()
	selectedCount() int

	render(table *tview.Table, theme Theme, focused bool)
	statusLine(theme Theme) string
	detailText(theme Theme) string
	cursorActions() []rowAction
}

// resourcePane adapts one resource collection onto the shared table engine.
// The cursor is tracked by record identity so it survives refreshes that
// reorder or remove rows.
type resourcePane[T any] struct {
	name    string
	engine  *tableview.Engine[T]
	extract func(state.Resources) []T
	detail  func(T, Theme) string
	actions func(T) []rowAction

	filters   []filterOption
	filterIdx int

	sortKeys []string

	cursor   int
	cursorID string

	wide bool
	// wideKeys are the column keys hidden by default and revealed by the
	// wide-columns toggle.
	wideKeys []string
}

func newResourcePane[T any](name string, cfg tableview.Config[T], extract func(state.Resources) []T) (*resourcePane[T], error) {
	engine, err := tableview.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s pane: %w", name, err)
	}
	sortKeys := make([]string, 0, len(cfg.Columns))
	for _, col := range cfg.Columns {
		if col.Sortable {
			sortKeys = append(sortKeys, col.Key)
		}
	}
	return &resourcePane[T]{
		name:     name,
		engine:   engine,
		extract:  extract,
		sortKeys: sortKeys,
	}, nil
}

func (p *resourcePane[T]) title() string { return p.name }

// setResources replaces the collection on a poll refresh. Replacement resets
// the engine's search, so the still-active query is re-applied to keep the
// user's view stable across refreshes.
func (p *resourcePane[T]) setResources(res state.Resources) {
	query := p.engine.Search()
	p.engine.SetRecords(p.extract(res))
	if query != "" {
		p.engine.SetSearch(query)
	}
	p.restoreCursor()
}

func (p *resourcePane[T]) setSearch(query string) {
	p.engine.SetSearch(query)
	p.restoreCursor()
}

func (p *resourcePane[T]) activeSearch() string {
	return p.engine.Search()
}

func (p *resourcePane[T]) cycleFilter() {
	if len(p.filters) == 0 {
		return
	}
	prev := p.filters[p.filterIdx]
	p.filterIdx = (p.filterIdx + 1) % len(p.filters)
	next := p.filters[p.filterIdx]
	if prev.Key != "" && prev.Key != next.Key {
		p.engine.SetFilter(prev.Key, "")
	}
	if next.Key != "" {
		p.engine.SetFilter(next.Key, next.Value)
	} else if prev.Key != "" {
		p.engine.SetFilter(prev.Key, "")
	}
	p.cursor = 0
	p.restoreCursor()
}

func (p *resourcePane[T]) filterLabel() string {
	if len(p.filters) == 0 {
		return "All"
	}
	return p.filters[p.filterIdx].Label
}

// cycleSort moves the active sort to the next sortable column, ascending.
func (p *resourcePane[T]) cycleSort() {
	if len(p.sortKeys) == 0 {
		return
	}
	current := p.engine.Sort().Key
	next := p.sortKeys[0]
	for i, key := range p.sortKeys {
		if key == current {
			next = p.sortKeys[(i+1)%len(p.sortKeys)]
			break
		}
	}
	p.engine.SetSort(tableview.SortSpec{Key: next, Direction: tableview.Ascending})
	p.restoreCursor()
}

func (p *resourcePane[T]) toggleOrder() {
	spec := p.engine.Sort()
	if spec.Key == "" {
		return
	}
	spec.Direction = spec.Direction.Toggle()
	p.engine.SetSort(spec)
	p.restoreCursor()
}

func (p *resourcePane[T]) sortLabel() string {
	spec := p.engine.Sort()
	if spec.Key == "" {
		return "none"
	}
	arrow := "↑"
	if spec.Direction == tableview.Descending {
		arrow = "↓"
	}
	return spec.Key + " " + arrow
}

func (p *resourcePane[T]) nextPage() {
	p.engine.NextPage()
	p.cursor = 0
	p.rememberCursor()
}

func (p *resourcePane[T]) prevPage() {
	p.engine.PrevPage()
	p.cursor = 0
	p.rememberCursor()
}

var pageSizeSteps = []int{10, 20, 50, 100}

func (p *resourcePane[T]) growPageSize() {
	size := p.engine.PageSize()
	for _, step := range pageSizeSteps {
		if step > size {
			p.engine.SetPageSize(step)
			break
		}
	}
	p.restoreCursor()
}

func (p *resourcePane[T]) shrinkPageSize() {
	size := p.engine.PageSize()
	for i := len(pageSizeSteps) - 1; i >= 0; i-- {
		if pageSizeSteps[i] < size {
			p.engine.SetPageSize(pageSizeSteps[i])
			break
		}
	}
	p.restoreCursor()
}

func (p *resourcePane[T]) pageSize() int {
	return p.engine.PageSize()
}

func (p *resourcePane[T]) setWidth(width int) {
	p.engine.SetWidth(width)
}

func (p *resourcePane[T]) toggleWideColumns() {
	for _, key := range p.wideKeys {
		p.engine.ToggleColumn(key)
	}
	p.wide = !p.wide
}

func (p *resourcePane[T]) moveCursor(delta int) {
	view := p.engine.View()
	if len(view.Rows) == 0 {
		p.cursor = 0
		p.cursorID = ""
		return
	}
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(view.Rows) {
		p.cursor = len(view.Rows) - 1
	}
	p.cursorID = view.Identities[p.cursor]
}

func (p *resourcePane[T]) cursorTop() {
	p.cursor = 0
	p.rememberCursor()
}

func (p *resourcePane[T]) cursorBottom() {
	view := p.engine.View()
	if len(view.Rows) == 0 {
		return
	}
	p.cursor = len(view.Rows) - 1
	p.cursorID = view.Identities[p.cursor]
}

func (p *resourcePane[T]) toggleSelect() {
	view := p.engine.View()
	if p.cursor < 0 || p.cursor >= len(view.Identities) {
		return
	}
	p.engine.ToggleID(view.Identities[p.cursor])
}

func (p *resourcePane[T]) toggleSelectAll() {
	p.engine.ToggleSelectAll()
}

func (p *resourcePane[T]) clearSelection() {
	p.engine.ClearSelection()
}

func (p *resourcePane[T]) selectedCount() int {
	return p.engine.SelectedCount()
}

func (p *resourcePane[T]) statusLine(theme Theme) string {
	text := theme.Text
	view := p.engine.View()
	parts := []string{
		fmt.Sprintf("[%s]%d items[-]", text.Muted, view.TotalFiltered),
		fmt.Sprintf("[%s]Page %d/%d[-]", text.Muted, view.Page, view.PageCount),
	}
	if q := p.engine.Search(); q != "" {
		parts = append(parts, fmt.Sprintf("[%s]/%s[-]", text.Accent, tview.Escape(q)))
	}
	if label := p.filterLabel(); label != "All" {
		parts = append(parts, fmt.Sprintf("[%s]Filter:[-] [%s]%s[-]", text.Muted, text.Warning, label))
	}
	parts = append(parts, fmt.Sprintf("[%s]Sort:[-] [%s]%s[-]", text.Muted, text.Primary, p.sortLabel()))
	if n := p.selectedCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("[%s]%d selected[-]", text.Accent, n))
	}
	return strings.Join(parts, "  ")
}

func (p *resourcePane[T]) detailText(theme Theme) string {
	rec, ok := p.cursorRecord()
	if !ok {
		return fmt.Sprintf("[%s]No %s to show.[-]", theme.Text.Muted, strings.ToLower(p.name))
	}
	if p.detail == nil {
		return ""
	}
	return p.detail(rec, theme)
}

func (p *resourcePane[T]) cursorActions() []rowAction {
	rec, ok := p.cursorRecord()
	if !ok || p.actions == nil {
		return nil
	}
	return p.actions(rec)
}

func (p *resourcePane[T]) cursorRecord() (T, bool) {
	var zero T
	view := p.engine.View()
	if p.cursor < 0 || p.cursor >= len(view.Rows) {
		return zero, false
	}
	return view.Rows[p.cursor], true
}

// rememberCursor records the identity under the cursor after a move.
func (p *resourcePane[T]) rememberCursor() {
	view := p.engine.View()
	if len(view.Identities) == 0 {
		p.cursorID = ""
		return
	}
	if p.cursor >= len(view.Identities) {
		p.cursor = len(view.Identities) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.cursorID = view.Identities[p.cursor]
}

// idString formats a numeric record ID as an engine identity.
func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

// fieldEquals builds a structured-filter predicate matching a string field
// case-insensitively.
func fieldEquals[T any](get func(T) string) tableview.Predicate[T] {
	return func(rec T, value string) bool {
		return strings.EqualFold(strings.TrimSpace(get(rec)), value)
	}
}

// orDash substitutes a dash for empty field values in detail views.
func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

// restoreCursor finds the previously focused identity in the refreshed page
// window, falling back to a clamped index when it is gone.
func (p *resourcePane[T]) restoreCursor() {
	view := p.engine.View()
	if len(view.Identities) == 0 {
		p.cursor = 0
		p.cursorID = ""
		return
	}
	if p.cursorID != "" {
		for i, id := range view.Identities {
			if id == p.cursorID {
				p.cursor = i
				return
			}
		}
	}
	if p.cursor >= len(view.Identities) {
		p.cursor = len(view.Identities) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.cursorID = view.Identities[p.cursor]
}
