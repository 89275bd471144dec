package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/rivo/tview"

	"github.com/bastionhq/certview/internal/prefs"
	"github.com/bastionhq/certview/internal/state"
)

// viewModel owns the tview widget tree and the per-resource panes. All of
// its methods run on the tview event loop.
type viewModel struct {
	app     *tview.Application
	options Options
	theme   Theme
	keys    keyMap

	root   *tview.Pages
	layout *tview.Flex
	bottom *tview.Flex

	header    *tview.TextView
	tabs      *tview.TextView
	table     *tview.Table
	detail    *tview.TextView
	footer    *tview.TextView
	searchBar *tview.InputField

	panes   []pane
	current int

	searchMode bool
	helpOpen   bool

	flash   string
	flashAt time.Time

	lastRefresh time.Time
}

const flashDuration = 5 * time.Second

func newViewModel(app *tview.Application, opts Options) (*viewModel, error) {
	vm := &viewModel{
		app:     app,
		options: opts,
		theme:   themeByName(opts.ThemeName),
		keys:    defaultKeyMap(),
	}

	notify := vm.setFlash
	pageSize := opts.PageSize

	certs, err := newCertificatesPane(pageSize, notify)
	if err != nil {
		return nil, err
	}
	authorities, err := newAuthoritiesPane(pageSize, notify)
	if err != nil {
		return nil, err
	}
	requests, err := newRequestsPane(pageSize, notify)
	if err != nil {
		return nil, err
	}
	templates, err := newTemplatesPane(pageSize, notify)
	if err != nil {
		return nil, err
	}
	anchors, err := newTrustAnchorsPane(pageSize, notify)
	if err != nil {
		return nil, err
	}
	approvals, err := newApprovalsPane(pageSize, notify)
	if err != nil {
		return nil, err
	}
	auditTrail, err := newAuditPane(pageSize, notify)
	if err != nil {
		return nil, err
	}
	vm.panes = []pane{certs, authorities, requests, templates, anchors, approvals, auditTrail}

	vm.buildWidgets()
	return vm, nil
}

func (vm *viewModel) buildWidgets() {
	vm.header = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	vm.tabs = tview.NewTextView().SetDynamicColors(true).SetWrap(false)

	vm.table = tview.NewTable().SetFixed(1, 0)
	vm.table.SetBorder(true)

	vm.detail = tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	vm.detail.SetBorder(true)
	vm.detail.SetTitle(" Detail ")

	vm.footer = tview.NewTextView().SetDynamicColors(true).SetWrap(false)

	vm.searchBar = tview.NewInputField().SetLabel(" / ")
	vm.searchBar.SetChangedFunc(func(text string) {
		// Live search: every keystroke re-runs the pipeline.
		vm.currentPane().setSearch(text)
		vm.renderCurrent()
	})

	vm.applyTheme()

	content := tview.NewFlex().
		AddItem(vm.table, 0, 3, true).
		AddItem(vm.detail, 0, 2, false)

	vm.bottom = tview.NewFlex().AddItem(vm.footer, 0, 1, false)

	vm.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(vm.header, 1, 0, false).
		AddItem(vm.tabs, 1, 0, false).
		AddItem(content, 0, 1, true).
		AddItem(vm.bottom, 1, 0, false)

	vm.root = tview.NewPages().AddPage("main", vm.layout, true, true)
}

// applyTheme pushes the active theme's colors onto the widget tree.
func (vm *viewModel) applyTheme() {
	surface := vm.theme.SurfaceColor()

	vm.header.SetBackgroundColor(hexToColor(vm.theme.HeaderBg))
	vm.tabs.SetBackgroundColor(surface)

	vm.table.SetBackgroundColor(surface)
	vm.table.SetBorderColor(hexToColor(vm.theme.BorderFocus))

	vm.detail.SetBackgroundColor(surface)
	vm.detail.SetBorderColor(hexToColor(vm.theme.Border))
	vm.detail.SetTitleColor(hexToColor(vm.theme.Text.Muted))

	vm.footer.SetBackgroundColor(hexToColor(vm.theme.HeaderBg))

	vm.searchBar.SetLabelColor(hexToColor(vm.theme.Text.Accent))
	vm.searchBar.SetFieldBackgroundColor(hexToColor(vm.theme.SelectionBg))
	vm.searchBar.SetFieldTextColor(hexToColor(vm.theme.Text.Primary))
	vm.searchBar.SetBackgroundColor(hexToColor(vm.theme.HeaderBg))
}

// cycleTheme flips to the next theme and persists the choice.
func (vm *viewModel) cycleTheme() {
	if vm.theme.Name == "slate" {
		vm.theme = contrastTheme()
	} else {
		vm.theme = slateTheme()
	}
	vm.applyTheme()
	vm.savePrefs()
	vm.setFlash("theme: " + vm.theme.Name)
	vm.renderCurrent()
}

// savePrefs persists theme and page size. Failures are surfaced but never
// interrupt the session.
func (vm *viewModel) savePrefs() {
	p := prefs.Prefs{Theme: vm.theme.Name, PageSize: vm.currentPane().pageSize()}
	if err := prefs.Save(vm.options.PrefsPath, p); err != nil {
		vm.setFlash(fmt.Sprintf("save prefs: %v", err))
	}
}

func (vm *viewModel) currentPane() pane {
	return vm.panes[vm.current]
}

// switchPane activates the pane at index, wrapping around both ends.
func (vm *viewModel) switchPane(index int) {
	n := len(vm.panes)
	vm.current = ((index % n) + n) % n
	vm.renderCurrent()
}

func (vm *viewModel) setFlash(msg string) {
	vm.flash = msg
	vm.flashAt = time.Now()
}

// update applies a fresh snapshot from the store. Called on every UI tick.
func (vm *viewModel) update(snapshot state.Snapshot) {
	for _, p := range vm.panes {
		p.setResources(snapshot.Resources)
	}
	vm.lastRefresh = snapshot.LastUpdated
	vm.renderHeader(snapshot)
	vm.renderCurrent()
}

// renderCurrent redraws the tab bar, table, detail pane, and footer for the
// active pane.
func (vm *viewModel) renderCurrent() {
	vm.renderTabs()

	_, _, width, _ := vm.table.GetInnerRect()
	if width <= 0 {
		width = 120
	}
	active := vm.currentPane()
	active.setWidth(width)
	active.render(vm.table, vm.theme, !vm.searchMode)
	vm.detail.SetText(active.detailText(vm.theme))
	vm.renderFooter()
}

func (vm *viewModel) renderTabs() {
	text := vm.theme.Text
	parts := make([]string, 0, len(vm.panes))
	for i, p := range vm.panes {
		label := fmt.Sprintf("%d %s", i+1, p.title())
		if i == vm.current {
			parts = append(parts, fmt.Sprintf("[%s:%s:b] %s [-:-:-]", text.Primary, vm.theme.SelectionBg, label))
		} else {
			parts = append(parts, fmt.Sprintf("[%s] %s [-]", text.Faint, label))
		}
	}
	vm.tabs.SetText(strings.Join(parts, " "))
}

func (vm *viewModel) renderFooter() {
	text := vm.theme.Text

	if vm.flash != "" && time.Since(vm.flashAt) < flashDuration {
		vm.footer.SetText(fmt.Sprintf(" [%s]%s[-]", text.Warning, tview.Escape(vm.flash)))
		return
	}

	status := vm.currentPane().statusLine(vm.theme)
	hints := fmt.Sprintf("[%s]%s[-]", text.Faint,
		tview.Escape("/ search  f filter  s sort  o order  [ ] page  space select  x actions  h help  e quit"))
	vm.footer.SetText(" " + status + "   " + hints)
}

// startSearch swaps the footer for the search input and seeds it with the
// pane's active query.
func (vm *viewModel) startSearch() {
	if vm.searchMode {
		return
	}
	vm.searchMode = true
	vm.searchBar.SetText(vm.currentPane().activeSearch())
	vm.bottom.Clear()
	vm.bottom.AddItem(vm.searchBar, 0, 1, true)
	vm.app.SetFocus(vm.searchBar)
}

// commitSearch leaves search mode keeping the entered query active.
func (vm *viewModel) commitSearch() {
	vm.exitSearchMode()
}

// cancelSearch leaves search mode and clears the query.
func (vm *viewModel) cancelSearch() {
	vm.currentPane().setSearch("")
	vm.exitSearchMode()
}

func (vm *viewModel) exitSearchMode() {
	vm.searchMode = false
	vm.bottom.Clear()
	vm.bottom.AddItem(vm.footer, 0, 1, false)
	vm.app.SetFocus(vm.table)
	vm.renderCurrent()
}

func (vm *viewModel) showModal(p tview.Primitive) {
	vm.root.AddPage("modal", p, true, true)
}

func (vm *viewModel) closeModal() {
	vm.root.RemovePage("modal")
	vm.app.SetFocus(vm.table)
	vm.renderCurrent()
}

// centeredModal wraps a primitive in a fixed-size centered grid.
func centeredModal(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewGrid().
		SetColumns(0, width, 0).
		SetRows(0, height, 0).
		AddItem(p, 1, 1, 1, 1, 0, 0, true)
}
