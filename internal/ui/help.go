package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/rivo/tview"
)

// showHelp opens the key-binding reference, built from the key map so it
// never drifts from the actual bindings.
func (vm *viewModel) showHelp() {
	text := vm.theme.Text

	var b strings.Builder
	fmt.Fprintf(&b, "[%s::b]certview keys[-]\n\n", text.Accent)
	fmt.Fprintf(&b, "[%s]1-7 switch resource pane directly[-]\n\n", text.Primary)

	groups := []struct {
		name     string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{vm.keys.Tab, vm.keys.ShiftTab, vm.keys.Up, vm.keys.Down, vm.keys.Top, vm.keys.Bottom}},
		{"Search & filter", []key.Binding{vm.keys.Search, vm.keys.Escape, vm.keys.CycleFilter}},
		{"Sort & pages", []key.Binding{vm.keys.CycleSort, vm.keys.ToggleOrder, vm.keys.PrevPage, vm.keys.NextPage, vm.keys.GrowPage, vm.keys.ShrinkPage, vm.keys.ToggleColumns}},
		{"Selection", []key.Binding{vm.keys.ToggleSelect, vm.keys.SelectAll, vm.keys.ClearSelection}},
		{"Other", []key.Binding{vm.keys.Actions, vm.keys.CycleTheme, vm.keys.Help, vm.keys.Quit}},
	}

	for _, group := range groups {
		fmt.Fprintf(&b, "[%s::b]%s[-]\n", text.Muted, group.name)
		for _, binding := range group.bindings {
			help := binding.Help()
			fmt.Fprintf(&b, "  [%s]%-12s[-] [%s]%s[-]\n",
				text.Accent, tview.Escape(help.Key), text.Primary, tview.Escape(help.Desc))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "[%s]Press any key to close.[-]", text.Faint)

	view := tview.NewTextView().SetDynamicColors(true).SetText(b.String())
	view.SetBackgroundColor(vm.theme.SurfaceColor())
	view.SetBorder(true)
	view.SetBorderColor(hexToColor(vm.theme.BorderFocus))
	view.SetTitle(" Help ")
	view.SetTitleColor(hexToColor(vm.theme.Text.Muted))

	vm.showModal(centeredModal(view, 56, 30))
}
