package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/gdamore/tcell/v2"
)

// eventString maps a tcell key event onto the string form the key map's
// bindings are declared with.
func eventString(event *tcell.EventKey) string {
	switch event.Key() {
	case tcell.KeyRune:
		return string(event.Rune())
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdown"
	default:
		return ""
	}
}

// matches reports whether the event triggers the binding.
func matches(event *tcell.EventKey, binding key.Binding) bool {
	s := eventString(event)
	if s == "" {
		return false
	}
	for _, k := range binding.Keys() {
		if k == s {
			return true
		}
	}
	return false
}

// handleKey routes one key event. A nil return means the event was consumed.
func (vm *viewModel) handleKey(event *tcell.EventKey) *tcell.EventKey {
	// Ctrl+C always quits, even with a modal or the search bar focused.
	if event.Key() == tcell.KeyCtrlC {
		vm.app.Stop()
		return nil
	}

	// Modals own the keyboard; any key closes the help overlay.
	if vm.root.HasPage("modal") {
		if vm.helpOpen {
			vm.helpOpen = false
			vm.closeModal()
			return nil
		}
		return event
	}

	// Search mode: Enter commits, Esc cancels, everything else edits.
	if vm.searchMode {
		switch event.Key() {
		case tcell.KeyEnter:
			vm.commitSearch()
			return nil
		case tcell.KeyEscape:
			vm.cancelSearch()
			return nil
		}
		return event
	}

	// Direct pane switching on 1-6.
	if event.Key() == tcell.KeyRune {
		r := event.Rune()
		if r >= '1' && r <= '9' {
			index := int(r - '1')
			if index < len(vm.panes) {
				vm.switchPane(index)
				return nil
			}
		}
	}

	keys := vm.keys
	p := vm.currentPane()
	switch {
	case matches(event, keys.Quit):
		vm.app.Stop()
	case matches(event, keys.Help):
		vm.helpOpen = true
		vm.showHelp()
	case matches(event, keys.Tab):
		vm.switchPane(vm.current + 1)
	case matches(event, keys.ShiftTab):
		vm.switchPane(vm.current - 1)
	case matches(event, keys.Escape):
		if p.activeSearch() != "" {
			p.setSearch("")
			vm.renderCurrent()
		}

	case matches(event, keys.Up):
		p.moveCursor(-1)
		vm.renderCurrent()
	case matches(event, keys.Down):
		p.moveCursor(1)
		vm.renderCurrent()
	case matches(event, keys.Top):
		p.cursorTop()
		vm.renderCurrent()
	case matches(event, keys.Bottom):
		p.cursorBottom()
		vm.renderCurrent()

	case matches(event, keys.Search):
		vm.startSearch()
	case matches(event, keys.CycleFilter):
		p.cycleFilter()
		vm.renderCurrent()
	case matches(event, keys.CycleSort):
		p.cycleSort()
		vm.renderCurrent()
	case matches(event, keys.ToggleOrder):
		p.toggleOrder()
		vm.renderCurrent()

	case matches(event, keys.NextPage):
		p.nextPage()
		vm.renderCurrent()
	case matches(event, keys.PrevPage):
		p.prevPage()
		vm.renderCurrent()
	case matches(event, keys.GrowPage):
		p.growPageSize()
		vm.savePrefs()
		vm.renderCurrent()
	case matches(event, keys.ShrinkPage):
		p.shrinkPageSize()
		vm.savePrefs()
		vm.renderCurrent()
	case matches(event, keys.ToggleColumns):
		p.toggleWideColumns()
		vm.renderCurrent()

	case matches(event, keys.ToggleSelect):
		p.toggleSelect()
		vm.renderCurrent()
	case matches(event, keys.SelectAll):
		p.toggleSelectAll()
		vm.renderCurrent()
	case matches(event, keys.ClearSelection):
		p.clearSelection()
		vm.renderCurrent()

	case matches(event, keys.Actions):
		vm.showActions()

	case matches(event, keys.CycleTheme):
		vm.cycleTheme()

	default:
		return event
	}
	return nil
}
