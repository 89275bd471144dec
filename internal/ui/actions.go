package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// showActions opens the row-action modal for the record under the cursor.
// Resources without actions, or records whose state offers none (an already
// revoked certificate, a resolved approval), show nothing.
func (vm *viewModel) showActions() {
	actions := vm.currentPane().cursorActions()
	if len(actions) == 0 {
		vm.setFlash("no actions for this row")
		vm.renderFooter()
		return
	}

	labels := make([]string, 0, len(actions)+1)
	for _, a := range actions {
		labels = append(labels, a.Label)
	}
	labels = append(labels, "Cancel")

	modal := tview.NewModal().
		SetText("Choose an action").
		AddButtons(labels).
		SetBackgroundColor(vm.theme.SurfaceColor()).
		SetDoneFunc(func(index int, label string) {
			vm.closeModal()
			if index < 0 || index >= len(actions) {
				return
			}
			vm.confirmAction(actions[index])
		})
	vm.showModal(modal)
}

// confirmAction asks before mutating daemon state.
func (vm *viewModel) confirmAction(action rowAction) {
	modal := tview.NewModal().
		SetText(action.Confirm).
		AddButtons([]string{action.Label, "Cancel"}).
		SetBackgroundColor(vm.theme.SurfaceColor()).
		SetDoneFunc(func(index int, label string) {
			vm.closeModal()
			if index != 0 {
				return
			}
			vm.runAction(action)
		})
	vm.showModal(modal)
}

// runAction performs the daemon call off the event loop and reports the
// outcome in the footer. The next poll picks up the new resource state.
func (vm *viewModel) runAction(action rowAction) {
	go func() {
		err := action.Run(vm.options.Context, vm.options.Client)
		vm.app.QueueUpdateDraw(func() {
			if err != nil {
				vm.setFlash(fmt.Sprintf("%s failed: %v", action.Label, err))
			} else {
				vm.setFlash(fmt.Sprintf("%s: request accepted", action.Label))
			}
			vm.renderFooter()
		})
	}()
}
