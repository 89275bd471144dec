// Package ui provides the terminal user interface for certview.
//
// # Architecture Overview
//
// The UI is built on tview and styled after k9s. Seven resource panes share
// a single table widget: certificates, authorities, signing requests,
// templates, trust anchors, approvals, and the audit trail. Each pane owns a
// tableview.Engine that runs the search, filter, sort, and pagination
// pipeline over the snapshot data the background poller writes into
// state.Store.
//
// # Package Structure
//
//   - ui.go: Run function, refresh loop, input capture
//   - viewmodel.go: widget tree, pane switching, footer and tab rendering
//   - panes.go: the pane interface and the generic resourcePane adapter
//   - certificates.go, authorities.go, requests.go, templates.go,
//     anchors.go, approvals.go, audit.go: per-resource columns, filters,
//     details, and row actions
//   - render.go: table and compact-list rendering of an engine view
//   - input_handlers.go: tcell event routing through the key map
//   - keys.go: key bindings
//   - status.go: daemon status header
//   - actions.go: row-action and confirmation modals
//   - help.go: key-binding reference overlay
//   - theme.go: color themes
//
// # Event Flow
//
//  1. Run() builds the viewModel and its panes
//  2. A background goroutine snapshots state.Store once a second and calls
//     viewModel.update() on the tview event loop
//  3. Key events drive the active pane's engine (search, filter, sort,
//     paging, selection); each change re-renders synchronously
//  4. Row actions (revoke, approve, deny) call the bastion client off the
//     event loop; the next poll reflects the daemon's new state
//  5. Context cancellation cleanly shuts down the UI
//
// # Key Bindings
//
//   - 1-7: switch resource pane directly, Tab/Shift+Tab cycle
//   - j/k, g/G: move the cursor within the current page
//   - /: search, ESC clears
//   - f: cycle the pane's filter, s: cycle sort column, o: flip order
//   - [ and ]: previous/next page, + and -: page size
//   - v: toggle wide columns
//   - Space: select row, a: select all filtered, c: clear selection
//   - x or Enter: row actions
//   - T: cycle theme
//   - h or ?: help, e or Ctrl+C: exit
package ui
