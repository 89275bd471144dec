// Package state provides thread-safe state management for the certview
// console.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing daemon
// status and resource collections between the background poller and the UI.
// It is the coordination point where polling updates meet UI rendering:
//
//	Producer (Poller):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ FetchStatus()  │            │                 │
//	│ Fetch*()       │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  repeat...     │            │  render panes   │
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
// On success the entire snapshot is replaced. On error the previous data is
// kept and the error recorded, so the UI always has the most recent
// successful data to display while still being informed of polling
// failures. ConsecutiveFailures drives the offline indicator.
//
// # Defensive Copying
//
// Both Update and Snapshot copy the resource slices so the poller and the
// UI never share mutable state. The collections are small (hundreds of
// records) and the copy is far simpler than any finer-grained coordination.
package state
