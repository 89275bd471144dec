// Package tableview implements the interactive tabular data engine behind
// every resource pane in certview.
//
// # Overview
//
// The engine takes an arbitrary in-memory record collection and a column
// descriptor set and produces a searched, filtered, sorted, paginated, and
// selection-aware view of it. It never fetches data itself: the owning page
// controller hands it an already-loaded collection and reads back derived
// views and user-intent events.
//
// # Pipeline
//
// Data flows one direction on every state change:
//
//	raw records → search → structured filters → sort → page window
//
// The four pieces of transient view state (search text, filter values, sort
// spec, page) are pure inputs; the pipeline recomputes synchronously and
// deterministically on every change. A page-only change re-runs just the
// pagination stage. The selection tracker and the responsive projection are
// read alongside the pipeline output but never feed back into it, except
// that select-all is scoped to the currently filtered collection.
//
// # Stages
//
//   - Search: case-insensitive substring match over the configured
//     search-key columns. Empty query is a no-op.
//   - Structured filters: caller predicates keyed by filter name, combined
//     with logical AND. The empty string is the "no filter" sentinel. A
//     panicking predicate excludes only the offending record and is
//     reported through Callbacks.OnFilterError.
//   - Sort: stable, type-aware comparison (string, number, date). Values
//     that fail to parse for number/date columns sort after all parsable
//     values in both directions; descending order never pulls them forward.
//   - Pagination: 1-based page clamped into [1, pageCount] whenever the
//     filtered count changes; pageCount is never below 1.
//
// # Concurrency
//
// The engine is single-threaded and performs no I/O. Each instance is owned
// by exactly one presentation surface. Recomputation on every keystroke is
// O(n log n); callers with large collections should debounce rapid search
// input before feeding it in; the engine itself never throttles.
package tableview
