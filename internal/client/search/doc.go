// Package search implements the one autocomplete controller shared by every
// search surface in the client.
//
// A surface feeds keystrokes into Controller.SetQuery. The displayed term
// updates immediately; the fetch-and-filter pass is debounced, so only the
// last keystroke inside the quiet period does network work. Matching is
// uniform across surfaces (see Match): case-insensitive prefix on the first
// or full name, plus email substring when the query contains '@' or '.'.
//
// Two live surfaces (the header quick-search and the search screen) share a
// Signal that mirrors query text between them. Each surface still performs
// its own fetch and filter; only the text is shared.
//
// Cancellation covers pending timers only. A request already in flight runs
// to completion and its result is applied even when a newer query has been
// typed; debouncing makes that window small but does not close it.
package search
