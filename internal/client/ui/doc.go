// Package ui provides the interactive recco terminal client.
//
// It wires configuration, the session store, the API client, and an
// interactive REPL with one method per screen: login, register, dashboard,
// add-interest, interest posts with inline description editing, profiles,
// the user directory, and user search.
//
// Two search surfaces exist: the header quick-search on the root prompt
// ("find") and the dedicated search screen ("search"). Each runs its own
// fetch and filter through a search.Controller; a shared signal keeps their
// displayed query text in sync.
//
// The REPL is started via App.Run(ctx), which first bootstraps the session
// from the persisted token and blocks until the user exits. Screens render
// error banners for failed fetches and never terminate the loop.
package ui
