package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/recco/internal/client/models"
	"github.com/dmitrijs2005/recco/internal/logging"
)

// Directory is the slice of the API client the controller needs. Every query
// fetches the full user list fresh; filtering happens client-side.
type Directory interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// State is one surface's autocomplete state. Results keep directory order;
// Visible is true iff the last completed search produced at least one match.
// Searched flips to true when a fetch+filter pass finishes for the current
// term, so callers can tell "no results yet" from "no results".
type State struct {
	Term     string
	Results  []models.User
	Visible  bool
	Searched bool
}

// Controller drives one search surface. Keystrokes update the displayed term
// immediately; fetch and filter run only after the quiet period. Two
// instances exist at runtime (header and search screen), sharing a Signal so
// their terms stay in sync while each keeps its own results.
type Controller struct {
	surface   string
	directory Directory
	debounce  *Debouncer
	signal    *Signal
	log       logging.Logger

	mu       sync.Mutex
	state    State
	onChange func(State)

	unsubscribe func()
}

// NewController builds a controller for the named surface. signal may be nil
// for a standalone surface. delay <= 0 uses DefaultQuietPeriod.
func NewController(surface string, directory Directory, delay time.Duration, signal *Signal, log logging.Logger) *Controller {
	c := &Controller{
		surface:   surface,
		directory: directory,
		debounce:  NewDebouncer(delay),
		signal:    signal,
		log:       log.With("component", "search", "surface", surface),
	}
	if signal != nil {
		c.unsubscribe = signal.Subscribe(c.onSignal)
	}
	return c
}

// OnChange registers the render callback, invoked with a state snapshot after
// every mutation. Must be set before input starts flowing. The callback runs
// with the controller locked and must not call back into it.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// onSignal mirrors another surface's query text. Only the displayed term is
// adopted; this surface does not search on behalf of the other one.
func (c *Controller) onSignal(origin, term string) {
	if origin == c.surface {
		return
	}
	c.mu.Lock()
	c.state.Term = term
	c.notifyLocked()
	c.mu.Unlock()
}

// SetQuery handles one keystroke's worth of input: the term shows
// immediately, the other surface is notified, and the actual fetch+filter is
// debounced. An empty or whitespace-only term clears results and issues no
// network call.
func (c *Controller) SetQuery(ctx context.Context, term string) {
	c.mu.Lock()
	c.state.Term = term
	c.state.Searched = false
	c.notifyLocked()
	c.mu.Unlock()

	if c.signal != nil {
		c.signal.Publish(c.surface, term)
	}

	if strings.TrimSpace(term) == "" {
		c.debounce.Stop()
		c.mu.Lock()
		c.state.Results = nil
		c.state.Visible = false
		c.notifyLocked()
		c.mu.Unlock()
		return
	}

	c.debounce.Trigger(func() { c.runSearch(ctx, term) })
}

// runSearch fetches the directory and filters it for term. A response from a
// superseded query still applies; debouncing narrows that window but a slow
// older request may overwrite newer results. That race is accepted.
func (c *Controller) runSearch(ctx context.Context, term string) {
	users, err := c.directory.ListUsers(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.log.Warn(ctx, "user fetch failed", "error", err)
		c.state.Results = nil
		c.state.Visible = false
		c.state.Searched = true
		c.notifyLocked()
		return
	}

	matched := Filter(users, term)
	c.state.Results = matched
	c.state.Visible = len(matched) > 0
	c.state.Searched = true
	c.notifyLocked()
}

// Select picks a result by index, clearing the query and hiding the dropdown
// as the original surfaces do on selection. Returns false for an index out of
// range.
func (c *Controller) Select(index int) (models.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.state.Results) {
		return models.User{}, false
	}
	chosen := c.state.Results[index]

	c.state.Term = ""
	c.state.Results = nil
	c.state.Visible = false
	c.state.Searched = false
	c.notifyLocked()

	if c.signal != nil {
		// deliver off the lock; subscribers take their own locks
		go c.signal.Publish(c.surface, "")
	}
	return chosen, true
}

// Submit returns the raw trimmed term for full-search navigation. Submitting
// always navigates regardless of the autocomplete result count.
func (c *Controller) Submit() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.TrimSpace(c.state.Term)
}

// State returns a snapshot of the surface state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close cancels pending work and detaches from the signal.
func (c *Controller) Close() {
	c.debounce.Stop()
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// notifyLocked invokes the render callback with a snapshot. Caller holds mu.
func (c *Controller) notifyLocked() {
	if c.onChange != nil {
		c.onChange(c.state)
	}
}
