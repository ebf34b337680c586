package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recco/internal/client/display"
	"github.com/dmitrijs2005/recco/internal/client/search"
)

// SearchScreen is the dedicated find-users screen. It owns its own search
// surface; typing here updates the header surface's displayed term through
// the shared signal, and vice versa. An initial query (the REPL's
// "search <text>") is searched immediately, mirroring arrival with a ?q=
// parameter.
func (a *App) SearchScreen(ctx context.Context, initial string) error {
	c := search.NewController("page", a.backend, a.config.DebounceInterval, a.signal, a.log)
	defer c.Close()

	a.titlef("Find users")
	a.mutedf("Type to search, 'open <n>' to view a profile, Enter to go back")

	if strings.TrimSpace(initial) != "" {
		a.runQuery(ctx, c, initial)
	}

	for {
		line, err := getSimpleText(a.reader, "Search by name", a.out)
		if err != nil || line == "" {
			return nil
		}

		if fields := strings.Fields(line); len(fields) == 2 && fields[0] == "open" {
			n, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				a.errorf("No such result")
				continue
			}
			user, ok := c.Select(n - 1)
			if !ok {
				a.errorf("No such result")
				continue
			}
			if err := a.UserProfile(ctx, user.ID); err != nil {
				a.log.Warn(ctx, "profile open failed", "error", err)
			}
			continue
		}

		a.runQuery(ctx, c, line)
	}
}

// QuickFind is the header surface: a one-shot search from the root prompt
// with an optional jump into a result's profile.
func (a *App) QuickFind(ctx context.Context, query string) error {
	a.header.SetQuery(ctx, query)
	st := a.awaitSearch(a.header)
	a.renderResults(st)
	if !st.Visible {
		return nil
	}

	line, err := getSimpleText(a.reader, "Open result number (Enter to skip)", a.out)
	if err != nil || line == "" {
		return nil
	}
	n, convErr := strconv.Atoi(line)
	if convErr != nil {
		a.errorf("No such result")
		return nil
	}
	user, ok := a.header.Select(n - 1)
	if !ok {
		a.errorf("No such result")
		return nil
	}
	return a.UserProfile(ctx, user.ID)
}

// runQuery feeds one line of input through the surface and renders the
// outcome once the debounced pass completes.
func (a *App) runQuery(ctx context.Context, c *search.Controller, term string) {
	c.SetQuery(ctx, term)
	st := a.awaitSearch(c)
	a.renderResults(st)
}

func (a *App) renderResults(st search.State) {
	if !st.Visible {
		if strings.TrimSpace(st.Term) != "" {
			a.mutedf("No users found matching %q", st.Term)
		}
		return
	}
	for i, u := range st.Results {
		fmt.Fprintf(a.out, "%2d. %s <%s>\n", i+1, display.Name(u), u.Email)
	}
}
