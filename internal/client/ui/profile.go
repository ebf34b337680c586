package ui

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/recco/internal/client/api"
	"github.com/dmitrijs2005/recco/internal/client/display"
	"github.com/dmitrijs2005/recco/internal/client/models"
)

// MyProfile renders the session user's own profile. A degraded session (only
// the email known) still renders.
func (a *App) MyProfile(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	a.titlef("My profile")
	a.renderUserCard(user)
	return nil
}

// UserProfile renders another user's profile with their interests. The
// argument is tried as an id first; on a not-found it is retried as an exact
// name, so "user Atai" works from the REPL.
func (a *App) UserProfile(ctx context.Context, idOrName string) error {
	user, err := a.backend.GetUserByID(ctx, idOrName)
	if err != nil && api.IsStatus(err, http.StatusNotFound) {
		user, err = a.backend.GetUserByName(ctx, idOrName)
	}
	if err != nil {
		if api.IsStatus(err, http.StatusNotFound) {
			a.errorf("User not found")
		} else {
			a.errorf("Failed to load user profile")
		}
		return err
	}

	a.titlef("%s", display.Name(user))
	a.renderUserCard(user)

	interests, err := a.backend.GetUserInterests(ctx, user.ID)
	if err != nil {
		a.log.Warn(ctx, "user interests fetch failed", "user", user.ID, "error", err)
		return nil
	}
	codes := models.UniqueInterestCodes(interests)
	if len(codes) > 0 {
		fmt.Fprintln(a.out, "Interests:")
		for _, code := range codes {
			fmt.Fprintf(a.out, "  %s\n", code)
		}
	}
	return nil
}

// Users prints the whole directory, the terminal rendition of the user grid.
func (a *App) Users(ctx context.Context) error {
	users, err := a.backend.ListUsers(ctx)
	if err != nil {
		a.errorf("Failed to fetch users")
		return err
	}

	a.titlef("Users")
	if len(users) == 0 {
		a.mutedf("No users found")
		return nil
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "  [%s] %s <%s>\n", shortID(u.ID), display.Name(u), u.Email)
	}
	return nil
}

func (a *App) renderUserCard(u models.User) {
	fmt.Fprintf(a.out, "  (%s) %s\n", display.Initial(u), display.Name(u))
	if u.Email != "" {
		fmt.Fprintf(a.out, "  Email: %s\n", u.Email)
	}
	if u.ID != "" {
		fmt.Fprintf(a.out, "  ID: %s\n", u.ID)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
