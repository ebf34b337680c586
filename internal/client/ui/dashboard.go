package ui

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recco/internal/client/models"
)

// Dashboard shows the interest types available to the current user next to
// the interests they already posted about. A failure on either fetch becomes
// a banner; the other half still renders.
func (a *App) Dashboard(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	a.titlef("My interests")

	available, err := a.backend.GetDashboard(ctx, user.ID)
	if err != nil {
		a.log.Warn(ctx, "dashboard fetch failed", "error", err)
		a.errorf("Failed to load interests")
	}

	fmt.Fprintln(a.out, "Available interests:")
	if len(available) == 0 {
		a.mutedf("  No interests available")
	}
	for _, it := range available {
		label := it.Label
		if label != "" {
			label = " — " + label
		}
		fmt.Fprintf(a.out, "  %s%s\n", it.Code, label)
	}

	mine, err := a.backend.GetUserInterests(ctx, user.ID)
	if err != nil {
		// the original dashboard only logs this one
		a.log.Warn(ctx, "user interests fetch failed", "error", err)
	}

	fmt.Fprintln(a.out, "My interests:")
	codes := models.UniqueInterestCodes(mine)
	if len(codes) == 0 {
		a.mutedf("  No interests added yet. Start by adding some above!")
	}
	for _, code := range codes {
		fmt.Fprintf(a.out, "  %s\n", code)
	}

	a.mutedf("Use 'posts <code>' to read posts, 'add <code>' to add an interest")
	return nil
}
