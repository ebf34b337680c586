package ui

import (
	"context"

	"github.com/dmitrijs2005/recco/internal/client/models"
)

// AddInterest collects the fields of a new interest type and submits it. The
// code may arrive prefilled from the dashboard; label is required, icon and
// description are optional.
func (a *App) AddInterest(ctx context.Context, code string) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	a.titlef("Add interest details")

	var err error
	if code == "" {
		code, err = getSimpleText(a.reader, "Enter code (e.g. BOOKS)", a.out)
		if err != nil {
			return err
		}
	}
	if code == "" {
		a.errorf("Code is required")
		return nil
	}

	label, err := getSimpleText(a.reader, "Enter label", a.out)
	if err != nil {
		return err
	}
	if label == "" {
		a.errorf("Label is required")
		return nil
	}

	icon, err := getSimpleText(a.reader, "Enter icon (optional)", a.out)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Enter description (optional):", a.out)
	if err != nil {
		return err
	}

	_, err = a.backend.AddInterestType(ctx, models.InterestType{
		Code:        code,
		Label:       label,
		Icon:        icon,
		Description: description,
		UserID:      user.ID,
	})
	if err != nil {
		a.errorf("%s", userMessage(err, "Failed to add interest"))
		return err
	}

	a.successf("Interest added successfully!")
	return nil
}
