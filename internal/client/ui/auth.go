package ui

import (
	"context"

	"github.com/dmitrijs2005/recco/internal/client/api"
	"github.com/dmitrijs2005/recco/internal/client/display"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, exchanges them for a token, and hands the
// token to the session store, which persists it and resolves the profile.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		return nil
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer wipe(password)

	token, err := a.backend.Login(ctx, email, string(password))
	if err != nil {
		a.errorf("Login failed: %s", userMessage(err, "invalid email or password"))
		a.mutedf("No account yet? Type 'register' to create one.")
		return err
	}

	if err := a.session.Login(ctx, token); err != nil {
		a.errorf("Could not store session: %v", err)
		return err
	}

	if user, ok := a.session.User(); ok {
		a.successf("Logged in as %s", display.Name(user))
	} else {
		a.successf("Logged in")
	}
	return nil
}

// Register collects the account fields and creates the user. The password
// confirmation is validated locally before anything goes on the wire.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	surname, err := getSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer wipe(password)

	confirm, err := getPassword(a.out, "Confirm password: ")
	if err != nil {
		return err
	}
	defer wipe(confirm)

	if string(password) != string(confirm) {
		a.errorf("Passwords do not match")
		return nil
	}

	_, err = a.backend.Register(ctx, api.RegisterRequest{
		Name:     name,
		Surname:  surname,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		a.errorf("%s", userMessage(err, "Failed to register user"))
		return err
	}

	a.successf("User registered successfully!")
	return nil
}

// Logout clears the session and returns the user to the unauthenticated
// prompt.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	a.successf("Logged out")
	return nil
}
