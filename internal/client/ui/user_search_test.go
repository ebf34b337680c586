package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recco/internal/client/models"
)

func searchFixture() *fakeBackend {
	return &fakeBackend{
		users: []models.User{
			{ID: "u1", Email: "atai@example.com", FirstName: "Atai", LastName: "Smith"},
			{ID: "u2", Email: "nathan@example.com", FirstName: "Nathan", LastName: "Jones"},
		},
	}
}

func TestQuickFind_OpensSelectedProfile(t *testing.T) {
	backend := searchFixture()
	a, out, _ := newTestApp(t, backend, "")
	stubInputs(t, "1")

	require.NoError(t, a.QuickFind(context.Background(), "ata"))

	s := out.String()
	assert.Contains(t, s, "Atai Smith <atai@example.com>")
	assert.NotContains(t, s, "Nathan")
	assert.Contains(t, s, "Email: atai@example.com")
	assert.Contains(t, s, "ID: u1")
}

func TestQuickFind_NoMatches(t *testing.T) {
	backend := searchFixture()
	a, out, _ := newTestApp(t, backend, "")

	require.NoError(t, a.QuickFind(context.Background(), "zzz"))
	assert.Contains(t, out.String(), `No users found matching "zzz"`)
}

func TestQuickFind_SkipOpening(t *testing.T) {
	backend := searchFixture()
	a, out, _ := newTestApp(t, backend, "")
	stubInputs(t) // Enter skips

	require.NoError(t, a.QuickFind(context.Background(), "nathan"))
	s := out.String()
	assert.Contains(t, s, "Nathan Jones <nathan@example.com>")
	assert.NotContains(t, s, "ID: u2")
}

func TestSearchScreen_InitialQueryAndOpen(t *testing.T) {
	backend := searchFixture()
	a, out, _ := newTestApp(t, backend, "")
	stubInputs(t, "open 1") // then the exhausted queue exits the screen

	require.NoError(t, a.SearchScreen(context.Background(), "ata"))

	s := out.String()
	assert.Contains(t, s, "Find users")
	assert.Contains(t, s, "Atai Smith <atai@example.com>")
	assert.Contains(t, s, "ID: u1")
}

func TestSearchScreen_BadSelection(t *testing.T) {
	backend := searchFixture()
	a, out, _ := newTestApp(t, backend, "")
	stubInputs(t, "open 9")

	require.NoError(t, a.SearchScreen(context.Background(), "ata"))
	assert.Contains(t, out.String(), "No such result")
}
