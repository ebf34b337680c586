package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recco/internal/client/models"
)

func TestDashboard_RendersBothHalves(t *testing.T) {
	backend := searchFixture()
	backend.dashboard = []models.InterestType{
		{Code: "BOOKS", Label: "Books"},
		{Code: "TV_SHOWS"},
	}
	backend.userInterests = map[string][]models.Post{
		"u1": {{InterestType: "BOOKS"}, {InterestType: "BOOKS"}},
	}

	a, out, sess := newTestApp(t, backend, "")
	loginAs(t, sess, makeToken(t, "atai@example.com"))

	require.NoError(t, a.Dashboard(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Available interests:")
	assert.Contains(t, s, "BOOKS — Books")
	assert.Contains(t, s, "TV_SHOWS")
	assert.Contains(t, s, "My interests:")
	assert.Equal(t, 1, strings.Count(s, "  BOOKS\n"), "my interests deduplicate codes")
}

func TestDashboard_AvailableFetchFailureStillRendersMine(t *testing.T) {
	backend := searchFixture()
	backend.dashboardErr = assert.AnError
	backend.userInterests = map[string][]models.Post{
		"u1": {{InterestType: "MOVIES"}},
	}

	a, out, sess := newTestApp(t, backend, "")
	loginAs(t, sess, makeToken(t, "atai@example.com"))

	require.NoError(t, a.Dashboard(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Failed to load interests")
	assert.Contains(t, s, "MOVIES")
}

func TestDashboard_EmptyState(t *testing.T) {
	backend := searchFixture()
	a, out, sess := newTestApp(t, backend, "")
	loginAs(t, sess, makeToken(t, "atai@example.com"))

	require.NoError(t, a.Dashboard(context.Background()))

	s := out.String()
	assert.Contains(t, s, "No interests available")
	assert.Contains(t, s, "No interests added yet")
}
