package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recco/internal/client/models"
	"github.com/dmitrijs2005/recco/internal/logging"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, staticToken(token), logging.NewNop())
}

func TestClient_AttachesBearerTokenWhenPresent(t *testing.T) {
	var gotAuth, gotReqID string
	c := newTestClient(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		_ = json.NewEncoder(w).Encode([]models.User{})
	})

	_, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(LoginResponse{Token: "t"})
	})

	token, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "t", token)
	assert.Empty(t, gotAuth)
}

func TestClient_RequestErrorCarriesBackendMessage(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "email already registered"})
	})

	_, err := c.Register(context.Background(), RegisterRequest{Email: "a@b.com"})
	require.Error(t, err)

	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusConflict, re.Status)
	assert.Equal(t, "email already registered", re.Message)
	assert.True(t, IsStatus(err, http.StatusConflict))
}

func TestClient_RequestErrorFallsBackToStatusText(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetUserByID(context.Background(), "nope")
	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Not Found", re.Message)
}

func TestClient_TransportFailureWrapsErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, nil, logging.NewNop())
	_, err := c.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_RequestShapes(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any

	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotBody = nil
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
		}
		_ = json.NewEncoder(w).Encode(models.Post{ID: "p1", Description: "edited"})
	})

	t.Run("update description", func(t *testing.T) {
		updated, err := c.UpdatePostDescription(context.Background(), "p1", "edited")
		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "/interests/posts/p1", gotPath)
		assert.Equal(t, "edited", gotBody["description"])
		assert.Equal(t, "edited", updated.Description)
	})

	t.Run("empty description sent as null", func(t *testing.T) {
		_, err := c.UpdatePostDescription(context.Background(), "p1", "")
		require.NoError(t, err)
		v, ok := gotBody["description"]
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("path escaping", func(t *testing.T) {
		_, err := c.GetUserByName(context.Background(), "Atai Smith")
		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, gotMethod)
		assert.Equal(t, "/users/name/Atai Smith", gotPath)
	})

	t.Run("interest posts path", func(t *testing.T) {
		_, err := c.GetInterestPosts(context.Background(), "TV_SHOWS")
		require.NoError(t, err)
		assert.Equal(t, "/interests/TV_SHOWS/posts", gotPath)
	})

	t.Run("dashboard path", func(t *testing.T) {
		_, err := c.GetDashboard(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, "/users/u1/dashboard", gotPath)
	})
}

func TestClient_ContextCancellation(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListUsers(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable) || errors.Is(err, context.Canceled))
}
