package ui

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recco/internal/client/api"
	"github.com/dmitrijs2005/recco/internal/client/config"
	"github.com/dmitrijs2005/recco/internal/client/models"
	"github.com/dmitrijs2005/recco/internal/client/session"
	"github.com/dmitrijs2005/recco/internal/logging"
)

// fakeBackend satisfies Backend with canned data and call recording.
type fakeBackend struct {
	loginToken string
	loginErr   error
	lastLogin  [2]string

	registerReq *api.RegisterRequest
	registerErr error

	users    []models.User
	usersErr error

	dashboard    []models.InterestType
	dashboardErr error

	userInterests    map[string][]models.Post
	userInterestsErr error

	addReq *models.InterestType
	addErr error

	posts    []models.Post
	postsErr error

	updateRet   models.Post
	updateErr   error
	updateCalls [][2]string
}

func (f *fakeBackend) Login(_ context.Context, email, password string) (string, error) {
	f.lastLogin = [2]string{email, password}
	return f.loginToken, f.loginErr
}

func (f *fakeBackend) Register(_ context.Context, req api.RegisterRequest) (models.User, error) {
	f.registerReq = &req
	return models.User{ID: "new", Email: req.Email}, f.registerErr
}

func (f *fakeBackend) ListUsers(context.Context) ([]models.User, error) {
	return f.users, f.usersErr
}

func (f *fakeBackend) GetUserByID(_ context.Context, id string) (models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, &api.RequestError{Status: http.StatusNotFound, Message: "user not found"}
}

func (f *fakeBackend) GetUserByName(_ context.Context, name string) (models.User, error) {
	for _, u := range f.users {
		if u.GivenName() == name {
			return u, nil
		}
	}
	return models.User{}, &api.RequestError{Status: http.StatusNotFound, Message: "user not found"}
}

func (f *fakeBackend) GetDashboard(context.Context, string) ([]models.InterestType, error) {
	return f.dashboard, f.dashboardErr
}

func (f *fakeBackend) GetUserInterests(_ context.Context, userID string) ([]models.Post, error) {
	if f.userInterestsErr != nil {
		return nil, f.userInterestsErr
	}
	return f.userInterests[userID], nil
}

func (f *fakeBackend) AddInterestType(_ context.Context, it models.InterestType) (models.InterestType, error) {
	f.addReq = &it
	return it, f.addErr
}

func (f *fakeBackend) GetInterestPosts(context.Context, string) ([]models.Post, error) {
	return f.posts, f.postsErr
}

func (f *fakeBackend) UpdatePostDescription(_ context.Context, postID, description string) (models.Post, error) {
	f.updateCalls = append(f.updateCalls, [2]string{postID, description})
	return f.updateRet, f.updateErr
}

// ---- app construction helpers ----

func makeToken(t *testing.T, sub string) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(map[string]string{"sub": sub})
	require.NoError(t, err)
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "."
}

// newTestApp builds an App over the fake backend with scripted input. The
// returned builder captures all screen output.
func newTestApp(t *testing.T, backend *fakeBackend, input string) (*App, *strings.Builder, *session.Store) {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DebounceInterval = 10 * time.Millisecond

	storage := session.NewFileStorageAt(filepath.Join(t.TempDir(), "token"))
	sess := session.New(storage, backend, logging.NewNop())

	a := NewApp(cfg, backend, sess, logging.NewNop())
	t.Cleanup(a.header.Close)

	var out strings.Builder
	a.SetIO(strings.NewReader(input), &out)
	return a, &out, sess
}

// loginAs puts the session into an authenticated state directly. The empty
// bootstrap runs first so screens gated on the initializing flag work.
func loginAs(t *testing.T, sess *session.Store, token string) {
	t.Helper()
	sess.Initialize(context.Background())
	require.NoError(t, sess.Login(context.Background(), token))
}

// stubInputs replaces the interactive text prompt with a queue of answers.
func stubInputs(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", nil
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

// stubPasswords replaces the password prompt with a queue of answers.
func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if i >= len(answers) {
			return nil, nil
		}
		a := answers[i]
		i++
		return []byte(a), nil
	}
	t.Cleanup(func() { getPassword = orig })
}
