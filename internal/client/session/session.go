// Package session holds the client's authentication state: the persisted
// token, the derived user profile, and the startup bootstrap. The Store is an
// explicit injectable object; nothing in the client reads ambient globals.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/recco/internal/client/models"
	"github.com/dmitrijs2005/recco/internal/logging"
)

// Directory is the slice of the API client the session needs: the full user
// list, used to resolve the token's subject email into a profile.
type Directory interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Store is the process-wide session state. Safe for concurrent reads; writes
// happen on login, logout, and the one-time Initialize.
type Store struct {
	storage   TokenStorage
	directory Directory
	log       logging.Logger

	mu           sync.RWMutex
	token        string
	user         *models.User
	initializing bool

	initOnce sync.Once
}

// New builds a Store. The session starts in the initializing state; screens
// should render a loading placeholder until Initialize has run.
func New(storage TokenStorage, directory Directory, log logging.Logger) *Store {
	return &Store{
		storage:      storage,
		directory:    directory,
		log:          log.With("component", "session"),
		initializing: true,
	}
}

// Initialize restores the session from the persisted token. A malformed token
// is treated as an implicit logout: the persisted token is removed and the
// session stays empty. Runs its body at most once; the initializing flag is
// cleared exactly once when done.
func (s *Store) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		defer func() {
			s.mu.Lock()
			s.initializing = false
			s.mu.Unlock()
		}()

		token, err := s.storage.Load()
		if err != nil {
			s.log.Warn(ctx, "token load failed", "error", err)
			return
		}
		if token == "" {
			return
		}

		sub, err := DecodeSubject(token)
		if err != nil {
			s.log.Warn(ctx, "stored token invalid, clearing", "error", err)
			if err := s.storage.Clear(); err != nil {
				s.log.Error(ctx, "token clear failed", "error", err)
			}
			return
		}

		s.mu.Lock()
		s.token = token
		s.mu.Unlock()

		s.fetchProfile(ctx, sub)
	})
}

// Login persists the freshly issued token and resolves the profile. The
// session counts as authenticated as soon as the token is set, even if the
// profile lookup later degrades to a bare email record.
func (s *Store) Login(ctx context.Context, token string) error {
	if err := s.storage.Save(token); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.user = nil
	s.mu.Unlock()

	sub, err := DecodeSubject(token)
	if err != nil {
		s.log.Warn(ctx, "issued token not decodable", "error", err)
		return nil
	}
	s.fetchProfile(ctx, sub)
	return nil
}

// Logout clears the persisted token and the in-memory fields synchronously.
func (s *Store) Logout() {
	if err := s.storage.Clear(); err != nil {
		s.log.Error(context.Background(), "token clear failed", "error", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

// fetchProfile locates the subject email in the user directory. On a miss or
// a directory error the session keeps a degraded profile holding only the
// email, so the user stays logged in with reduced display data.
func (s *Store) fetchProfile(ctx context.Context, email string) {
	var profile models.User

	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		s.log.Warn(ctx, "profile fetch failed, using degraded profile", "error", err)
		profile = models.User{Email: email}
	} else {
		profile = models.User{Email: email}
		for _, u := range users {
			if u.Email == email {
				profile = u
				break
			}
		}
	}

	s.mu.Lock()
	s.user = &profile
	s.mu.Unlock()
}

// Token returns the current in-memory token, or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a token is present. Presence of a token is
// the whole rule; profile resolution does not affect it.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// User returns the resolved profile. ok is false before resolution or when
// logged out.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Initializing reports whether the startup bootstrap is still in flight.
func (s *Store) Initializing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initializing
}
