package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/recco/internal/client/api"
	"github.com/dmitrijs2005/recco/internal/client/config"
	"github.com/dmitrijs2005/recco/internal/client/display"
	"github.com/dmitrijs2005/recco/internal/client/models"
	"github.com/dmitrijs2005/recco/internal/client/search"
	"github.com/dmitrijs2005/recco/internal/client/session"
	"github.com/dmitrijs2005/recco/internal/logging"
)

// Backend is the slice of the API client the screens drive. api.Client
// satisfies it; tests substitute a fake.
type Backend interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, req api.RegisterRequest) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByName(ctx context.Context, name string) (models.User, error)
	GetDashboard(ctx context.Context, userID string) ([]models.InterestType, error)
	GetUserInterests(ctx context.Context, userID string) ([]models.Post, error)
	AddInterestType(ctx context.Context, it models.InterestType) (models.InterestType, error)
	GetInterestPosts(ctx context.Context, code string) ([]models.Post, error)
	UpdatePostDescription(ctx context.Context, postID, description string) (models.Post, error)
}

// App is the interactive terminal client. One instance owns the header
// quick-search surface; the search screen builds its own surface per visit,
// and the two stay in sync through the shared signal.
type App struct {
	config  *config.Config
	backend Backend
	session *session.Store
	signal  *search.Signal
	header  *search.Controller
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
}

// NewApp wires the app against stdin/stdout. Use SetIO to redirect in tests.
func NewApp(cfg *config.Config, backend Backend, sess *session.Store, log logging.Logger) *App {
	signal := search.NewSignal()
	a := &App{
		config:  cfg,
		backend: backend,
		session: sess,
		signal:  signal,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		log:     log.With("component", "ui"),
	}
	a.header = search.NewController("header", backend, cfg.DebounceInterval, signal, log)
	return a
}

// SetIO redirects prompts and screen output. Intended for tests.
func (a *App) SetIO(in io.Reader, out io.Writer) {
	a.reader = bufio.NewReader(in)
	a.out = out
}

// Run bootstraps the session and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.header.Close()

	fmt.Fprintln(a.out, "recco — user directory and interests")
	fmt.Fprintln(a.out, "Loading session...")
	a.session.Initialize(ctx)

	if user, ok := a.session.User(); ok {
		fmt.Fprintf(a.out, "Welcome back, %s\n", display.Name(user))
	}
	fmt.Fprintln(a.out, "Type 'help' for commands")

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// getStatus renders the prompt suffix: the signed-in email, if known.
func (a *App) getStatus() string {
	user, ok := a.session.User()
	if !ok || user.Email == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", user.Email)
}

// currentUser gates screens that need a resolved profile.
func (a *App) currentUser() (models.User, bool) {
	if a.session.Initializing() {
		fmt.Fprintln(a.out, "Loading...")
		return models.User{}, false
	}
	user, ok := a.session.User()
	if !ok {
		a.errorf("No user data available")
	}
	return user, ok
}

// awaitSearch polls the surface until its fetch+filter pass completes, with a
// margin on top of the debounce quiet period.
func (a *App) awaitSearch(c *search.Controller) search.State {
	deadline := time.Now().Add(a.config.DebounceInterval + 3*time.Second)
	for {
		st := c.State()
		if st.Searched || strings.TrimSpace(st.Term) == "" {
			return st
		}
		if time.Now().After(deadline) {
			return st
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// userMessage converts an API failure into the short user-facing text shown
// in an error banner, preferring the backend-supplied message.
func userMessage(err error, fallback string) string {
	var re *api.RequestError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	if errors.Is(err, api.ErrUnavailable) {
		return "Server unavailable"
	}
	return fallback
}

// ---- colored output helpers ----

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	mutedColor   = color.New(color.Faint)
)

func (a *App) titlef(format string, args ...any) {
	headingColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) errorf(format string, args ...any) {
	errorColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) successf(format string, args ...any) {
	successColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) mutedf(format string, args ...any) {
	mutedColor.Fprintf(a.out, format+"\n", args...)
}
