// Package authbuttons renders the navigation links that depend on whether
// somebody is signed in: "Sign In" and "Sign Up" for anonymous visitors,
// "Sign Out" otherwise.
package authbuttons

import (
	"context"
	"io"
	"sync"

	"github.com/Bios-Marcel/authbuttons/data"
	"github.com/Bios-Marcel/authbuttons/swr"
	"github.com/Bios-Marcel/authbuttons/userapi"
	"github.com/Bios-Marcel/authbuttons/views"
	"github.com/rs/zerolog"
)

type State int

const (
	StateLoading State = iota
	StateSignedOut
	StateSignedIn
	// StateFailed is entered when the session could not be read. It renders
	// like StateLoading.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSignedOut:
		return "signed out"
	case StateSignedIn:
		return "signed in"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	SignIn  = data.Link{Text: "Sign In", Href: "/signin"}
	SignUp  = data.Link{Text: "Sign Up", Href: "/signup"}
	SignOut = data.Link{Text: "Sign Out", Href: "/signout"}
)

// LinksFor returns the links to show for session.
func LinksFor(session data.Session) []data.Link {
	if session.SignedIn() {
		return []data.Link{SignOut}
	}
	return []data.Link{SignIn, SignUp}
}

type Option func(*AuthButtons)

func WithLogger(log zerolog.Logger) Option {
	return func(a *AuthButtons) {
		a.log = log
	}
}

// AuthButtons is a single mounted instance of the component. The zero
// value is not usable, use New.
type AuthButtons struct {
	client *swr.Client
	log    zerolog.Logger

	mu      sync.Mutex
	state   State
	session data.Session
	mounted bool
	cancel  context.CancelFunc
	settled chan struct{}
}

func New(client *swr.Client, opts ...Option) *AuthButtons {
	a := &AuthButtons{
		client:  client,
		log:     zerolog.Nop(),
		settled: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Mount starts reading the session. It returns immediately; use Settled or
// Wait to find out when the read is done. Mounting twice is a no-op.
func (a *AuthButtons) Mount(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mounted || a.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	a.mounted = true
	a.cancel = cancel
	go a.resolve(ctx)
}

func (a *AuthButtons) resolve(ctx context.Context) {
	session, err := swr.Get[data.Session](ctx, a.client, userapi.Path)

	a.mu.Lock()
	defer a.mu.Unlock()
	// A cancelled read stays pending rather than failing.
	if !a.mounted || ctx.Err() != nil {
		return
	}

	if err != nil {
		a.log.Warn().Err(err).Msg("reading session failed")
		a.state = StateFailed
	} else if session.SignedIn() {
		a.state = StateSignedIn
		a.session = session
	} else {
		a.state = StateSignedOut
		a.session = session
	}
	a.log.Debug().Stringer("state", a.state).Msg("session settled")
	close(a.settled)
}

// Unmount cancels a pending read. Results arriving afterwards are dropped.
func (a *AuthButtons) Unmount() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.mounted {
		return
	}
	a.mounted = false
	a.cancel()
}

// Settled is closed once the session read has finished, successfully or not.
// It is never closed if the component is unmounted first.
func (a *AuthButtons) Settled() <-chan struct{} {
	return a.settled
}

// Wait blocks until the read has settled or ctx is done.
func (a *AuthButtons) Wait(ctx context.Context) error {
	select {
	case <-a.settled:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *AuthButtons) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *AuthButtons) Session() data.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// Links returns the currently visible links. Nothing is visible until the
// session has been read successfully.
func (a *AuthButtons) Links() []data.Link {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.state {
	case StateSignedOut, StateSignedIn:
		return LinksFor(a.session)
	default:
		return nil
	}
}

func (a *AuthButtons) Render(w io.Writer) {
	views.WriteAuthButtons(w, a.Links())
}

// Render mounts a component, waits for the session and writes the result.
// If ctx ends first the component is written in its pending form and the
// context error is returned.
func Render(ctx context.Context, w io.Writer, client *swr.Client, opts ...Option) (*AuthButtons, error) {
	component := New(client, opts...)
	component.Mount(ctx)
	defer component.Unmount()

	err := component.Wait(ctx)
	component.Render(w)
	return component, err
}
