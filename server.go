package main

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/Bios-Marcel/authbuttons/authbuttons"
	"github.com/Bios-Marcel/authbuttons/config"
	"github.com/Bios-Marcel/authbuttons/data"
	"github.com/Bios-Marcel/authbuttons/store"
	"github.com/Bios-Marcel/authbuttons/swr"
	"github.com/Bios-Marcel/authbuttons/userapi"
	"github.com/Bios-Marcel/authbuttons/views"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const sessionCookie = "session"

// accounts is the part of the store the handlers use.
type accounts interface {
	CreateUser(email, password, displayName string) (*data.User, error)
	Authenticate(email, password string) (*data.User, error)
	CreateToken(email string) (string, error)
	UserForToken(token string) (*data.User, error)
	DeleteToken(token string) error
}

type server struct {
	store accounts
	// api is nil when the session is resolved in process.
	api   *userapi.Client
	fetch config.FetchConfig
	log   zerolog.Logger
}

func newServer(db accounts, api *userapi.Client, fetch config.FetchConfig, log zerolog.Logger) *server {
	return &server{
		store: db,
		api:   api,
		fetch: fetch,
		log:   log,
	}
}

func (s *server) routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/", s.index)
	router.Get("/signup", s.signup)
	router.Post("/signup", s.signupPost)
	router.Get("/signin", s.signin)
	router.Post("/signin", s.signinPost)
	// Sign out is reached through a plain link, so GET is accepted too.
	router.Get("/signout", s.signout)
	router.Post("/signout", s.signout)
	router.Get(userapi.Path, s.apiUser)

	return router
}

type requestKey struct{}

// requestState travels with the context of a session lookup. invalidToken is
// set when the cookie names a token that doesn't exist (anymore).
type requestState struct {
	request      *http.Request
	invalidToken atomic.Bool
}

func withRequest(ctx context.Context, request *http.Request) (context.Context, *requestState) {
	state := &requestState{request: request}
	return context.WithValue(ctx, requestKey{}, state), state
}

// lookupSession resolves the session of the request stored in ctx.
func (s *server) lookupSession(ctx context.Context) (data.Session, error) {
	state, ok := ctx.Value(requestKey{}).(*requestState)
	if !ok {
		return data.SignedOut(), nil
	}

	user, err := s.currentUser(state.request)
	if err != nil {
		if errors.Is(err, store.ErrInvalidToken) {
			state.invalidToken.Store(true)
			return data.SignedOut(), nil
		}
		return data.Session{}, err
	}
	if user == nil {
		return data.SignedOut(), nil
	}
	return data.SignedInAs(*user.Identity()), nil
}

func (s *server) currentUser(request *http.Request) (*data.User, error) {
	cookie, err := request.Cookie(sessionCookie)
	if err != nil {
		return nil, nil
	}
	return s.store.UserForToken(cookie.Value)
}

// sessionClient builds the data layer for rendering a single request. Each
// request gets its own cache so sessions are never shared between users.
func (s *server) sessionClient(request *http.Request) *swr.Client {
	fetcher := userapi.LocalFetcher(s.lookupSession)
	if s.api != nil {
		fetcher = s.api.Fetcher(request.Cookies()...)
	}

	return swr.New(swr.Config{
		Provider:         swr.NewCacheProvider(),
		Fetcher:          fetcher,
		DedupingInterval: s.fetch.DedupingInterval,
		Logger:           s.log,
	})
}

func (s *server) index(responseWriter http.ResponseWriter, request *http.Request) {
	ctx, state := withRequest(request.Context(), request)
	if s.fetch.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetch.Timeout)
		defer cancel()
	}

	component := authbuttons.New(s.sessionClient(request), authbuttons.WithLogger(s.log))
	component.Mount(ctx)
	defer component.Unmount()
	if err := component.Wait(ctx); err != nil {
		s.log.Warn().Err(err).Msg("session not resolved in time")
	}
	if state.invalidToken.Load() {
		resetSessionCookie(responseWriter)
	}

	responseWriter.Header().Set("Content-Type", "text/html; charset=utf-8")
	views.WriteIndex(responseWriter, component.Links(), component.Session())
}

func (s *server) signup(responseWriter http.ResponseWriter, request *http.Request) {
	if user, _ := s.currentUser(request); user != nil {
		http.Redirect(responseWriter, request, "/", http.StatusSeeOther)
		return
	}

	views.WriteSignup(responseWriter, "")
}

func (s *server) signupPost(responseWriter http.ResponseWriter, request *http.Request) {
	if user, _ := s.currentUser(request); user != nil {
		http.Redirect(responseWriter, request, "/", http.StatusSeeOther)
		return
	}

	displayName := request.PostFormValue("display_name")
	email := request.PostFormValue("email")
	password := request.PostFormValue("password")

	user, err := s.store.CreateUser(email, password, displayName)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserExists):
			responseWriter.WriteHeader(http.StatusConflict)
			views.WriteSignup(responseWriter, "This email is already registered.")
		case errors.Is(err, store.ErrMissingInput):
			responseWriter.WriteHeader(http.StatusBadRequest)
			views.WriteSignup(responseWriter, "Email and password are required.")
		default:
			s.internalError(responseWriter, err)
		}
		return
	}

	s.log.Info().Int64("user", user.ID).Msg("user signed up")
	s.startSession(responseWriter, request, user.Email)
}

func (s *server) signin(responseWriter http.ResponseWriter, request *http.Request) {
	if user, _ := s.currentUser(request); user != nil {
		http.Redirect(responseWriter, request, "/", http.StatusSeeOther)
		return
	}

	views.WriteSignin(responseWriter, false)
}

func (s *server) signinPost(responseWriter http.ResponseWriter, request *http.Request) {
	if user, _ := s.currentUser(request); user != nil {
		http.Redirect(responseWriter, request, "/", http.StatusSeeOther)
		return
	}

	email := request.PostFormValue("email")
	password := request.PostFormValue("password")

	user, err := s.store.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) || errors.Is(err, store.ErrWrongPassword) {
			responseWriter.WriteHeader(http.StatusUnauthorized)
			views.WriteSignin(responseWriter, true)
		} else {
			s.internalError(responseWriter, err)
		}
		return
	}

	s.log.Info().Int64("user", user.ID).Msg("user signed in")
	s.startSession(responseWriter, request, user.Email)
}

func (s *server) startSession(responseWriter http.ResponseWriter, request *http.Request, email string) {
	token, err := s.store.CreateToken(email)
	if err != nil {
		s.internalError(responseWriter, err)
		return
	}

	http.SetCookie(responseWriter, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(responseWriter, request, "/", http.StatusSeeOther)
}

func (s *server) signout(responseWriter http.ResponseWriter, request *http.Request) {
	if cookie, err := request.Cookie(sessionCookie); err == nil {
		if err := s.store.DeleteToken(cookie.Value); err != nil {
			s.log.Error().Err(err).Msg("deleting session failed")
		}
	}

	resetSessionCookie(responseWriter)
	http.Redirect(responseWriter, request, "/", http.StatusSeeOther)
}

func (s *server) apiUser(responseWriter http.ResponseWriter, request *http.Request) {
	ctx, _ := withRequest(request.Context(), request)
	userapi.Handler(s.lookupSession, s.log)(responseWriter, request.WithContext(ctx))
}

func (s *server) internalError(responseWriter http.ResponseWriter, err error) {
	s.log.Error().Err(err).Msg("request failed")
	http.Error(responseWriter, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func resetSessionCookie(responseWriter http.ResponseWriter) {
	http.SetCookie(responseWriter, &http.Cookie{
		Name:   sessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
