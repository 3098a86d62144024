package main

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Bios-Marcel/authbuttons/config"
	"github.com/Bios-Marcel/authbuttons/data"
	"github.com/Bios-Marcel/authbuttons/screen"
	"github.com/Bios-Marcel/authbuttons/store"
	"github.com/Bios-Marcel/authbuttons/testserver"
	"github.com/Bios-Marcel/authbuttons/userapi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testFetch = config.FetchConfig{Timeout: 5 * time.Second}

func openStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := store.Open(filepath.Join(t.TempDir(), "bolt.db"), store.WithBcryptCost(bcrypt.MinCost))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func serve(t *testing.T, db accounts, api *userapi.Client) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(newServer(db, api, testFetch, zerolog.Nop()).routes())
	t.Cleanup(server.Close)
	return server
}

func startServer(t *testing.T, api *userapi.Client) (*httptest.Server, *store.Store) {
	t.Helper()

	db := openStore(t)
	return serve(t, db, api), db
}

// countingStore counts token lookups.
type countingStore struct {
	*store.Store
	lookups atomic.Int32
}

func (c *countingStore) UserForToken(token string) (*data.User, error) {
	c.lookups.Add(1)
	return c.Store.UserForToken(token)
}

func browser(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func get(t *testing.T, client *http.Client, target string) (*http.Response, *screen.Screen) {
	t.Helper()

	response, err := client.Get(target)
	require.NoError(t, err)
	defer response.Body.Close()

	s, err := screen.Parse(response.Body)
	require.NoError(t, err)
	return response, s
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values) *http.Response {
	t.Helper()

	response, err := client.PostForm(target, form)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, response.Body)
	response.Body.Close()
	return response
}

func hrefOf(t *testing.T, s *screen.Screen, name string) string {
	t.Helper()

	link, err := s.GetByRole("link", screen.Name(name))
	require.NoError(t, err)
	href, _ := link.Attr("href")
	return href
}

func TestIndexSignedOut(t *testing.T) {
	server, _ := startServer(t, nil)

	response, s := get(t, browser(t), server.URL)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "/signin", hrefOf(t, s, "sign in"))
	assert.Equal(t, "/signup", hrefOf(t, s, "sign up"))

	signOut, err := s.QueryByRole("link", screen.Name("sign out"))
	require.NoError(t, err)
	assert.Nil(t, signOut)
}

func TestSignupSigninSignout(t *testing.T) {
	server, _ := startServer(t, nil)
	client := browser(t)

	response := postForm(t, client, server.URL+"/signup", url.Values{
		"email":    {"asdf@asdf.com"},
		"password": {"hunter2"},
	})
	assert.Equal(t, http.StatusOK, response.StatusCode)

	_, s := get(t, client, server.URL)
	assert.Equal(t, "/signout", hrefOf(t, s, "sign out"))
	links, err := s.FindAllByRole("link")
	require.NoError(t, err)
	assert.Len(t, links, 1)

	_, s = get(t, client, server.URL+"/signout")
	assert.Equal(t, "/signin", hrefOf(t, s, "sign in"))

	postForm(t, client, server.URL+"/signin", url.Values{
		"email":    {"asdf@asdf.com"},
		"password": {"hunter2"},
	})
	_, s = get(t, client, server.URL)
	assert.Equal(t, "/signout", hrefOf(t, s, "sign out"))
}

func TestSigninWrongPassword(t *testing.T) {
	server, db := startServer(t, nil)
	_, err := db.CreateUser("asdf@asdf.com", "hunter2", "")
	require.NoError(t, err)

	response := postForm(t, browser(t), server.URL+"/signin", url.Values{
		"email":    {"asdf@asdf.com"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
}

func TestSignupDuplicate(t *testing.T) {
	server, db := startServer(t, nil)
	_, err := db.CreateUser("asdf@asdf.com", "hunter2", "")
	require.NoError(t, err)

	response := postForm(t, browser(t), server.URL+"/signup", url.Values{
		"email":    {"asdf@asdf.com"},
		"password": {"other"},
	})
	assert.Equal(t, http.StatusConflict, response.StatusCode)
}

func TestAPIUser(t *testing.T) {
	server, db := startServer(t, nil)
	user, err := db.CreateUser("asdf@asdf.com", "hunter2", "")
	require.NoError(t, err)
	token, err := db.CreateToken(user.Email)
	require.NoError(t, err)

	session, err := userapi.NewClient(server.URL, nil).Fetch(t.Context())
	require.NoError(t, err)
	assert.False(t, session.SignedIn())

	session, err = userapi.NewClient(server.URL, nil).
		Fetch(t.Context(), &http.Cookie{Name: sessionCookie, Value: token})
	require.NoError(t, err)
	require.True(t, session.SignedIn())
	assert.Equal(t, data.Identity{ID: user.ID, Email: "asdf@asdf.com"}, *session.User)

	session, err = userapi.NewClient(server.URL, nil).
		Fetch(t.Context(), &http.Cookie{Name: sessionCookie, Value: "stale"})
	require.NoError(t, err)
	assert.False(t, session.SignedIn())
}

func TestIndexInvalidTokenResetsCookie(t *testing.T) {
	server, _ := startServer(t, nil)

	request, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	request.AddCookie(&http.Cookie{Name: sessionCookie, Value: "stale"})

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	var reset bool
	for _, cookie := range response.Cookies() {
		if cookie.Name == sessionCookie && cookie.MaxAge < 0 {
			reset = true
		}
	}
	assert.True(t, reset)

	s, err := screen.Parse(response.Body)
	require.NoError(t, err)
	assert.Equal(t, "/signin", hrefOf(t, s, "sign in"))
}

func TestIndexReadsRemoteUserAPI(t *testing.T) {
	remote := testserver.New(t, testserver.Route{
		Path: userapi.Path,
		Res: func(*http.Request) any {
			return map[string]any{"user": map[string]any{"id": 3, "email": "asdf@asdf.com"}}
		},
	})
	server, _ := startServer(t, userapi.NewClient(remote.URL, remote.Client()))

	_, s := get(t, browser(t), server.URL)
	assert.Equal(t, "/signout", hrefOf(t, s, "sign out"))
	assert.Equal(t, 1, remote.Hits(userapi.Path))
}

func TestIndexSurvivesBrokenUserAPI(t *testing.T) {
	remote := testserver.New(t, testserver.Route{
		Path:   userapi.Path,
		Status: http.StatusBadGateway,
	})
	server, _ := startServer(t, userapi.NewClient(remote.URL, nil))

	response, s := get(t, browser(t), server.URL)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	_, err := s.FindAllByRole("link")
	assert.ErrorIs(t, err, screen.ErrNotFound)
}

func TestIndexLooksUpTokenOnce(t *testing.T) {
	db := &countingStore{Store: openStore(t)}
	user, err := db.CreateUser("asdf@asdf.com", "hunter2", "")
	require.NoError(t, err)
	token, err := db.CreateToken(user.Email)
	require.NoError(t, err)
	server := serve(t, db, nil)

	for _, value := range []string{token, "stale"} {
		db.lookups.Store(0)

		request, err := http.NewRequest(http.MethodGet, server.URL, nil)
		require.NoError(t, err)
		request.AddCookie(&http.Cookie{Name: sessionCookie, Value: value})
		response, err := http.DefaultClient.Do(request)
		require.NoError(t, err)
		response.Body.Close()

		assert.Equal(t, http.StatusOK, response.StatusCode)
		assert.Equal(t, int32(1), db.lookups.Load(), "token %q", value)
	}
}
