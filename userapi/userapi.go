// Package userapi reads and serves the current user's session at /api/user.
package userapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Bios-Marcel/authbuttons/data"
	"github.com/Bios-Marcel/authbuttons/swr"
	"github.com/rs/zerolog"
)

// Path is both the endpoint and the data layer key of the session.
const Path = "/api/user"

var ErrUnexpectedStatus = errors.New("unexpected status")

// Lookup resolves the session for the request that ctx belongs to.
type Lookup func(ctx context.Context) (data.Session, error)

// Client reads the session from a remote /api/user endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Fetch requests the session, forwarding the given cookies so the endpoint
// can identify the user.
func (c *Client) Fetch(ctx context.Context, cookies ...*http.Cookie) (data.Session, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+Path, nil)
	if err != nil {
		return data.Session{}, fmt.Errorf("build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return data.Session{}, fmt.Errorf("get %s: %w", Path, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return data.Session{}, fmt.Errorf("get %s: %w: %d", Path, ErrUnexpectedStatus, response.StatusCode)
	}

	var session data.Session
	if err := json.NewDecoder(response.Body).Decode(&session); err != nil {
		return data.Session{}, fmt.Errorf("cant parse session: %w", err)
	}
	return session, nil
}

// Fetcher adapts the client to the data layer.
func (c *Client) Fetcher(cookies ...*http.Cookie) swr.Fetcher {
	return func(ctx context.Context, _ string) (any, error) {
		return c.Fetch(ctx, cookies...)
	}
}

// LocalFetcher resolves the session in process instead of over HTTP.
func LocalFetcher(lookup Lookup) swr.Fetcher {
	return func(ctx context.Context, _ string) (any, error) {
		return lookup(ctx)
	}
}

// Handler serves the session as JSON.
func Handler(lookup Lookup, log zerolog.Logger) http.HandlerFunc {
	return func(responseWriter http.ResponseWriter, request *http.Request) {
		session, err := lookup(request.Context())
		if err != nil {
			log.Error().Err(err).Msg("resolving session failed")
			http.Error(responseWriter, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		responseWriter.Header().Set("Content-Type", "application/json")
		responseWriter.Header().Set("Cache-Control", "no-store")
		if err := json.NewEncoder(responseWriter).Encode(session); err != nil {
			log.Error().Err(err).Msg("writing session failed")
		}
	}
}
