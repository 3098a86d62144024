// Package testserver mocks HTTP endpoints for the duration of a test.
package testserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Route describes a single mocked endpoint.
type Route struct {
	// Method defaults to GET.
	Method string
	Path   string
	// Status defaults to 200.
	Status int
	// Res builds the JSON body. Nil means an empty body.
	Res func(request *http.Request) any
}

type Server struct {
	*httptest.Server

	mu   sync.Mutex
	hits map[string]int
}

// New starts a server answering the given routes and closes it when the
// test finishes.
func New(t testing.TB, routes ...Route) *Server {
	t.Helper()

	server := &Server{hits: make(map[string]int)}
	router := chi.NewRouter()
	for _, route := range routes {
		method := route.Method
		if method == "" {
			method = http.MethodGet
		}
		router.Method(method, route.Path, server.handle(t, route))
	}

	server.Server = httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func (s *Server) handle(t testing.TB, route Route) http.HandlerFunc {
	return func(responseWriter http.ResponseWriter, request *http.Request) {
		s.mu.Lock()
		s.hits[route.Path]++
		s.mu.Unlock()

		status := route.Status
		if status == 0 {
			status = http.StatusOK
		}
		if route.Res == nil {
			responseWriter.WriteHeader(status)
			return
		}

		responseWriter.Header().Set("Content-Type", "application/json")
		responseWriter.WriteHeader(status)
		if err := json.NewEncoder(responseWriter).Encode(route.Res(request)); err != nil {
			t.Errorf("encoding mocked response for %s: %v", route.Path, err)
		}
	}
}

// Hits returns how often path was requested.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}
