// Package databasetest provides an in-process PostgREST stand-in for tests
// that exercise database.Manager.
package databasetest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/km-arc/diaita/app/database"
	"github.com/km-arc/diaita/framework/config"
)

// Response is the canned answer for a route. Total, when set, is reported
// through Content-Range the way PostgREST does for count=exact.
type Response struct {
	Status int
	Body   string
	Total  string
}

// Request is one call the fake received.
type Request struct {
	Method string
	Table  string
	Query  url.Values
	Prefer string
	Body   []byte
}

// Server answers "<METHOD> <table>" routes with canned responses. Unrouted
// calls get the default response, an empty array unless changed.
type Server struct {
	mu       sync.Mutex
	fallback Response
	routes   map[string]Response
	requests []Request
}

func NewServer() *Server {
	return &Server{fallback: Response{Body: "[]"}, routes: make(map[string]Response)}
}

// SetDefault replaces the response given to unrouted calls.
func (s *Server) SetDefault(r Response) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback = r
	return s
}

// On sets the response for method on table.
func (s *Server) On(method, table string, r Response) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+table] = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		Table:  table,
		Query:  r.URL.Query(),
		Prefer: r.Header.Get("Prefer"),
		Body:   body,
	})
	resp, found := s.routes[r.Method+" "+table]
	if !found {
		resp = s.fallback
	}
	s.mu.Unlock()

	if resp.Total != "" {
		w.Header().Set("Content-Range", "0-0/"+resp.Total)
	}
	w.Header().Set("Content-Type", "application/json")
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, resp.Body)
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Tables lists the table of each request in arrival order.
func (s *Server) Tables() []string {
	var out []string
	for _, r := range s.Requests() {
		out = append(out, r.Table)
	}
	return out
}

// Last is the most recent request. It fails the test if there is none.
func (s *Server) Last(t testing.TB) Request {
	t.Helper()
	reqs := s.Requests()
	require.NotEmpty(t, reqs, "no postgrest requests recorded")
	return reqs[len(reqs)-1]
}

// Manager starts the fake and returns a Manager pointed at it.
func (s *Server) Manager(t testing.TB) *database.Manager {
	t.Helper()
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)

	m, err := database.NewManager(config.SupabaseConfig{URL: srv.URL, SecretKey: "service-role", Schema: "public"}, nil, nil)
	require.NoError(t, err)
	return m
}
