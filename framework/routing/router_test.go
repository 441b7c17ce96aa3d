package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/km-arc/diaita/framework/metrics"
	"github.com/km-arc/diaita/framework/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Verbs(t *testing.T) {
	r := routing.New(routing.Options{})
	r.Get("/hello", okHandler)
	r.Post("/users", okHandler)
	r.Put("/users/{id}", okHandler)
	r.Patch("/users/{id}", okHandler)
	r.Delete("/users/{id}", okHandler)

	tests := []struct{ method, path string }{
		{http.MethodGet, "/hello"},
		{http.MethodPost, "/users"},
		{http.MethodPut, "/users/1"},
		{http.MethodPatch, "/users/1"},
		{http.MethodDelete, "/users/1"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, http.StatusOK, do(t, r, tt.method, tt.path).Code)
		})
	}

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/missing").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, r, http.MethodDelete, "/hello").Code)
}

// ── Groups & Prefixes ─────────────────────────────────────────────────────────

func TestRouter_PrefixAndParam(t *testing.T) {
	r := routing.New(routing.Options{})
	var got string
	r.Prefix("/user", func(r *routing.Router) {
		r.Get("/settings/{section}", func(w http.ResponseWriter, req *http.Request) {
			got = routing.Param(req, "section")
		})
	})

	do(t, r, http.MethodGet, "/user/settings/goals-priorities")
	assert.Equal(t, "goals-priorities", got)
}

func TestRouter_GroupMiddleware(t *testing.T) {
	r := routing.New(routing.Options{})
	r.Group(func(r *routing.Router) {
		r.Middleware(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				w.Header().Set("X-Group", "yes")
				next.ServeHTTP(w, req)
			})
		})
		r.Get("/inside", okHandler)
	})
	r.Get("/outside", okHandler)

	assert.Equal(t, "yes", do(t, r, http.MethodGet, "/inside").Header().Get("X-Group"))
	assert.Empty(t, do(t, r, http.MethodGet, "/outside").Header().Get("X-Group"))
}

// ── Default middleware ────────────────────────────────────────────────────────

func TestRouter_RecoversPanics(t *testing.T) {
	r := routing.New(routing.Options{})
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Equal(t, http.StatusInternalServerError, do(t, r, http.MethodGet, "/boom").Code)
}

func TestRouter_LogsRequests(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := routing.New(routing.Options{Logger: zap.New(core)})
	r.Get("/hello", okHandler)

	do(t, r, http.MethodGet, "/hello")

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/hello", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := routing.New(routing.Options{CORSOrigins: []string{"http://localhost:3000"}})
	r.Post("/register", okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/register", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MetricsAndHandle(t *testing.T) {
	m := metrics.NewCollector("test")
	r := routing.New(routing.Options{Metrics: m})
	r.Get("/nutrition/{id}", okHandler)
	r.Handle("/metrics", m.Handler())

	do(t, r, http.MethodGet, "/nutrition/7")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/nutrition/{id}", "200")))
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/metrics").Code)
}
