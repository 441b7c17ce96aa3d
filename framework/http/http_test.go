package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gohttp "github.com/km-arc/diaita/framework/http"
	"github.com/km-arc/diaita/framework/http/validation"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newResponse(t *testing.T) (*gohttp.Response, *httptest.ResponseRecorder) {
	t.Helper()
	rr := httptest.NewRecorder()
	return gohttp.NewResponse(rr), rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&m))
	return m
}

type searchBody struct {
	Query  string `json:"query" validate:"required"`
	Number int    `json:"number" validate:"omitempty,gte=1,lte=100"`
}

// ── Response ─────────────────────────────────────────────────────────────────

func TestResponse_JSON(t *testing.T) {
	res, rr := newResponse(t)
	res.JSON(http.StatusOK, map[string]any{"key": "val"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "val", decodeJSON(t, rr)["key"])
}

func TestResponse_Envelopes(t *testing.T) {
	tests := []struct {
		name   string
		send   func(*gohttp.Response)
		status int
		key    string
		want   any
	}{
		{"status", func(r *gohttp.Response) { r.Status(http.StatusOK, "deleted") }, http.StatusOK, "status", "deleted"},
		{"error", func(r *gohttp.Response) { r.Error(http.StatusBadRequest, "Invalid request payload") }, http.StatusBadRequest, "message", "Invalid request payload"},
		{"bad request", func(r *gohttp.Response) { r.BadRequest() }, http.StatusBadRequest, "message", "Bad request."},
		{"not found", func(r *gohttp.Response) { r.NotFound("Ingredient not found") }, http.StatusNotFound, "message", "Ingredient not found"},
		{"server error", func(r *gohttp.Response) { r.ServerError() }, http.StatusInternalServerError, "message", "Server Error."},
		{"unavailable", func(r *gohttp.Response) { r.ServiceUnavailable() }, http.StatusServiceUnavailable, "message", "Service Unavailable."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, rr := newResponse(t)
			tt.send(res)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.want, decodeJSON(t, rr)[tt.key])
		})
	}
}

func TestResponse_ValidationError(t *testing.T) {
	res, rr := newResponse(t)
	errs := &validation.Errors{}
	errs.Add("query", "The query field is required.")

	res.ValidationError(errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `{"errors":{"query":["The query field is required."]}}`, rr.Body.String())
}

// ── Request ──────────────────────────────────────────────────────────────────

func TestRequest_Bind(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"query":"apple","number":5,"extra":true}`))
	r.Header.Set("Content-Type", "application/json")

	var body searchBody
	require.NoError(t, gohttp.NewRequest(r).Bind(&body))
	assert.Equal(t, searchBody{Query: "apple", Number: 5}, body)
}

func TestRequest_Bind_Errors(t *testing.T) {
	for name, payload := range map[string]string{"empty": "", "blank": "  \n", "malformed": "{"} {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
			var body searchBody
			assert.Error(t, gohttp.NewRequest(r).Bind(&body))
		})
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, gohttp.NewRequest(r).Bind(&searchBody{}), gohttp.ErrEmptyBody)
}

func TestRequest_BindAndValidate(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"number":500}`))

	var body searchBody
	errs, err := gohttp.NewRequest(r).BindAndValidate(&body)
	require.NoError(t, err)
	require.True(t, errs.Has())
	assert.Equal(t, []string{"number", "query"}, errs.Fields())
}

func TestRequest_RouteParams(t *testing.T) {
	router := chi.NewRouter()
	var gotID int
	var gotErr error
	var section string
	router.Get("/settings/{section}/{id}", func(w http.ResponseWriter, r *http.Request) {
		req := gohttp.NewRequest(r)
		section = req.RouteParam("section")
		gotID, gotErr = req.RouteParamInt("id")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/settings/goals/42", nil))
	require.NoError(t, gotErr)
	assert.Equal(t, 42, gotID)
	assert.Equal(t, "goals", section)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/settings/goals/abc", nil))
	assert.Error(t, gotErr)
}

func TestRequest_Helpers(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/search?q=oats", nil)
	r.Header.Set("Accept", "application/json")
	req := gohttp.NewRequest(r)

	assert.Equal(t, "oats", req.Query("q"))
	assert.Equal(t, "10", req.Query("limit", "10"))
	assert.Equal(t, http.MethodGet, req.Method())
	assert.Equal(t, "/search", req.Path())
	assert.True(t, req.IsJSON())
	assert.Empty(t, req.RequestID())
	assert.Same(t, r, req.Raw())
}
