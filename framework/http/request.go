package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/km-arc/diaita/framework/http/validation"
)

const maxBody = 1 << 20 // 1 MB

// ErrEmptyBody is returned by Bind when the request has no body.
var ErrEmptyBody = errors.New("empty request body")

// Request wraps *http.Request with Laravel-style helpers.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// Raw returns the underlying *http.Request.
func (req *Request) Raw() *http.Request { return req.raw }

// ── Binding ──────────────────────────────────────────────────────────────────

// Bind decodes the JSON body into v. Unknown fields are ignored.
func (req *Request) Bind(v any) error {
	if req.raw.Body == nil {
		return ErrEmptyBody
	}
	defer req.raw.Body.Close()

	body, err := io.ReadAll(io.LimitReader(req.raw.Body, maxBody))
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return ErrEmptyBody
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// Validate runs struct-tag and self rules on v.
//
//	if errs := req.Validate(&dto); errs.Has() {
//	    res.ValidationError(errs)
//	    return
//	}
func (req *Request) Validate(v any) *validation.Errors {
	return validation.Default().Struct(v)
}

// BindAndValidate is Bind followed by Validate. A decode failure is returned
// as err; rule failures come back in the bag.
func (req *Request) BindAndValidate(v any) (*validation.Errors, error) {
	if err := req.Bind(v); err != nil {
		return nil, err
	}
	return req.Validate(v), nil
}

// ── Input helpers ────────────────────────────────────────────────────────────

// Query returns a query-string value.
func (req *Request) Query(key string, fallback ...string) string {
	v := req.raw.URL.Query().Get(key)
	if v == "" && len(fallback) > 0 {
		return fallback[0]
	}
	return v
}

// RouteParam returns a URL route parameter (chi).
func (req *Request) RouteParam(key string) string {
	return chi.URLParam(req.raw, key)
}

// RouteParamInt parses a route parameter as an integer.
func (req *Request) RouteParamInt(key string) (int, error) {
	return strconv.Atoi(req.RouteParam(key))
}

// Header returns a request header value.
func (req *Request) Header(key string) string {
	return req.raw.Header.Get(key)
}

// RequestID returns the id assigned by the RequestID middleware.
func (req *Request) RequestID() string {
	return middleware.GetReqID(req.raw.Context())
}

// Method returns the HTTP method.
func (req *Request) Method() string { return req.raw.Method }

// Path returns the URL path.
func (req *Request) Path() string { return req.raw.URL.Path }

// ContentType returns the Content-Type header value.
func (req *Request) ContentType() string {
	return req.raw.Header.Get("Content-Type")
}

// IsJSON returns true when the request expects a JSON response.
func (req *Request) IsJSON() bool {
	return strings.Contains(req.raw.Header.Get("Accept"), "application/json") ||
		strings.Contains(req.ContentType(), "application/json")
}
