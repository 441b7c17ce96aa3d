package clients_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/diaita/app/clients"
	"github.com/km-arc/diaita/app/dto"
	"github.com/km-arc/diaita/framework/config"
	"github.com/km-arc/diaita/framework/metrics"
)

func ptr[T any](v T) *T { return &v }

// recorded is what the fake upstream saw for the last request.
type recorded struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   []byte
}

func upstream(t *testing.T, status int, body string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.header = r.Header.Clone()
		rec.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

// ── RestClient ───────────────────────────────────────────────────────────────

func TestRestClient_NonSuccessIsUpstreamError(t *testing.T) {
	srv, _ := upstream(t, http.StatusPaymentRequired, `{"message":"quota"}`)
	c := clients.NewRestClient("test", srv.URL, "x-api-key", "k")

	err := c.GetJSON(context.Background(), "/x", nil, &struct{}{})

	require.ErrorIs(t, err, clients.ErrUpstream)
	var ue *clients.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusPaymentRequired, ue.Status)
	assert.Contains(t, ue.Body, "quota")
}

func TestRestClient_BreakerOpensOnServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := clients.NewRestClient("flaky", srv.URL, "x-api-key", "k", clients.WithBreaker(clients.BreakerSettings{
		MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, FailureThreshold: 0.5, MinRequests: 2,
	}))

	for range 2 {
		assert.ErrorIs(t, c.GetJSON(context.Background(), "/", nil, nil), clients.ErrUpstream)
	}
	err := c.GetJSON(context.Background(), "/", nil, nil)

	assert.ErrorIs(t, err, clients.ErrUnavailable)
	assert.Equal(t, int32(2), calls.Load(), "open breaker must not reach the upstream")
}

func TestRestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	srv, _ := upstream(t, http.StatusNotFound, `{}`)
	c := clients.NewRestClient("strict", srv.URL, "x-api-key", "k", clients.WithBreaker(clients.BreakerSettings{
		MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, FailureThreshold: 0.1, MinRequests: 1,
	}))

	for range 3 {
		err := c.GetJSON(context.Background(), "/", nil, nil)
		assert.ErrorIs(t, err, clients.ErrUpstream)
		assert.NotErrorIs(t, err, clients.ErrUnavailable)
	}
}

func TestRestClient_RecordsUpstreamMetrics(t *testing.T) {
	srv, _ := upstream(t, http.StatusOK, `{}`)
	m := metrics.NewCollector("test")
	c := clients.NewRestClient("spoonacular", srv.URL, "x-api-key", "k", clients.WithMetrics(m))

	require.NoError(t, c.GetJSON(context.Background(), "/", nil, &struct{}{}))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("spoonacular", "ok")))
}

func TestRestClient_TransportErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := clients.NewRestClient("down", srv.URL, "x-api-key", "k")

	err := c.GetJSON(context.Background(), "/ping", nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "down: GET /ping")
	assert.NotErrorIs(t, err, clients.ErrUpstream)
}

// ── NutritionClient ──────────────────────────────────────────────────────────

func nutritionClient(srvURL string) *clients.NutritionClient {
	return clients.NewNutritionClient(config.SpoonacularConfig{APIKey: "spoon-key", BaseURL: srvURL})
}

func TestNutritionClient_SearchIngredients(t *testing.T) {
	srv, rec := upstream(t, http.StatusOK, `{"results":[{"id":9003,"name":"apple"}],"offset":0,"number":10,"totalResults":1}`)

	resp, err := nutritionClient(srv.URL).SearchIngredients(context.Background(), dto.IngredientSearchFilters{
		Query:             "apple",
		MinProteinPercent: ptr(5.0),
		Intolerances:      []string{"dairy", "gluten"},
	})

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, 9003, resp.Results[0].ID)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/food/ingredients/search", rec.path)
	assert.Equal(t, "spoon-key", rec.header.Get("x-api-key"))
	assert.Equal(t, "apple", rec.query.Get("query"))
	assert.Equal(t, "0", rec.query.Get("offset"))
	assert.Equal(t, "10", rec.query.Get("number"), "number defaults when unset")
	assert.Equal(t, "5", rec.query.Get("minProteinPercent"))
	assert.Equal(t, "dairy,gluten", rec.query.Get("intolerances"))
	assert.False(t, rec.query.Has("maxFatPercent"))
}

func TestNutritionClient_SearchProducts(t *testing.T) {
	srv, rec := upstream(t, http.StatusOK, `{"products":[{"id":1,"title":"bar"}],"totalProducts":7}`)

	resp, err := nutritionClient(srv.URL).SearchProducts(context.Background(), dto.ProductSearchFilters{
		Query: "bar", MaxCalories: ptr(250.0), Offset: 20, Number: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, 7, resp.TotalProducts)
	assert.Equal(t, "/food/products/search", rec.path)
	assert.Equal(t, "250", rec.query.Get("maxCalories"))
	assert.Equal(t, "20", rec.query.Get("offset"))
	assert.Equal(t, "5", rec.query.Get("number"))
}

func TestNutritionClient_SearchMenuItems(t *testing.T) {
	srv, rec := upstream(t, http.StatusOK, `{"menuItems":[{"id":2,"title":"burger","restaurantChain":"Chain"}],"totalMenuItems":1}`)

	resp, err := nutritionClient(srv.URL).SearchMenuItems(context.Background(), dto.MenuItemSearchFilters{Query: "burger"})

	require.NoError(t, err)
	require.Len(t, resp.MenuItems, 1)
	assert.Equal(t, ptr("Chain"), resp.MenuItems[0].RestaurantChain)
	assert.Equal(t, "/food/menuItems/search", rec.path)
}

func TestNutritionClient_Information(t *testing.T) {
	t.Run("ingredient per 100 grams", func(t *testing.T) {
		srv, rec := upstream(t, http.StatusOK, `{"id":9003,"name":"apple","nutrition":{"nutrients":[{"name":"Calories","amount":52}]}}`)
		info, err := nutritionClient(srv.URL).IngredientInformation(context.Background(), 9003)
		require.NoError(t, err)
		assert.Equal(t, "apple", info.Name)
		assert.Equal(t, "/food/ingredients/9003/information", rec.path)
		assert.Equal(t, "100", rec.query.Get("amount"))
		assert.Equal(t, "grams", rec.query.Get("unit"))
	})

	t.Run("product", func(t *testing.T) {
		srv, rec := upstream(t, http.StatusOK, `{"id":5,"title":"bar","serving_size":40,"serving_unit":"g"}`)
		info, err := nutritionClient(srv.URL).ProductInformation(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, ptr(40.0), info.ServingSize)
		assert.Equal(t, "/food/products/5", rec.path)
	})

	t.Run("menu item", func(t *testing.T) {
		srv, rec := upstream(t, http.StatusOK, `{"id":6,"title":"fries"}`)
		info, err := nutritionClient(srv.URL).MenuItemInformation(context.Background(), 6)
		require.NoError(t, err)
		assert.Equal(t, "fries", info.Title)
		assert.Equal(t, "/food/menuItems/6", rec.path)
	})

	t.Run("not found", func(t *testing.T) {
		srv, _ := upstream(t, http.StatusNotFound, `{"status":"failure"}`)
		_, err := nutritionClient(srv.URL).ProductInformation(context.Background(), 404)
		assert.ErrorIs(t, err, clients.ErrUpstream)
	})
}

// ── GeminiClient ─────────────────────────────────────────────────────────────

func TestStreamURL(t *testing.T) {
	tests := []struct{ in, want string }{
		{
			"https://g.example/v1beta/models/m:generateContent",
			"https://g.example/v1beta/models/m:streamGenerateContent?alt=sse",
		},
		{
			"https://g.example/v1beta/models/m:generateContent?key=abc",
			"https://g.example/v1beta/models/m:streamGenerateContent?alt=sse",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clients.StreamURL(tt.in))
	}
}

func geminiClient(srvURL string) *clients.GeminiClient {
	return clients.NewGeminiClient(config.GeminiConfig{APIKey: "g-key", BaseURL: srvURL + "/v1beta/models/m:generateContent"})
}

func TestGeminiClient_AskQuestion(t *testing.T) {
	srv, rec := upstream(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"first"},{"text":"second"}]}}]}`)

	answer, err := geminiClient(srv.URL).AskQuestion(context.Background(), "hello?", nil, "be brief")

	require.NoError(t, err)
	assert.Equal(t, "first", answer)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/v1beta/models/m:generateContent", rec.path)
	assert.Equal(t, "g-key", rec.header.Get("x-goog-api-key"))
	assert.Equal(t, "application/json", rec.header.Get("Content-Type"))

	var sent dto.GeminiRequest
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, "hello?", sent.Contents[0].Parts[0].Text)
	require.NotNil(t, sent.SystemInstruction)
	assert.Equal(t, "be brief", sent.SystemInstruction.Parts[0].Text)
}

func TestGeminiClient_AskQuestionEmpty(t *testing.T) {
	srv, _ := upstream(t, http.StatusOK, `{"candidates":[]}`)
	_, err := geminiClient(srv.URL).AskQuestion(context.Background(), "hello?", nil, "")
	assert.ErrorIs(t, err, clients.ErrEmptyAnswer)
}

func chunk(texts ...string) string {
	parts := ""
	for i, t := range texts {
		if i > 0 {
			parts += ","
		}
		parts += fmt.Sprintf(`{"text":%q}`, t)
	}
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[%s]}}]}`, parts)
}

func TestGeminiClient_AskQuestionStream(t *testing.T) {
	stream := "data: " + chunk("Hel", "lo") + "\n\n" +
		": keep-alive\n" +
		"data:\n\n" +
		"data: [" + chunk(", ") + "," + chunk("world") + "]\n\n" +
		"data: [DONE]\n\n"

	srv, rec := upstream(t, http.StatusOK, stream)

	var pieces []string
	answer, err := geminiClient(srv.URL).AskQuestionStream(context.Background(), "hi", nil, "", func(s string) {
		pieces = append(pieces, s)
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello, world", answer)
	assert.Equal(t, []string{"Hello", ", ", "world"}, pieces)
	assert.Equal(t, "/v1beta/models/m:streamGenerateContent", rec.path)
	assert.Equal(t, "sse", rec.query.Get("alt"))
	assert.Equal(t, "text/event-stream", rec.header.Get("Accept"))
}

func TestGeminiClient_AskQuestionStreamErrors(t *testing.T) {
	t.Run("malformed chunk", func(t *testing.T) {
		srv, _ := upstream(t, http.StatusOK, "data: {not json\n\n")
		_, err := geminiClient(srv.URL).AskQuestionStream(context.Background(), "hi", nil, "", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode event chunk")
	})

	t.Run("no text", func(t *testing.T) {
		srv, _ := upstream(t, http.StatusOK, "data: [DONE]\n\n")
		_, err := geminiClient(srv.URL).AskQuestionStream(context.Background(), "hi", nil, "", nil)
		assert.ErrorIs(t, err, clients.ErrEmptyAnswer)
	})

	t.Run("upstream failure", func(t *testing.T) {
		srv, _ := upstream(t, http.StatusTooManyRequests, `{"error":"rate"}`)
		_, err := geminiClient(srv.URL).AskQuestionStream(context.Background(), "hi", nil, "", nil)
		assert.ErrorIs(t, err, clients.ErrUpstream)
	})
}

func TestGeminiClient_Model(t *testing.T) {
	assert.Equal(t, "gemini-2.5-flash", clients.NewGeminiClient(config.GeminiConfig{
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent",
	}).Model())
	assert.Empty(t, clients.NewGeminiClient(config.GeminiConfig{BaseURL: "http://localhost:9999"}).Model())
}
