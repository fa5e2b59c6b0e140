package textgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alimikegami/velvet-storefront/config"
	circuitbreaker "github.com/alimikegami/velvet-storefront/internal/infrastructure/circuit-breaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiServer(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)

		w.WriteHeader(status)
		if status == http.StatusOK {
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":` + jsonString(text) + `}]}}]}`))
		}
	}))
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newClient(apiKey string, baseURL string) *GeminiClient {
	conf := config.GeminiConfig{APIKey: apiKey, Model: "gemini-2.5-pro", TaglineModel: "gemini-2.5-flash"}
	return CreateGeminiClient(conf, circuitbreaker.CreateCircuitBreaker("textgen-test")).WithBaseURL(baseURL)
}

func TestGenerateDescription(t *testing.T) {
	type TestCase struct {
		Name             string
		APIKey           string
		Status           int
		Text             string
		ExpectedText     string
		ExpectedFallback bool
	}

	testCases := []TestCase{
		{Name: "Generated", APIKey: "test-key", Status: http.StatusOK, Text: " A refined tote. ", ExpectedText: "A refined tote."},
		{Name: "Not configured", ExpectedText: DescriptionNotConfigured, ExpectedFallback: true},
		{Name: "Upstream error", APIKey: "test-key", Status: http.StatusInternalServerError, ExpectedText: DescriptionFailed, ExpectedFallback: true},
		{Name: "Empty output", APIKey: "test-key", Status: http.StatusOK, Text: "", ExpectedText: DescriptionEmpty, ExpectedFallback: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			srv := geminiServer(t, tc.Status, tc.Text)
			defer srv.Close()

			got := newClient(tc.APIKey, srv.URL).GenerateDescription(context.Background(), "Midnight Rose Tote", "Bag", "dark, elegant")

			assert.Equal(t, tc.ExpectedText, got.Text)
			assert.Equal(t, tc.ExpectedFallback, got.Fallback)
		})
	}
}

func TestGenerateTagline(t *testing.T) {
	srv := geminiServer(t, http.StatusOK, `"Carry Elegance Everywhere You Go"`)
	defer srv.Close()

	got := newClient("test-key", srv.URL).GenerateTagline(context.Background())
	assert.Equal(t, "Carry Elegance Everywhere You Go", got.Text)
	assert.False(t, got.Fallback)

	got = newClient("", srv.URL).GenerateTagline(context.Background())
	assert.Equal(t, TaglineFallback, got.Text)
	assert.True(t, got.Fallback)
}

func TestGenerate_BreakerOpensAfterFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newClient("test-key", srv.URL)
	for i := 0; i < 5; i++ {
		got := client.GenerateTagline(context.Background())
		assert.Equal(t, TaglineFallback, got.Text)
	}

	assert.Equal(t, int32(3), calls.Load())
}
