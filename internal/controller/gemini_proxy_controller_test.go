package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProxyRouter(baseURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := &GeminiProxyController{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
	}
	r := gin.New()
	r.Any("/gemini/proxy/*path", ctrl.Proxy)
	return r
}

func TestProxyRequiresPath(t *testing.T) {
	r := newProxyRouter("http://unused")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/gemini/proxy/", strings.NewReader(`{}`))
	req.Header.Set("x-goog-api-key", "test-key")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "path is required")
}

func TestProxyRequiresAPIKey(t *testing.T) {
	r := newProxyRouter("http://unused")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/gemini/proxy/v1beta/models", strings.NewReader(`{}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "x-goog-api-key")
}

func TestProxyForwardsBodyAndKey(t *testing.T) {
	var gotPath, gotKey, gotBody string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer upstream.Close()

	r := newProxyRouter(upstream.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/gemini/proxy/v1beta/models/gemini-1.5-flash:generateContent", strings.NewReader(`{"contents":[]}`))
	req.Header.Set("x-goog-api-key", "test-key")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, `{"contents":[]}`, gotBody)
	assert.JSONEq(t, `{"candidates":[]}`, w.Body.String())
}

func TestProxyForwardsRequestMethod(t *testing.T) {
	var gotMethod string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"models":[]}`))
	}))
	defer upstream.Close()

	r := newProxyRouter(upstream.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gemini/proxy/v1beta/models", nil)
	req.Header.Set("x-goog-api-key", "test-key")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.MethodGet, gotMethod)
}

func TestProxyPassesUpstreamStatusThrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429}}`))
	}))
	defer upstream.Close()

	r := newProxyRouter(upstream.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/gemini/proxy/v1beta/models/x:generateContent", strings.NewReader(`{}`))
	req.Header.Set("x-goog-api-key", "test-key")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "429")
}

func TestProxyUnreachableUpstream(t *testing.T) {
	// Closed port; the request fails at dial time.
	r := newProxyRouter("http://127.0.0.1:1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/gemini/proxy/v1beta/models", strings.NewReader(`{}`))
	req.Header.Set("x-goog-api-key", "test-key")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
