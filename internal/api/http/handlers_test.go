package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonbrowser/backend/internal/domain/bookmarks"
	"github.com/halcyonbrowser/backend/internal/domain/profiles"
	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/monitoring"
	"github.com/halcyonbrowser/backend/internal/providers"
	"github.com/halcyonbrowser/backend/internal/service"
	"github.com/halcyonbrowser/backend/internal/storage/record"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	records := record.New(t.TempDir(), logging.NewNop())
	manager := profiles.NewManager(records, logging.NewNop())
	metrics := monitoring.New(prometheus.NewRegistry())

	registry := service.NewRegistry(metrics, logging.NewNop())
	require.NoError(t, registry.Register(providers.NewProfiles(manager)))
	require.NoError(t, registry.Register(
		providers.NewBookmarks(bookmarks.NewStore(records, manager, logging.NewNop()))))

	handlers := NewHandlers(registry, manager, metrics)

	router := gin.New()
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)
	router.GET("/metrics/summary", handlers.MetricsSummary)
	return router
}

func TestRootAndHealth(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "online")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "default")
}

func TestListServices(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
}

func TestExecuteService(t *testing.T) {
	router := testRouter(t)

	payload := `{"tool_id":"bookmarks.add","params":{"url":"https://go.dev","title":"Go"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/services/execute", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result struct {
		Success bool `json:"success"`
	}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
}

func TestExecuteServiceRejectsBadBody(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/services/execute", strings.NewReader(`{"params":{}}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteServiceUnknownService(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/services/execute",
		strings.NewReader(`{"tool_id":"nope.list","params":{}}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMetricsSummary(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics/summary", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "uptime_seconds")
}
