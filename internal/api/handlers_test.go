// internal/api/handlers_test.go
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchpost/watchpost/internal/models"
	"github.com/watchpost/watchpost/internal/registry"
	"github.com/watchpost/watchpost/internal/snapshot"
	"github.com/watchpost/watchpost/internal/templates"
)

func newTestAPI(t *testing.T) (*gin.Engine, *registry.Registry, *snapshot.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg, err := registry.Load(filepath.Join(t.TempDir(), "endpoints.json"))
	require.NoError(t, err)
	store := snapshot.NewStore()

	router := gin.New()
	require.NoError(t, templates.Load(router))
	SetupRoutes(router, NewHandlers(reg, store, "test"))
	return router, reg, store
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func addForm(name, address, kind string) url.Values {
	return url.Values{
		"name":    {name},
		"address": {address},
		"kind":    {kind},
	}
}

func TestDashboardServesHTML(t *testing.T) {
	router, _, _ := newTestAPI(t)

	w := get(router, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Fleet Health Dashboard")
}

func TestSnapshotEmptyBeforeFirstCycle(t *testing.T) {
	router, _, _ := newTestAPI(t)

	w := get(router, "/api/servers")

	require.Equal(t, http.StatusOK, w.Code)
	// Must be a JSON array even before the first publish, never null.
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestSnapshotServesPublishedResults(t *testing.T) {
	router, _, store := newTestAPI(t)

	store.Publish([]models.EndpointResult{
		{
			Endpoint:     models.Endpoint{Name: "db-1", Address: "10.0.0.1:8081", Kind: models.KindMetricsSource},
			Overall:      models.StatusGreen,
			Connectivity: models.StatusGreen,
			CapturedAt:   "2026-03-01 12:00:00",
		},
		{
			Endpoint:     models.Endpoint{Name: "shop", Address: "https://shop.example.com", Kind: models.KindHTTPProbe},
			Overall:      models.StatusRed,
			Connectivity: models.StatusGreen,
			CapturedAt:   "2026-03-01 12:00:00",
		},
	})

	w := get(router, "/api/servers")

	require.Equal(t, http.StatusOK, w.Code)
	var results []models.EndpointResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "db-1", results[0].Name)
	assert.Equal(t, "shop", results[1].Name)
	assert.Equal(t, models.StatusRed, results[1].Overall)
}

func TestAddEndpoint(t *testing.T) {
	router, reg, _ := newTestAPI(t)

	w := postForm(router, "/add_endpoint", addForm("db-1", "10.0.0.1:8081", "metrics-source"))

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.GenericSuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Endpoint added", resp.Message)

	endpoints := reg.List()
	require.Len(t, endpoints, 1)
	assert.Equal(t, models.KindMetricsSource, endpoints[0].Kind)
}

func TestAddEndpointDuplicateName(t *testing.T) {
	router, reg, _ := newTestAPI(t)

	first := postForm(router, "/add_endpoint", addForm("db-1", "10.0.0.1:8081", "metrics-source"))
	require.Equal(t, http.StatusOK, first.Code)

	second := postForm(router, "/add_endpoint", addForm("db-1", "10.0.0.2:8081", "http-probe"))

	require.Equal(t, http.StatusBadRequest, second.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, "Endpoint name already exists", resp.Error)

	// The original registration is untouched.
	endpoints := reg.List()
	require.Len(t, endpoints, 1)
	assert.Equal(t, "10.0.0.1:8081", endpoints[0].Address)
}

func TestAddEndpointUnknownKind(t *testing.T) {
	router, reg, _ := newTestAPI(t)

	w := postForm(router, "/add_endpoint", addForm("db-1", "10.0.0.1:8081", "website"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "unknown endpoint kind")
	assert.Empty(t, reg.List())
}

func TestAddEndpointMissingFields(t *testing.T) {
	router, reg, _ := newTestAPI(t)

	w := postForm(router, "/add_endpoint", url.Values{"name": {"db-1"}})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Invalid form payload")
	assert.Empty(t, reg.List())
}

func TestRemoveEndpoint(t *testing.T) {
	router, reg, _ := newTestAPI(t)

	require.Equal(t, http.StatusOK, postForm(router, "/add_endpoint", addForm("db-1", "10.0.0.1:8081", "metrics-source")).Code)

	w := postForm(router, "/delete_endpoint", url.Values{"name": {"db-1"}})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.GenericSuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Endpoint removed", resp.Message)
	assert.Empty(t, reg.List())
}

func TestRemoveUnknownEndpointSucceeds(t *testing.T) {
	router, _, _ := newTestAPI(t)

	w := postForm(router, "/delete_endpoint", url.Values{"name": {"never-registered"}})

	require.Equal(t, http.StatusOK, w.Code)
}

func TestListEndpoints(t *testing.T) {
	router, _, _ := newTestAPI(t)

	require.Equal(t, http.StatusOK, postForm(router, "/add_endpoint", addForm("db-1", "10.0.0.1:8081", "metrics-source")).Code)
	require.Equal(t, http.StatusOK, postForm(router, "/add_endpoint", addForm("shop", "shop.example.com", "http-probe")).Code)

	w := get(router, "/api/endpoints")

	require.Equal(t, http.StatusOK, w.Code)
	var endpoints []models.Endpoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &endpoints))
	require.Len(t, endpoints, 2)
	assert.Equal(t, "db-1", endpoints[0].Name)
	assert.Equal(t, "shop", endpoints[1].Name)
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := newTestAPI(t)

	w := get(router, "/health")

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "test", resp.Version)
	assert.False(t, resp.StartTime.IsZero())
}
