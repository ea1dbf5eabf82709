// internal/agent/handlers_test.go
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchpost/watchpost/internal/models"
)

type fakeSampler struct {
	collect func(ctx context.Context) (*models.RawMetrics, error)
}

func (f *fakeSampler) Collect(ctx context.Context) (*models.RawMetrics, error) {
	return f.collect(ctx)
}

func newAgentRouter(sampler Sampler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, NewHandlers(sampler))
	return router
}

func TestUsageHandlerServesMetrics(t *testing.T) {
	sampler := &fakeSampler{
		collect: func(ctx context.Context) (*models.RawMetrics, error) {
			return &models.RawMetrics{
				Disks: []models.DiskUsage{
					{MountPoint: "/", Total: 1000, Used: 400, UsedPercent: 40.0},
				},
				CPUUsage:      31.5,
				CPUs:          []models.CPUCore{{Name: "cpu0", Usage: 31.5, Frequency: 2400}},
				TotalMemory:   8192,
				UsedMemory:    2048,
				MemoryPercent: 25.0,
			}, nil
		},
	}
	router := newAgentRouter(sampler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/usage", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload models.RawMetrics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Disks, 1)
	assert.Equal(t, "/", payload.Disks[0].MountPoint)
	assert.InDelta(t, 31.5, payload.CPUUsage, 0.0001)
	assert.Equal(t, uint64(8192), payload.TotalMemory)
	assert.InDelta(t, 25.0, payload.MemoryPercent, 0.0001)
}

func TestUsageHandlerWireFieldNames(t *testing.T) {
	sampler := &fakeSampler{
		collect: func(ctx context.Context) (*models.RawMetrics, error) {
			return &models.RawMetrics{
				Disks:    []models.DiskUsage{{MountPoint: "/data"}},
				CPUs:     []models.CPUCore{{Name: "cpu0"}},
				CPUUsage: 10.0,
			}, nil
		},
	}
	router := newAgentRouter(sampler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/usage", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	for _, key := range []string{"disk_usage", "cpu_usage", "cpus", "total_memory", "used_memory", "memory_percent"} {
		assert.Contains(t, raw, key)
	}
}

func TestUsageHandlerCollectionFailure(t *testing.T) {
	sampler := &fakeSampler{
		collect: func(ctx context.Context) (*models.RawMetrics, error) {
			return nil, errors.New("proc not mounted")
		},
	}
	router := newAgentRouter(sampler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/usage", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to collect system usage", resp.Error)
}
