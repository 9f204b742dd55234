package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"staffing-dashboard/internal/api/handlers"
	apperrors "staffing-dashboard/internal/errors"
	"staffing-dashboard/internal/testutils"

	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}

func setupHealthRouter(err error) *testutils.HTTPTestSuite {
	h := handlers.NewHealthHandler(stubPinger{err: err}, "test")
	ts := testutils.SetupHTTPTest()
	ts.Router.GET("/health", h.Health)
	ts.Router.GET("/health/ready", h.Ready)
	ts.Router.GET("/health/live", h.Live)
	return ts
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		ts := setupHealthRouter(nil)

		var resp handlers.HealthResponse
		testutils.AssertJSONResponse(t, ts.MakeRequest(http.MethodGet, "/health"), http.StatusOK, &resp)
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "test", resp.Version)
		assert.Equal(t, "healthy", resp.Services["database"])
	})

	t.Run("database unreachable", func(t *testing.T) {
		ts := setupHealthRouter(apperrors.NewConnectionError("dbhost:5432/staffing#v_gap_turni",
			errors.New(`failed to connect to user=dashboard database=staffing: connection refused`)))

		w := ts.MakeRequest(http.MethodGet, "/health")

		var resp handlers.HealthResponse
		testutils.AssertJSONResponse(t, w, http.StatusServiceUnavailable, &resp)
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "unavailable", resp.Services["database"])
		assert.NotContains(t, w.Body.String(), "dbhost")
		assert.NotContains(t, w.Body.String(), "user=dashboard")
	})

	t.Run("ready", func(t *testing.T) {
		ts := setupHealthRouter(nil)

		var resp map[string]interface{}
		testutils.AssertJSONResponse(t, ts.MakeRequest(http.MethodGet, "/health/ready"), http.StatusOK, &resp)
		assert.Equal(t, true, resp["ready"])
	})

	t.Run("not ready", func(t *testing.T) {
		ts := setupHealthRouter(apperrors.NewConnectionError("dbhost:5432/staffing#v_gap_turni", errors.New("down")))

		w := ts.MakeRequest(http.MethodGet, "/health/ready")

		var resp map[string]interface{}
		testutils.AssertJSONResponse(t, w, http.StatusServiceUnavailable, &resp)
		assert.Equal(t, false, resp["ready"])
		assert.Equal(t, map[string]interface{}{"database": "unavailable"}, resp["services"])
		assert.NotContains(t, w.Body.String(), "dbhost")
	})

	t.Run("live does not touch the database", func(t *testing.T) {
		ts := setupHealthRouter(errors.New("down"))

		var resp map[string]interface{}
		testutils.AssertJSONResponse(t, ts.MakeRequest(http.MethodGet, "/health/live"), http.StatusOK, &resp)
		assert.Equal(t, true, resp["alive"])
	})
}
