package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/academics-backend/internal/config"
	"github.com/yungbote/academics-backend/internal/platform/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "file:app_test?mode=memory&cache=shared")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("GRAPH_MISSING_RELATION", "fail")
	t.Setenv("LOG_MODE", "test")
	cfg, err := config.Load("")
	require.NoError(t, err)
	return cfg
}

func TestNewWiresServer(t *testing.T) {
	cfg := testConfig(t)
	log, err := logger.New("test")
	require.NoError(t, err)

	a, err := New(context.Background(), cfg, log, "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, "fail", a.Services.Assembler.Policy().String())
	require.NotNil(t, a.Metrics)

	rec := httptest.NewRecorder()
	a.Server.Engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	a.Server.Engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/departments", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestNewRejectsUnknownPolicy(t *testing.T) {
	cfg := testConfig(t)
	cfg.Graph.MissingRelation = "shrug"
	log, err := logger.New("test")
	require.NoError(t, err)

	_, err = New(context.Background(), cfg, log, "test")
	assert.Error(t, err)
}
