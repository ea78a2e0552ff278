package main

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/periodic-api/internal/api"
	"github.com/phrazzld/periodic-api/internal/api/shared"
	"github.com/phrazzld/periodic-api/internal/config"
	"github.com/phrazzld/periodic-api/internal/platform/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			LogLevel:        "debug",
			LogFormat:       "json",
			ShutdownTimeout: 2 * time.Second,
		},
		Catalog: config.CatalogConfig{Mode: "abridged", Precision: 2},
	}
}

func newTestApp(t *testing.T) *application {
	t.Helper()
	log, _ := logger.NewTestLogger(t)
	app, err := newApplication(testConfig(), log, nil)
	require.NoError(t, err)
	return app
}

func TestNewApplication(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	assert.Nil(t, app.db)
	assert.Nil(t, app.quantityStore)
	assert.NotNil(t, app.catalog)
	assert.Equal(t, "abridged", app.mode.String())

	cfg := testConfig()
	cfg.Catalog.Mode = "rounded"
	log, _ := logger.NewTestLogger(t)
	_, err := newApplication(cfg, log, nil)
	assert.Error(t, err)
}

func TestSeedWithoutDatabase(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	assert.ErrorIs(t, app.seed(context.Background()), errDatabaseRequired)
}

func TestRouter(t *testing.T) {
	t.Parallel()

	router := newTestApp(t).setupRouter()

	t.Run("health", func(t *testing.T) {
		t.Parallel()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "OK", rr.Body.String())
	})

	t.Run("configured_defaults", func(t *testing.T) {
		t.Parallel()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/elements/C", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(shared.TraceIDHeader))

		var resp api.ElementResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "abridged", resp.Mode)
		require.NotNil(t, resp.StandardAtomicWeight)
		assert.Equal(t, "12.01±0.00", resp.StandardAtomicWeight.Text)
	})

	t.Run("stored_quantities_without_database", func(t *testing.T) {
		t.Parallel()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/quantities/C", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("unknown_route", func(t *testing.T) {
		t.Parallel()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/molecules", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestServeGracefulShutdown(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.serve(ctx, ln, app.setupRouter())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
