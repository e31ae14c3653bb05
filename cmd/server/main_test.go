package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emoped-plan-backend/internal/config"
	"emoped-plan-backend/internal/logger"
	"emoped-plan-backend/internal/models"
	"emoped-plan-backend/internal/seed"
	"emoped-plan-backend/internal/services"
	"emoped-plan-backend/internal/storage"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Port:           "8080",
		Environment:    "test",
		BaseURL:        "https://plan.example.com",
		CORSOrigins:    "*",
		MaxUploadBytes: 32 << 20,
		StoreDriver:    config.StoreDriverMemory,
		BlobDriver:     config.BlobDriverLocal,
		UploadDir:      t.TempDir(),
	}
}

func TestOpenStores(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	docStore, err := openStore(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	assert.NoError(t, docStore.Ping(ctx))

	blobs, err := openBlobStore(cfg)
	require.NoError(t, err)
	assert.IsType(t, &storage.Local{}, blobs)

	cfg.StoreDriver = "sqlite"
	_, err = openStore(ctx, cfg, logger.Discard())
	assert.Error(t, err)

	cfg.BlobDriver = "s3"
	_, err = openBlobStore(cfg)
	assert.Error(t, err)
}

func TestRouter_StartupServesSeededPlan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	ctx := context.Background()
	log := logger.Discard()

	docStore, err := openStore(ctx, cfg, log)
	require.NoError(t, err)
	blobs, err := openBlobStore(cfg)
	require.NoError(t, err)

	plans := services.NewPlanService(docStore, log)
	assets := services.NewAssetService(docStore, blobs, cfg.ImageURL, log)

	content, err := seed.BusinessPlan()
	require.NoError(t, err)
	created, err := plans.EnsureSeeded(ctx, content)
	require.NoError(t, err)
	require.True(t, created)

	router := newRouter(cfg, plans, assets, log)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/business-plan", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body models.BusinessPlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "E-Moped Üretimi & Batarya Dolum Servisi", body.Data.ExecutiveSummary.ProjectName)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"host": "plan.example.com"`)
	assert.Contains(t, w.Body.String(), `"basePath": "/"`)
	assert.Contains(t, w.Body.String(), `"/api/business-plan"`)
	assert.Contains(t, w.Body.String(), `"/health"`)
}

func TestRootCommand(t *testing.T) {
	root := newRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "seed"}, names)
}
