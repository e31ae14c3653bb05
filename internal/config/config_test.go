package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emoped-plan-backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, config.BlobDriverLocal, cfg.BlobDriver)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, int64(32<<20), cfg.MaxUploadBytes)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/plans?sslmode=disable")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://plan.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, config.StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, []string{"http://localhost:3000", "https://plan.example.com"}, cfg.AllowedOrigins())
}

func TestValidate(t *testing.T) {
	base := func() config.Config {
		return config.Config{
			StoreDriver:    config.StoreDriverMemory,
			BlobDriver:     config.BlobDriverLocal,
			UploadDir:      "uploads",
			MaxUploadBytes: 1 << 20,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "memory ok", mutate: func(c *config.Config) {}},
		{name: "postgres without url", mutate: func(c *config.Config) { c.StoreDriver = config.StoreDriverPostgres }, wantErr: "DATABASE_URL"},
		{name: "mongo without url", mutate: func(c *config.Config) { c.StoreDriver = config.StoreDriverMongo }, wantErr: "MONGO_URL"},
		{name: "unknown store", mutate: func(c *config.Config) { c.StoreDriver = "sqlite" }, wantErr: "STORE_DRIVER"},
		{name: "supabase without url", mutate: func(c *config.Config) { c.BlobDriver = config.BlobDriverSupabase }, wantErr: "SUPABASE_URL"},
		{name: "zero upload limit", mutate: func(c *config.Config) { c.MaxUploadBytes = 0 }, wantErr: "MAX_UPLOAD_BYTES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestImageURL(t *testing.T) {
	cfg := config.Config{BaseURL: "https://plan.example.com/"}
	assert.Equal(t, "https://plan.example.com/api/images/abc", cfg.ImageURL("abc"))
}
