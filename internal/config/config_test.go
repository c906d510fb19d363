package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := NewConfig()

		assert.NoError(t, err)
		assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddr)
		assert.NotEmpty(t, cfg.DatabaseDSN)
	})

	t.Run("reads values from the environment", func(t *testing.T) {
		t.Setenv("SERVER_ADDR", "localhost:9090")
		t.Setenv("DATABASE_DSN", "host=db user=app dbname=app sslmode=disable")
		t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4000")

		cfg, err := NewConfig()

		assert.NoError(t, err)
		assert.Equal(t, "localhost:9090", cfg.ServerAddr)
		assert.Equal(t, "host=db user=app dbname=app sslmode=disable", cfg.DatabaseDSN)
		assert.Equal(t, []string{"http://localhost:3000", "http://localhost:4000"}, cfg.AllowedOrigins)
	})
}
