package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"social-media-api/internal/config"
	"social-media-api/internal/database"
	"social-media-api/internal/service"
	"social-media-api/internal/testutil"
)

func TestNewServer(t *testing.T) {
	logger := testutil.TestLogger(t)
	repo := &database.MockRepository{}
	accounts := service.NewAccountService(logger, repo)
	messages := service.NewMessageService(logger, repo)
	cfg := &config.Config{
		ServerAddr:     "localhost:8080",
		DatabaseDSN:    "dsn",
		AllowedOrigins: []string{"http://localhost:3000"},
	}

	s := NewServer(logger, accounts, messages, repo, cfg)

	assert.NotNil(t, s, "expected server to be initialized")
	assert.NotNil(t, s.srv, "expected http server to be initialized")
	assert.Equal(t, s.log, logger, "expected logger to be set")
	assert.Equal(t, s.accounts, accounts, "expected account service to be set")
	assert.Equal(t, s.messages, messages, "expected message service to be set")
	assert.Equal(t, s.srv.Addr, cfg.ServerAddr, "expected server address to match config")
}
