package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"go.uber.org/zap"

	"social-media-api/internal/config"
	"social-media-api/internal/database"
	"social-media-api/internal/service"
)

type Server struct {
	log      *zap.SugaredLogger
	accounts *service.AccountService
	messages *service.MessageService
	db       database.Repository
	srv      *http.Server
}

func NewServer(logger *zap.SugaredLogger, accounts *service.AccountService, messages *service.MessageService, db database.Repository, cfg *config.Config) *Server {
	s := &Server{
		log:      logger,
		accounts: accounts,
		messages: messages,
		db:       db,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", s.register)
	mux.HandleFunc("POST /login", s.login)
	mux.HandleFunc("POST /messages", s.createMessage)
	mux.HandleFunc("GET /messages", s.getAllMessages)
	mux.HandleFunc("GET /messages/{messageId}", s.getMessageById)
	mux.HandleFunc("PATCH /messages/{messageId}", s.updateMessage)
	mux.HandleFunc("DELETE /messages/{messageId}", s.deleteMessage)
	mux.HandleFunc("GET /accounts/{accountId}/messages", s.getMessagesByUser)
	mux.HandleFunc("GET /healthz", s.healthCheck)

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept"}),
	)(mux)

	h = s.logRequests(h)
	h = s.errorHandler(h)

	s.srv = &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	return s
}

func (s *Server) Start() error {
	s.log.Infof("starting server on %s", s.srv.Addr)
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down HTTP server...")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
