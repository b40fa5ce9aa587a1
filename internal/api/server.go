package api

import (
	"context"
	"net/http"

	"github.com/user/cloud-balance-monitor/internal/config"
	"github.com/user/cloud-balance-monitor/internal/logger"
	"github.com/user/cloud-balance-monitor/internal/provider"
)

type Server struct {
	registry *provider.Registry
	config   *config.Config
	cache    *Cache
	log      *logger.Logger
	server   *http.Server
}

func NewServer(registry *provider.Registry, cfg *config.Config, addr string, log *logger.Logger) *Server {
	s := &Server{
		registry: registry,
		config:   cfg,
		cache:    NewCache(cfg.Settings.CacheTTL),
		log:      log,
	}

	mux := http.NewServeMux()
	s.registerHandlers(mux)

	s.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	return s
}

func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
