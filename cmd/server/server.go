package main

import (
	"time"

	"github.com/JaimeStill/sustainassess/internal/config"
	"github.com/JaimeStill/sustainassess/internal/infrastructure"
)

// Server owns the infrastructure, the mounted modules, and the HTTP listener.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    *httpServer
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	infra.Logger.Info(
		"sustainassess initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"storage", cfg.Storage.Provider,
		"models", cfg.Narrative.Models,
	)

	return &Server{
		infra:   infra,
		modules: modules,
		http:    newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown", "timeout", timeout)
	if err := s.infra.Lifecycle.Shutdown(timeout); err != nil {
		return err
	}
	s.infra.Logger.Info("sustainassess stopped")
	return nil
}
