// Package api assembles the API module from the domain systems, their routes,
// and the session and request middleware.
package api

import (
	"net/http"

	"github.com/JaimeStill/sustainassess/internal/config"
	"github.com/JaimeStill/sustainassess/internal/infrastructure"
	"github.com/JaimeStill/sustainassess/pkg/middleware"
	"github.com/JaimeStill/sustainassess/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// Every request passes through session authentication; role checks are
// attached per route group.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, runtime)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.Recoverer(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(runtime.Tokens.Authenticate(runtime.Logger))

	return m, nil
}
