package api

import (
	"net/http"

	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	runtime *Runtime,
) {
	companyHandler := domain.Companies.Handler(runtime.Tokens)
	adminHandler := domain.Admin.Handler(runtime.Tokens)
	portal := NewPortal(
		domain.Companies,
		domain.Assessments,
		domain.Reports,
		domain.Questions,
		runtime.Logger,
	)

	requireCompany := auth.Require(auth.RoleCompany, runtime.Logger)
	requireAdmin := auth.Require(auth.RoleAdmin, runtime.Logger)

	company := routes.Group{
		Middleware: []func(http.Handler) http.Handler{requireCompany},
		Children: []routes.Group{
			portal.Routes(),
			domain.Assessments.Handler(domain.Uploads, runtime.MaxFormSize).Routes(),
			domain.Uploads.Handler().Routes(),
			domain.Reports.Handler().Routes(),
		},
	}

	adminGroup := adminHandler.Routes()
	adminGroup.Middleware = append(adminGroup.Middleware, requireAdmin)
	adminGroup.Children = append(
		adminGroup.Children,
		companyHandler.AdminRoutes(),
		domain.Questions.Handler().Routes(),
		domain.Prompts.Handler().Routes(),
	)

	routes.Register(
		mux,
		companyHandler.Routes(),
		adminHandler.SessionRoutes(),
		company,
		adminGroup,
	)
}
