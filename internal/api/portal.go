package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/sustainassess/internal/assessments"
	"github.com/JaimeStill/sustainassess/internal/companies"
	"github.com/JaimeStill/sustainassess/internal/questions"
	"github.com/JaimeStill/sustainassess/internal/reports"
	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/handlers"
	"github.com/JaimeStill/sustainassess/pkg/routes"
)

// Dashboard is the signed-in company's landing view. Assessment and Report
// are nil until the company has started an assessment or received a report.
type Dashboard struct {
	Company    *companies.Company      `json:"company"`
	Assessment *assessments.Assessment `json:"assessment,omitempty"`
	Report     *reports.Report         `json:"report,omitempty"`
}

// Questionnaire pairs the open assessment with the questions it answers.
type Questionnaire struct {
	Assessment *assessments.Assessment `json:"assessment"`
	Questions  *questions.Set          `json:"questions"`
}

// Portal serves the company views that span several domain systems.
type Portal struct {
	companies   companies.System
	assessments assessments.System
	reports     reports.System
	questions   questions.System
	logger      *slog.Logger
}

// NewPortal creates the company portal handler.
func NewPortal(
	companySys companies.System,
	assessmentSys assessments.System,
	reportSys reports.System,
	questionSys questions.System,
	logger *slog.Logger,
) *Portal {
	return &Portal{
		companies:   companySys,
		assessments: assessmentSys,
		reports:     reportSys,
		questions:   questionSys,
		logger:      logger.With("handler", "portal"),
	}
}

// Routes returns the dashboard and questionnaire endpoints.
func (p *Portal) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/dashboard", Handler: p.Dashboard},
			{Method: "GET", Pattern: "/questionnaire", Handler: p.Questionnaire},
		},
	}
}

func (p *Portal) Dashboard(w http.ResponseWriter, r *http.Request) {
	companyID, err := auth.SubjectFrom(r.Context())
	if err != nil {
		handlers.RespondError(w, p.logger, http.StatusUnauthorized, err)
		return
	}

	d, err := p.dashboard(r.Context(), companyID)
	if err != nil {
		handlers.RespondError(w, p.logger, mapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, d)
}

func (p *Portal) Questionnaire(w http.ResponseWriter, r *http.Request) {
	companyID, err := auth.SubjectFrom(r.Context())
	if err != nil {
		handlers.RespondError(w, p.logger, http.StatusUnauthorized, err)
		return
	}

	c, err := p.companies.Find(r.Context(), companyID)
	if err != nil {
		handlers.RespondError(w, p.logger, mapHTTPStatus(err), err)
		return
	}

	a, err := p.assessments.Current(r.Context(), companyID)
	if err != nil {
		handlers.RespondError(w, p.logger, mapHTTPStatus(err), err)
		return
	}

	set, err := p.questions.Load(r.Context(), c.Industry)
	if err != nil {
		handlers.RespondError(w, p.logger, mapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Questionnaire{Assessment: a, Questions: set})
}

// dashboard prefers the report for the latest assessment and otherwise
// shows the most recent report the company has.
func (p *Portal) dashboard(ctx context.Context, companyID string) (*Dashboard, error) {
	c, err := p.companies.Find(ctx, companyID)
	if err != nil {
		return nil, err
	}
	d := &Dashboard{Company: c}

	a, err := p.assessments.Latest(ctx, companyID)
	switch {
	case errors.Is(err, assessments.ErrNotFound):
		return d, nil
	case err != nil:
		return nil, err
	}
	d.Assessment = a

	rep, err := p.reports.ForAssessment(ctx, companyID, a.ID)
	if errors.Is(err, reports.ErrNotFound) {
		rep, err = p.reports.Latest(ctx, companyID)
	}
	switch {
	case errors.Is(err, reports.ErrNotFound):
		return d, nil
	case err != nil:
		return nil, err
	}
	d.Report = rep

	return d, nil
}

func mapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, companies.ErrNotFound),
		errors.Is(err, assessments.ErrNotFound),
		errors.Is(err, reports.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, questions.ErrUnknownIndustry):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
