package api

import (
	"github.com/JaimeStill/sustainassess/internal/admin"
	"github.com/JaimeStill/sustainassess/internal/assessments"
	"github.com/JaimeStill/sustainassess/internal/companies"
	"github.com/JaimeStill/sustainassess/internal/narrative"
	"github.com/JaimeStill/sustainassess/internal/prompts"
	"github.com/JaimeStill/sustainassess/internal/questions"
	"github.com/JaimeStill/sustainassess/internal/reports"
	"github.com/JaimeStill/sustainassess/internal/uploads"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Companies   companies.System
	Assessments assessments.System
	Uploads     uploads.System
	Questions   questions.System
	Prompts     prompts.System
	Reports     reports.System
	Admin       admin.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	companySys := companies.New(db, runtime.Logger, runtime.Pagination)
	assessmentSys := assessments.New(db, runtime.Logger)
	uploadSys := uploads.New(assessmentSys, runtime.Storage, runtime.MaxUploadSize, runtime.Logger)
	questionSys := questions.New(runtime.Storage, runtime.Logger)
	promptSys := prompts.New(db, runtime.Logger, runtime.Pagination)

	composer := narrative.NewComposer(
		narrative.AgentChain(
			runtime.Agent,
			runtime.Narrative.Models,
			runtime.Narrative.TimeoutDuration(),
		),
		promptSys,
		runtime.Logger,
	)

	reportSys := reports.New(
		db,
		composer,
		assessmentSys,
		companySys,
		runtime.Logger,
		runtime.Pagination,
	)

	adminSys := admin.New(
		runtime.Auth,
		companySys,
		assessmentSys,
		reportSys,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Companies:   companySys,
		Assessments: assessmentSys,
		Uploads:     uploadSys,
		Questions:   questionSys,
		Prompts:     promptSys,
		Reports:     reportSys,
		Admin:       adminSys,
	}
}
