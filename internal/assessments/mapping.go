package assessments

import (
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/sustainassess/pkg/query"
	"github.com/JaimeStill/sustainassess/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "assessments", "a").
	Project("id", "ID").
	Project("company_id", "CompanyID").
	Project("general_answers", "General").
	Project("specific_answers", "Specific").
	Project("uploads", "Uploads").
	Project("status", "Status").
	Project("submitted_at", "SubmittedAt").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var newestFirst = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

var latestSubmission = query.SortField{
	Field:      "SubmittedAt",
	Descending: true,
}

const returning = `
	RETURNING id, company_id, general_answers, specific_answers, uploads,
		status, submitted_at, created_at, updated_at`

func scanAssessment(s repository.Scanner) (Assessment, error) {
	var (
		a                         Assessment
		general, specific, upload []byte
	)

	err := s.Scan(
		&a.ID,
		&a.CompanyID,
		&general,
		&specific,
		&upload,
		&a.Status,
		&a.SubmittedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return a, err
	}

	if err := json.Unmarshal(general, &a.General); err != nil {
		return a, fmt.Errorf("decode general answers: %w", err)
	}
	if err := json.Unmarshal(specific, &a.Specific); err != nil {
		return a, fmt.Errorf("decode specific answers: %w", err)
	}
	if err := json.Unmarshal(upload, &a.Uploads); err != nil {
		return a, fmt.Errorf("decode uploads: %w", err)
	}
	if a.Uploads == nil {
		a.Uploads = make(map[string]Upload)
	}

	return a, nil
}

func encodeAnswers(cmd SaveCommand) (general, specific string, err error) {
	g, err := json.Marshal(cmd.General)
	if err != nil {
		return "", "", fmt.Errorf("encode general answers: %w", err)
	}
	s, err := json.Marshal(cmd.Specific)
	if err != nil {
		return "", "", fmt.Errorf("encode specific answers: %w", err)
	}
	return string(g), string(s), nil
}
