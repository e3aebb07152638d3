// Package assessments stores each company's questionnaire answers and the
// evidence uploaded alongside them, and moves an assessment from in progress
// through to submitted.
package assessments

import (
	"context"
	"time"

	"github.com/JaimeStill/sustainassess/internal/scoring"
)

// Status is the position of an assessment in its lifecycle.
type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusSubmitted  Status = "submitted"
)

// Open reports whether answers can still be changed.
func (s Status) Open() bool {
	return s == StatusInProgress || s == StatusCompleted
}

// Assessment is one questionnaire attempt by a company.
type Assessment struct {
	ID          string            `json:"id"`
	CompanyID   string            `json:"company_id"`
	General     scoring.Answers   `json:"general_answers"`
	Specific    scoring.Answers   `json:"specific_answers"`
	Uploads     map[string]Upload `json:"uploads"`
	Status      Status            `json:"status"`
	SubmittedAt *time.Time        `json:"submitted_at"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Upload describes evidence attached to a question. The blob itself lives
// in storage under StorageKey.
type Upload struct {
	QuestionID  string    `json:"question_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   *int      `json:"page_count"`
	StorageKey  string    `json:"storage_key"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// SaveCommand replaces the answers of the open assessment. Submit moves it
// to submitted; otherwise it becomes completed.
type SaveCommand struct {
	General  scoring.Answers `json:"general"`
	Specific scoring.Answers `json:"specific"`
	Submit   bool            `json:"submit"`
}

// File is an evidence upload received with a save.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Evidence stores uploaded files for a question and records them on the
// open assessment.
type Evidence interface {
	Store(ctx context.Context, companyID, questionID string, f File) (*Upload, error)
}
