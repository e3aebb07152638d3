package questions_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/sustainassess/internal/questions"
	"github.com/JaimeStill/sustainassess/pkg/routes"
	"github.com/JaimeStill/sustainassess/pkg/storage"
	"github.com/JaimeStill/sustainassess/pkg/validation"
)

func newSystem() (questions.System, *storage.Memory) {
	store := storage.NewMemory()
	return questions.New(store, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func TestDefaults(t *testing.T) {
	general := questions.DefaultGeneral()
	if len(general) != 7 || general[0].ID != "company_size" {
		t.Fatalf("general defaults = %d questions, first %q", len(general), general[0].ID)
	}

	for _, industry := range []string{"Manufacturing", "IT/Technology", "Transportation", "Other"} {
		qs, ok := questions.DefaultIndustry(industry)
		if !ok || len(qs) != 3 {
			t.Errorf("%s defaults = %d (ok %v)", industry, len(qs), ok)
		}
	}

	if _, ok := questions.DefaultIndustry("Education"); ok {
		t.Error("Education should have no built-in set")
	}

	general[0].Options[0] = "changed"
	if questions.DefaultGeneral()[0].Options[0] == "changed" {
		t.Error("defaults mutated through a returned copy")
	}
}

func TestLoadFallsBackToOther(t *testing.T) {
	sys, _ := newSystem()
	ctx := context.Background()

	set, err := sys.Load(ctx, "Education")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if set.Industry != "Other" || set.Specific[0].ID != "industry_specific_1" {
		t.Errorf("set = %s / %v", set.Industry, set.Specific)
	}

	set, err = sys.Load(ctx, "Retail")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if set.Industry != "Retail" || set.Specific[0].ID != "packaging_materials" {
		t.Errorf("set = %s / %v", set.Industry, set.Specific)
	}
}

func TestAddAssignsNextID(t *testing.T) {
	sys, store := newSystem()
	ctx := context.Background()

	add := func(kind questions.Kind, industry string) *questions.Question {
		t.Helper()
		q, err := sys.Add(ctx, questions.AddCommand{
			Kind:     kind,
			Industry: industry,
			Question: questions.Question{Type: questions.TypeText, Question: "Describe your water reuse."},
		})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		return q
	}

	if got := add(questions.KindGeneral, "").ID; got != "GQ1" {
		t.Errorf("first general id = %s", got)
	}
	if got := add(questions.KindGeneral, "").ID; got != "GQ2" {
		t.Errorf("second general id = %s", got)
	}
	if got := add(questions.KindIndustry, "Education").ID; got != "IQ1" {
		t.Errorf("industry id = %s", got)
	}

	general, _ := sys.General(ctx)
	if len(general) != 9 {
		t.Errorf("general count = %d, want defaults plus two", len(general))
	}

	if ok, _ := store.Exists(ctx, "questions/general.json"); !ok {
		t.Error("general set not written to storage")
	}
	if ok, _ := store.Exists(ctx, "questions/industries/Education.json"); !ok {
		t.Error("industry set not written to storage")
	}

	set, _ := sys.Load(ctx, "Education")
	if set.Industry != "Education" || len(set.Specific) != 1 {
		t.Errorf("education set = %s / %d", set.Industry, len(set.Specific))
	}
}

func TestAddRequiresDocument(t *testing.T) {
	sys, _ := newSystem()

	q, err := sys.Add(context.Background(), questions.AddCommand{
		Kind:             questions.KindIndustry,
		Industry:         "IT/Technology",
		Question:         questions.Question{Type: questions.TypeText, Question: "Upload your e-waste certificate."},
		RequiresDocument: true,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if q.Type != questions.TypeFileUpload || !q.RequiresDocument {
		t.Errorf("question = %+v", q)
	}
	if q.ID != "IQ1" {
		t.Errorf("id = %s", q.ID)
	}
}

func TestAddValidation(t *testing.T) {
	sys, _ := newSystem()
	ctx := context.Background()

	tests := []struct {
		name    string
		cmd     questions.AddCommand
		wantErr error
	}{
		{
			name:    "unknown kind",
			cmd:     questions.AddCommand{Kind: "niche", Question: questions.Question{Type: questions.TypeText, Question: "x"}},
			wantErr: validation.ErrInvalid,
		},
		{
			name:    "choice without options",
			cmd:     questions.AddCommand{Kind: questions.KindGeneral, Question: questions.Question{Type: questions.TypeRadio, Question: "Pick one"}},
			wantErr: validation.ErrInvalid,
		},
		{
			name:    "bad type",
			cmd:     questions.AddCommand{Kind: questions.KindGeneral, Question: questions.Question{Type: "slider", Question: "How much?"}},
			wantErr: validation.ErrInvalid,
		},
		{
			name:    "unknown industry",
			cmd:     questions.AddCommand{Kind: questions.KindIndustry, Industry: "Mining", Question: questions.Question{Type: questions.TypeText, Question: "x"}},
			wantErr: questions.ErrUnknownIndustry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sys.Add(ctx, tt.cmd)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateAndRemove(t *testing.T) {
	sys, _ := newSystem()
	ctx := context.Background()

	updated, err := sys.Update(ctx, questions.KindIndustry, "Finance", "paperless_operations", questions.Question{
		Type:     questions.TypeText,
		Question: "How much paper do you use?",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != "paperless_operations" {
		t.Errorf("id = %s", updated.ID)
	}

	if err := sys.Remove(ctx, questions.KindIndustry, "Finance", "digital_transformation"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	qs, _ := sys.Industry(ctx, "Finance")
	if len(qs) != 2 || qs[1].Question != "How much paper do you use?" {
		t.Errorf("finance set = %+v", qs)
	}

	if err := sys.Remove(ctx, questions.KindGeneral, "", "missing"); !errors.Is(err, questions.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestReplaceRejectsDuplicates(t *testing.T) {
	sys, _ := newSystem()

	_, err := sys.ReplaceGeneral(context.Background(), []questions.Question{
		{ID: "GQ1", Type: questions.TypeText, Question: "a"},
		{ID: "GQ1", Type: questions.TypeText, Question: "b"},
	})
	if !errors.Is(err, validation.ErrInvalid) {
		t.Errorf("err = %v", err)
	}
}

func TestNextID(t *testing.T) {
	qs := []questions.Question{{ID: "GQ3"}, {ID: "IQ9"}, {ID: "company_size"}, {ID: "GQ12"}}

	if got := questions.NextID(questions.KindGeneral, qs); got != "GQ13" {
		t.Errorf("general = %s", got)
	}
	if got := questions.NextID(questions.KindIndustry, qs); got != "IQ10" {
		t.Errorf("industry = %s", got)
	}
	if got := questions.NextID(questions.KindIndustry, nil); got != "IQ1" {
		t.Errorf("empty = %s", got)
	}
}

func TestHandler(t *testing.T) {
	sys, _ := newSystem()
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes())

	body, _ := json.Marshal(map[string]any{
		"type":     "industry",
		"industry": "IT/Technology",
		"question": map[string]any{"type": "radio", "question": "Green hosting?", "options": []string{"Yes", "No"}},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/questions", bytes.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions/industries/IT%2FTechnology", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	var qs []questions.Question
	if err := json.NewDecoder(rec.Body).Decode(&qs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(qs) != 4 || qs[3].ID != "IQ1" {
		t.Errorf("industry set = %+v", qs)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/questions/general/company_size", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/questions/general", strings.NewReader(`{"questions":[{"id":"GQ1","type":"checkbox","question":"x"}]}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("replace status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions/industries/Mining", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown industry status = %d", rec.Code)
	}
}
