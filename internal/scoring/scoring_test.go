package scoring_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/JaimeStill/sustainassess/internal/scoring"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		answer   scoring.Answer
		industry bool
		want     int
	}{
		{"yes", scoring.Text("Yes"), false, 2},
		{"case insensitive", scoring.Text("RENEWABLE sources"), false, 2},
		{"energy efficient", scoring.Text("Energy-efficient equipment"), false, 2},
		{"in development", scoring.Text("In development"), false, 1},
		{"planning", scoring.Text("Planning phase"), false, 1},
		{"no signal", scoring.Text("Standard disposal"), false, 0},
		{"empty", scoring.Text(""), false, 0},
		{"high range general", scoring.Text("61-80%"), false, 0},
		{"high range industry", scoring.Text("61-80%"), true, 2},
		{"top range industry", scoring.Text("81-100%"), true, 2},
		{"mid range industry", scoring.Text("41-60%"), true, 1},
		{"low mid range industry", scoring.Text("21-40%"), true, 1},
		{"low range industry", scoring.Text("0-20%"), true, 0},
		{"multi empty", scoring.MultiSelect(), false, 0},
		{"multi none", scoring.MultiSelect("None"), false, 0},
		{"multi one", scoring.MultiSelect("ISO 14001"), false, 1},
		{"multi two", scoring.MultiSelect("ISO 14001", "ISO 9001"), false, 1},
		{"multi three", scoring.MultiSelect("ISO 14001", "ISO 9001", "SA 8000"), false, 2},
		{"multi none ignored", scoring.MultiSelect("ISO 14001", "None", "ISO 9001", "SA 8000"), false, 2},
		{"multi none leading", scoring.MultiSelect("None", "ISO 14001", "ISO 9001", "SA 8000"), false, 2},
		{"multi none with one", scoring.MultiSelect("None", "ISO 14001"), false, 1},
		{"multi none repeated", scoring.MultiSelect("None", "None"), false, 0},
		{"zero value", scoring.Answer{}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoring.Score(tt.answer, tt.industry)
			if got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
			if again := scoring.Score(tt.answer, tt.industry); again != got {
				t.Errorf("Score not stable: %d then %d", got, again)
			}
		})
	}
}

func TestQuality(t *testing.T) {
	if scoring.Quality(2) != scoring.QualityHigh ||
		scoring.Quality(1) != scoring.QualityMedium ||
		scoring.Quality(0) != scoring.QualityBasic {
		t.Error("quality mapping mismatch")
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("manufacturing with policy and recycling", func(t *testing.T) {
		general := scoring.Answers{
			{Key: "sustainability_policy", Answer: scoring.Text("Yes")},
			{Key: "waste_management", Answer: scoring.Text("Recycling program")},
			{Key: "company_size", Answer: scoring.Text("51-200 employees")},
		}
		industry := scoring.Answers{
			{Key: "energy_efficiency", Answer: scoring.Text("High efficiency")},
		}

		ev := scoring.Evaluate(general, industry, "Manufacturing")

		if ev.Score != 75 {
			t.Errorf("score = %d, want 75", ev.Score)
		}
		wantStrengths := []string{scoring.StrengthPolicy, scoring.StrengthWaste}
		if !slices.Equal(ev.Strengths, wantStrengths) {
			t.Errorf("strengths = %v", ev.Strengths)
		}
		if len(ev.WeakAreas) != 0 {
			t.Errorf("weak areas = %v, want none", ev.WeakAreas)
		}
		if ev.IndustryObservations != "As a Manufacturing company, specific attention should be paid to industry-standard sustainability practices and regulatory compliance." {
			t.Errorf("observations = %q", ev.IndustryObservations)
		}
		if len(ev.Recommendations) != 4 || ev.Recommendations[0] != "Implement regular sustainability audits" {
			t.Errorf("recommendations = %v", ev.Recommendations)
		}
	})

	t.Run("no answers", func(t *testing.T) {
		ev := scoring.Evaluate(nil, nil, "Retail")
		if ev.Score != 0 {
			t.Errorf("score = %d, want 0", ev.Score)
		}
		want := []string{scoring.WeakPolicy, scoring.WeakOverallScore}
		if !slices.Equal(ev.WeakAreas, want) {
			t.Errorf("weak areas = %v, want %v", ev.WeakAreas, want)
		}
		if ev.Strengths == nil {
			t.Error("strengths should be an empty list, not nil")
		}
	})

	t.Run("policy in development is a weak area", func(t *testing.T) {
		general := scoring.Answers{{Key: "sustainability_policy", Answer: scoring.Text("In development")}}
		ev := scoring.Evaluate(general, nil, "Finance")
		if ev.Score != 50 {
			t.Errorf("score = %d, want 50", ev.Score)
		}
		if !slices.Equal(ev.WeakAreas, []string{scoring.WeakPolicy}) {
			t.Errorf("weak areas = %v", ev.WeakAreas)
		}
	})
}

func TestComplianceScoreBounds(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for p := 0; p <= 2*n; p++ {
			s := scoring.ComplianceScore(p, n)
			if s < 0 || s > 100 {
				t.Fatalf("ComplianceScore(%d, %d) = %d out of range", p, n, s)
			}
		}
	}
	if scoring.ComplianceScore(6, 4) != 75 {
		t.Error("ComplianceScore(6, 4) != 75")
	}
}

func TestAnalyze(t *testing.T) {
	general := scoring.Answers{
		{Key: "sustainability_policy", Answer: scoring.Text("Yes")},
		{Key: "energy_sources", Answer: scoring.MultiSelect("Solar")},
		{Key: "company_size", Answer: scoring.Text("1-10 employees")},
	}
	industry := scoring.Answers{
		{Key: "renewable_energy_percentage", Answer: scoring.Text("41-60%")},
	}

	a := scoring.Analyze(general, industry)

	if a.TotalQuestions != 4 || a.TotalGeneral != 3 || a.TotalIndustry != 1 {
		t.Errorf("totals = %+v", a)
	}
	want := scoring.QualityBreakdown{High: 1, Medium: 2, Basic: 1}
	if a.Quality != want {
		t.Errorf("quality = %+v, want %+v", a.Quality, want)
	}
	if a.Categories[0].Count != 3 || a.Categories[1].Name != scoring.CategoryIndustry {
		t.Errorf("categories = %+v", a.Categories)
	}
}

func TestAnswersJSON(t *testing.T) {
	raw := `{"z_last":"Yes","a_first":["ISO 14001","None"],"m_mid":"Partial"}`

	var answers scoring.Answers
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	keys := make([]string, len(answers))
	for i, e := range answers {
		keys[i] = e.Key
	}
	if !slices.Equal(keys, []string{"z_last", "a_first", "m_mid"}) {
		t.Errorf("order = %v", keys)
	}

	multi, _ := answers.Get("a_first")
	if multi.Kind() != scoring.KindMultiSelect || multi.String() != "ISO 14001, None" {
		t.Errorf("multi = %v", multi)
	}

	out, err := json.Marshal(answers)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != raw {
		t.Errorf("marshal = %s, want %s", out, raw)
	}

	if err := json.Unmarshal([]byte(`[1,2]`), &answers); err == nil {
		t.Error("expected error for non-object")
	}
}

func TestAnswersSet(t *testing.T) {
	var a scoring.Answers
	a.Set("q1", scoring.Text("one"))
	a.Set("q2", scoring.Text("two"))
	a.Set("q1", scoring.Text("uno"))

	if len(a) != 2 {
		t.Fatalf("len = %d", len(a))
	}
	if got, _ := a.Get("q1"); got.Value() != "uno" {
		t.Errorf("q1 = %q", got.Value())
	}
}
