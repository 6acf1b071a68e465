package quiz

import (
	"reflect"
	"testing"
)

func categorized(cat string, n int) []Question {
	qs := testQuestions(n)
	for i := range qs {
		qs[i].Category = cat
	}
	return qs
}

func TestAnalyzeBucketsAndThresholds(t *testing.T) {
	// Basic: 2/2 correct (strength), Advanced: 1/2 (neither),
	// Problem Solving: 0/2 (weakness).
	questions := append(categorized("Basic", 2),
		append(categorized("Advanced", 2), categorized("Problem Solving", 2)...)...)
	s := NewSession("Python", questions)
	s.Answers[0] = "right"
	s.Answers[1] = "right"
	s.Answers[2] = "right"
	s.Answers[3] = "w1"
	// 4 and 5 unanswered

	performance, strengths, weaknesses := Analyze(s)

	if got := performance["Basic"]; got.Correct != 2 || got.Total != 2 {
		t.Errorf("Basic = %+v", got)
	}
	if got := performance["Advanced"]; got.Correct != 1 || got.Total != 2 {
		t.Errorf("Advanced = %+v", got)
	}
	if got := performance["Problem Solving"]; got.Correct != 0 || got.Total != 2 {
		t.Errorf("Problem Solving = %+v", got)
	}

	if !reflect.DeepEqual(strengths, []string{"Basic"}) {
		t.Errorf("strengths = %v", strengths)
	}
	if !reflect.DeepEqual(weaknesses, []string{"Problem Solving"}) {
		t.Errorf("weaknesses = %v", weaknesses)
	}
}

func TestAnalyzeExactBoundaries(t *testing.T) {
	// Exactly 75% is a strength.
	s := NewSession("Python", categorized("A", 4))
	for i := 0; i < 3; i++ {
		s.Answers[i] = "right"
	}
	_, strengths, weaknesses := Analyze(s)
	if len(strengths) != 1 || strengths[0] != "A" {
		t.Errorf("75%% should be a strength, got strengths=%v weaknesses=%v", strengths, weaknesses)
	}

	// Exactly 50% is neither.
	s2 := NewSession("Python", categorized("B", 2))
	s2.Answers[0] = "right"
	_, strengths2, weaknesses2 := Analyze(s2)
	if len(strengths2) != 0 || len(weaknesses2) != 0 {
		t.Errorf("50%% should be neutral, got strengths=%v weaknesses=%v", strengths2, weaknesses2)
	}
}

func TestAnalyzeEmptyCategoryDefaults(t *testing.T) {
	qs := testQuestions(1)
	qs[0].Category = ""
	s := NewSession("Python", qs)
	performance, _, _ := Analyze(s)
	if _, ok := performance[DefaultCategory]; !ok {
		t.Errorf("empty category not bucketed under %q: %v", DefaultCategory, performance)
	}
}

func TestCategoryStatsScorePct(t *testing.T) {
	if got := (CategoryStats{Correct: 1, Total: 3}).ScorePct(); got < 33.3 || got > 33.4 {
		t.Errorf("ScorePct = %v", got)
	}
	if got := (CategoryStats{}).ScorePct(); got != 0 {
		t.Errorf("empty ScorePct = %v, want 0", got)
	}
}
