package quiz

import "sort"

// Strength/weakness thresholds, percent correct per category.
const (
	strengthThresholdPct = 75
	weaknessThresholdPct = 50
)

// Analyze buckets the session's questions by category and classifies each
// category: >= 75% correct is a strength, < 50% a weakness, in between is
// neither. Unanswered questions count against the category. Strengths and
// weaknesses come back sorted for stable output.
func Analyze(s *Session) (performance map[string]CategoryStats, strengths, weaknesses []string) {
	performance = map[string]CategoryStats{}
	for i, q := range s.Questions {
		category := q.Category
		if category == "" {
			category = DefaultCategory
		}
		stats := performance[category]
		stats.Total++
		if answer, ok := s.Answers[i]; ok && answer == q.CorrectAnswer {
			stats.Correct++
		}
		performance[category] = stats
	}

	for category, stats := range performance {
		pct := stats.ScorePct()
		switch {
		case pct >= strengthThresholdPct:
			strengths = append(strengths, category)
		case pct < weaknessThresholdPct:
			weaknesses = append(weaknesses, category)
		}
	}
	sort.Strings(strengths)
	sort.Strings(weaknesses)
	return performance, strengths, weaknesses
}
