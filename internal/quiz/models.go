package quiz

// DefaultCategory is assigned to questions whose source text carries no
// Category marker.
const DefaultCategory = "General"

// Question is a single parsed quiz item. Every Question emitted by the
// parser has exactly four options and a CorrectAnswer that is value-equal
// to one of them.
type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Category      string   `json:"category"`
}

// CategoryStats accumulates per-category correctness counts.
type CategoryStats struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// ScorePct is the percentage of correct answers in this category.
func (c CategoryStats) ScorePct() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Total) * 100
}

// AttemptData is the per-question detail handed off to storage when an
// assessment completes. Inner maps are keyed by the stringified question
// index to stay compatible with stored attempt history.
type AttemptData struct {
	Questions  map[string]Question `json:"questions"`
	Answers    map[string]string   `json:"answers"`
	Categories map[string]string   `json:"categories"`
	TimeTaken  map[string]float64  `json:"timeTaken"`
}

// AttemptRecord is the completed-assessment record persisted by an
// AttemptSink.
type AttemptRecord struct {
	UserID         string      `json:"user_id"`
	Topic          string      `json:"topic"`
	Score          int         `json:"score"`
	TotalQuestions int         `json:"total_questions"`
	Data           AttemptData `json:"data"`
}
