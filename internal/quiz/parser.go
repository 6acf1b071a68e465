package quiz

import (
	"log"
	"strings"
)

const (
	markerQuestion = "Q:"
	markerCategory = "Category:"
	markerOptions  = "Options:"
	markerAnswer   = "Answer:"
)

// Parse extracts question records from the raw text returned by the
// question source. The source emits one logical record per line in the
// form "Q: ... [Category: ...] Options: A) .. | B) .. | C) .. | D) .. Answer: X".
// Malformed records are skipped, never fatal: for fully unusable input an
// empty slice is returned and the caller decides what that means.
func Parse(raw, defaultCategory string) []Question {
	if defaultCategory == "" {
		defaultCategory = DefaultCategory
	}
	var out []Question
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		q, ok := parseLine(line, defaultCategory)
		if !ok {
			if strings.TrimSpace(line) != "" {
				log.Printf("quiz: skipping malformed question line: %.80q", line)
			}
			continue
		}
		out = append(out, q)
	}
	return out
}

func parseLine(line, defaultCategory string) (Question, bool) {
	if !strings.Contains(line, markerQuestion) ||
		!strings.Contains(line, markerOptions) ||
		!strings.Contains(line, markerAnswer) {
		return Question{}, false
	}

	oi := strings.Index(line, markerOptions)
	head := line[:oi]
	rest := line[oi+len(markerOptions):]

	// Category sits between the question and the options when present.
	category := defaultCategory
	if ci := strings.Index(head, markerCategory); ci >= 0 {
		category = cleanCategory(head[ci+len(markerCategory):])
		head = head[:ci]
		if category == "" {
			category = defaultCategory
		}
	}

	ai := strings.Index(rest, markerAnswer)
	if ai < 0 {
		return Question{}, false
	}
	optionsPart := rest[:ai]
	answerPart := strings.TrimSpace(rest[ai+len(markerAnswer):])

	text := strings.TrimSpace(strings.Replace(head, markerQuestion, "", 1))
	if text == "" {
		return Question{}, false
	}

	options := splitOptions(optionsPart)
	if len(options) != 4 {
		return Question{}, false
	}

	// The answer must be exactly one of the four letters. Anything else
	// ("C)", "c", the full option text) is a validation failure at the
	// external-data boundary: discard, never guess.
	idx := letterIndex(answerPart)
	if idx < 0 {
		return Question{}, false
	}

	return Question{
		Text:          text,
		Options:       options,
		CorrectAnswer: options[idx],
		Category:      category,
	}, true
}

// splitOptions splits the options segment on the pipe delimiter and strips
// "A)".."D)" prefixes. A segment without any pipe is unparseable: the
// whitespace fallback the source model sometimes invites mangles
// multi-word options, so those records are dropped instead.
func splitOptions(s string) []string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "|") {
		return nil
	}
	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) > 2 && p[0] >= 'A' && p[0] <= 'D' && p[1] == ')' {
			p = strings.TrimSpace(p[2:])
		}
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func letterIndex(answer string) int {
	if len(answer) != 1 {
		return -1
	}
	return strings.Index("ABCD", answer)
}

// cleanCategory trims whitespace plus the trailing pipe the prompt format
// leaves between "Category: X" and "Options:".
func cleanCategory(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "|")
	return strings.TrimSpace(s)
}
