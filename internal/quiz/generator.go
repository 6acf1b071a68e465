package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/navanthiga/videdu/internal/llm"
)

// GeneratorConfig controls question generation.
type GeneratorConfig struct {
	NumQuestions int
	Categories   []string
	MaxTokens    int
	Timeout      time.Duration
}

// DefaultGeneratorConfig mirrors the original assessment setup: seven
// questions spread over four fixed categories.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		NumQuestions: 7,
		Categories:   []string{"Basic Concepts", "Application", "Advanced Concepts", "Problem Solving"},
		MaxTokens:    2048,
		Timeout:      30 * time.Second,
	}
}

// Generator turns a learner-supplied topic into parsed questions by
// prompting the LLM question source and running its free-text reply
// through Parse.
type Generator struct {
	provider llm.Provider
	cfg      GeneratorConfig
}

func NewGenerator(provider llm.Provider, cfg GeneratorConfig) *Generator {
	if cfg.NumQuestions <= 0 {
		cfg = DefaultGeneratorConfig()
	}
	return &Generator{provider: provider, cfg: cfg}
}

// Generate calls the question source under a bounded timeout and parses
// whatever came back. A provider error is returned as-is (the source is
// unavailable); a successful call that parses to zero questions returns an
// empty slice and nil error — the caller decides how to surface that.
func (g *Generator) Generate(ctx context.Context, topic string) ([]Question, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	resp, err := g.provider.Generate(ctx, llm.Request{
		Prompt:    g.buildPrompt(topic),
		MaxTokens: g.cfg.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("question source: %w", err)
	}
	return Parse(resp.Text, DefaultCategory), nil
}

func (g *Generator) buildPrompt(topic string) string {
	return fmt.Sprintf(
		"Generate %d multiple-choice questions on the topic: %s. "+
			"Each question should belong to one of these categories: %s. "+
			"Format each question on a single line as: "+
			"'Q: <question>? Category: <category> | Options: A) <option1> | B) <option2> | C) <option3> | D) <option4>. Answer: <correct letter>'.",
		g.cfg.NumQuestions, topic, strings.Join(g.cfg.Categories, ", "))
}
