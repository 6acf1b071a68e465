package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/navanthiga/videdu/internal/llm"
)

const twoQuestionText = "Q: first? Options: A) a1 | B) b1 | C) c1 | D) d1 Answer: A\n" +
	"Q: second? Options: A) a2 | B) b2 | C) c2 | D) d2 Answer: B\n"

type captureSink struct {
	records []AttemptRecord
	err     error
}

func (c *captureSink) LogQuizAttempt(_ context.Context, rec AttemptRecord) error {
	c.records = append(c.records, rec)
	return c.err
}

func newTestService(t *testing.T, mock *llm.MockProvider, sink AttemptSink) *Service {
	t.Helper()
	return NewService(NewGenerator(mock, DefaultGeneratorConfig()), sink)
}

func TestServiceStart(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Text: twoQuestionText})
	svc := newTestService(t, mock, nil)

	sess, err := svc.Start(context.Background(), "1", "Python")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(sess.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(sess.Questions))
	}
	if sess.Topic != "Python" {
		t.Errorf("topic = %q", sess.Topic)
	}

	got, err := svc.Get("1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != sess {
		t.Error("get returned a different session")
	}
}

func TestServiceStartNoQuestions(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Text: "nothing parseable here"})
	svc := newTestService(t, mock, nil)

	_, err := svc.Start(context.Background(), "1", "Python")
	if !errors.Is(err, ErrNoQuestionsGenerated) {
		t.Fatalf("err = %v, want ErrNoQuestionsGenerated", err)
	}
	if _, err := svc.Get("1"); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("failed start left a session behind: %v", err)
	}
}

func TestServiceStartProviderDown(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> provider unavailable
	svc := newTestService(t, mock, nil)

	_, err := svc.Start(context.Background(), "1", "Python")
	if err == nil {
		t.Fatal("expected provider error")
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("err = %v, want wrapped ErrProviderUnavailable", err)
	}
}

func TestServiceCompletionPersistsAttempt(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Text: twoQuestionText})
	sink := &captureSink{}
	svc := newTestService(t, mock, sink)

	ctx := context.Background()
	if _, err := svc.Start(ctx, "42", "Python"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordAnswer("42", 0, "a1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Submit(ctx, "42", 0, 5); err != nil {
		t.Fatal(err)
	}
	if len(sink.records) != 0 {
		t.Fatal("attempt persisted before completion")
	}

	if _, err := svc.RecordAnswer("42", 1, "c2"); err != nil {
		t.Fatal(err)
	}
	sess, err := svc.Submit(ctx, "42", 1, 7.5)
	if err != nil {
		t.Fatal(err)
	}
	if !sess.Completed {
		t.Fatal("session not completed")
	}

	if len(sink.records) != 1 {
		t.Fatalf("records = %d, want 1", len(sink.records))
	}
	rec := sink.records[0]
	if rec.UserID != "42" || rec.Topic != "Python" {
		t.Errorf("record identity = %+v", rec)
	}
	if rec.Score != 1 || rec.TotalQuestions != 2 {
		t.Errorf("score = %d/%d, want 1/2", rec.Score, rec.TotalQuestions)
	}
	if rec.Data.Answers["0"] != "a1" || rec.Data.Answers["1"] != "c2" {
		t.Errorf("answers = %v", rec.Data.Answers)
	}
	if rec.Data.TimeTaken["1"] != 7.5 {
		t.Errorf("time taken = %v", rec.Data.TimeTaken)
	}
	if len(rec.Data.Questions) != 2 || len(rec.Data.Categories) != 2 {
		t.Errorf("data shape: %d questions, %d categories", len(rec.Data.Questions), len(rec.Data.Categories))
	}
}

func TestServiceSinkFailureDoesNotFailSubmit(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Text: "Q: only? Options: A) a | B) b | C) c | D) d Answer: A"})
	sink := &captureSink{err: errors.New("db down")}
	svc := newTestService(t, mock, sink)

	ctx := context.Background()
	if _, err := svc.Start(ctx, "1", "Python"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordAnswer("1", 0, "a"); err != nil {
		t.Fatal(err)
	}
	sess, err := svc.Submit(ctx, "1", 0, 0)
	if err != nil {
		t.Fatalf("submit failed on sink error: %v", err)
	}
	if !sess.Completed {
		t.Error("session should complete despite sink failure")
	}
}

func TestServiceRestart(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Text: twoQuestionText})
	svc := newTestService(t, mock, nil)

	if _, err := svc.Start(context.Background(), "1", "Python"); err != nil {
		t.Fatal(err)
	}
	svc.Restart("1")
	sess, err := svc.Get("1")
	if err != nil {
		t.Fatal(err)
	}
	if sess.State() != StateIdle {
		t.Errorf("state after restart = %q, want idle", sess.State())
	}
}
