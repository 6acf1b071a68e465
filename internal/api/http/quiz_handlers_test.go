package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/navanthiga/videdu/internal/auth"
	"github.com/navanthiga/videdu/internal/llm"
	"github.com/navanthiga/videdu/internal/quiz"
)

const quizText = "Q: first? Options: A) a1 | B) b1 | C) c1 | D) d1 Answer: A\n" +
	"Q: second? Options: A) a2 | B) b2 | C) c2 | D) d2 Answer: B\n"

func testRouter(t *testing.T, mock *llm.MockProvider) http.Handler {
	t.Helper()
	svc := quiz.NewService(quiz.NewGenerator(mock, quiz.DefaultGeneratorConfig()), nil)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := auth.WithUser(req.Context(), "1", "tester")
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Post("/quiz/start", StartQuizHandler(svc))
	r.Get("/quiz", QuizStateHandler(svc))
	r.Post("/quiz/answer", RecordAnswerHandler(svc))
	r.Post("/quiz/submit", SubmitAnswerHandler(svc))
	r.Get("/quiz/results", QuizResultsHandler(svc))
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestQuizFlowHidesAnswersUntilComplete(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: quizText})
	h := testRouter(t, mock)

	rr := doJSON(t, h, "POST", "/quiz/start", `{"topic":"Python"}`)
	if rr.Code != 200 {
		t.Fatalf("start status = %d: %s", rr.Code, rr.Body)
	}
	var started quiz.Session
	if err := json.Unmarshal(rr.Body.Bytes(), &started); err != nil {
		t.Fatal(err)
	}
	if len(started.Questions) != 2 {
		t.Fatalf("questions = %d", len(started.Questions))
	}
	for i, q := range started.Questions {
		if q.CorrectAnswer != "" {
			t.Errorf("question %d leaked answer key %q", i, q.CorrectAnswer)
		}
	}

	// Answer and submit both questions.
	for i, opt := range []string{"a1", "c2"} {
		body := `{"index":` + strconv.Itoa(i) + `,"option":"` + opt + `"}`
		if rr := doJSON(t, h, "POST", "/quiz/answer", body); rr.Code != 200 {
			t.Fatalf("answer %d status = %d: %s", i, rr.Code, rr.Body)
		}
		if rr := doJSON(t, h, "POST", "/quiz/submit", `{"index":`+strconv.Itoa(i)+`,"seconds":3}`); rr.Code != 200 {
			t.Fatalf("submit %d status = %d: %s", i, rr.Code, rr.Body)
		}
	}

	rr = doJSON(t, h, "GET", "/quiz/results", "")
	if rr.Code != 200 {
		t.Fatalf("results status = %d: %s", rr.Code, rr.Body)
	}
	var results struct {
		Session  quiz.Session `json:"session"`
		Feedback string       `json:"feedback"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &results); err != nil {
		t.Fatal(err)
	}
	if results.Session.Score != 1 {
		t.Errorf("score = %d, want 1", results.Session.Score)
	}
	if results.Session.Questions[0].CorrectAnswer == "" {
		t.Error("completed session should reveal answer keys")
	}
	if results.Feedback == "" {
		t.Error("missing feedback text")
	}
}

func TestSubmitWithoutAnswerIsBadRequest(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: quizText})
	h := testRouter(t, mock)

	if rr := doJSON(t, h, "POST", "/quiz/start", `{"topic":"Python"}`); rr.Code != 200 {
		t.Fatal(rr.Code)
	}
	rr := doJSON(t, h, "POST", "/quiz/submit", `{"index":0}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestQuizStateWithoutSession(t *testing.T) {
	h := testRouter(t, llm.NewMockProvider())
	rr := doJSON(t, h, "GET", "/quiz", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestStartWithProviderDownIsBadGateway(t *testing.T) {
	h := testRouter(t, llm.NewMockProvider()) // empty queue
	rr := doJSON(t, h, "POST", "/quiz/start", `{"topic":"Python"}`)
	if rr.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rr.Code)
	}
}

func TestResultsBeforeCompletion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: quizText})
	h := testRouter(t, mock)
	if rr := doJSON(t, h, "POST", "/quiz/start", `{"topic":"Python"}`); rr.Code != 200 {
		t.Fatal(rr.Code)
	}
	rr := doJSON(t, h, "GET", "/quiz/results", "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}
