package progress

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/navanthiga/videdu/internal/db"
	"github.com/navanthiga/videdu/internal/quiz"
)

func openTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	dbh, err := db.Open(context.Background(), db.DriverSQLite,
		"file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })
	return dbh
}

func TestRegisterAndAuthenticate(t *testing.T) {
	store := NewStore(openTestDB(t, "progress_auth"))
	ctx := context.Background()

	id, err := store.Register(ctx, "navya", "navya@example.com", "hunter22", "Navya T")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id == 0 {
		t.Fatal("zero user id")
	}

	if _, err := store.Register(ctx, "navya", "other@example.com", "pw123456", ""); !errors.Is(err, ErrUserExists) {
		t.Errorf("duplicate username err = %v", err)
	}

	u, err := store.Authenticate(ctx, "navya", "hunter22")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.ID != id || u.Email != "navya@example.com" || u.FullName != "Navya T" {
		t.Errorf("user = %+v", u)
	}

	if _, err := store.Authenticate(ctx, "navya", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password err = %v", err)
	}
	if _, err := store.Authenticate(ctx, "ghost", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v", err)
	}

	// Login must land in the activity feed.
	feed, err := store.RecentActivities(ctx, id, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(feed) != 1 || feed[0].Type != "login" {
		t.Errorf("feed = %+v", feed)
	}
}

func TestLogVideoWatchedUpsert(t *testing.T) {
	store := NewStore(openTestDB(t, "progress_videos"))
	ctx := context.Background()
	id, err := store.Register(ctx, "u1", "u1@example.com", "pw123456", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := store.LogVideoWatched(ctx, id, "Loops", 40); err != nil {
		t.Fatal(err)
	}
	if err := store.LogVideoWatched(ctx, id, "Loops", 90); err != nil {
		t.Fatal(err)
	}
	if err := store.LogVideoWatched(ctx, id, "Loops", 70); err != nil {
		t.Fatal(err)
	}

	videos, err := store.WatchedVideos(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(videos) != 1 {
		t.Fatalf("videos = %+v, want single upserted row", videos)
	}
	v := videos[0]
	if v.WatchCount != 3 {
		t.Errorf("watch count = %d, want 3", v.WatchCount)
	}
	if v.Completion != 90 {
		t.Errorf("completion = %v, want highest seen (90)", v.Completion)
	}
}

func TestLogQuizAttemptAndProgress(t *testing.T) {
	store := NewStore(openTestDB(t, "progress_attempts"))
	ctx := context.Background()
	id, err := store.Register(ctx, "u1", "u1@example.com", "pw123456", "")
	if err != nil {
		t.Fatal(err)
	}

	rec := quiz.AttemptRecord{
		UserID:         "1",
		Topic:          "Loops",
		Score:          3,
		TotalQuestions: 4,
		Data: quiz.AttemptData{
			Questions:  map[string]quiz.Question{"0": {Text: "q?"}},
			Answers:    map[string]string{"0": "a"},
			Categories: map[string]string{"0": "Basic"},
			TimeTaken:  map[string]float64{"0": 9.5},
		},
	}
	if err := store.LogQuizAttempt(ctx, rec); err != nil {
		t.Fatalf("log attempt: %v", err)
	}
	rec.Score = 1
	if err := store.LogQuizAttempt(ctx, rec); err != nil {
		t.Fatal(err)
	}

	p, err := store.GetUserProgress(ctx, id)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if len(p.QuizScores) != 1 {
		t.Fatalf("quiz scores = %+v", p.QuizScores)
	}
	ts := p.QuizScores[0]
	if ts.Topic != "Loops" || ts.Attempts != 2 || ts.BestScore != 3 {
		t.Errorf("topic score = %+v", ts)
	}
	if ts.AvgScorePct != 50 { // (75 + 25) / 2
		t.Errorf("avg pct = %v, want 50", ts.AvgScorePct)
	}

	attempts, err := store.QuizAttempts(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(attempts) != 2 {
		t.Fatalf("attempts = %+v", attempts)
	}

	data, err := store.AttemptData(ctx, id, attempts[0].ID)
	if err != nil {
		t.Fatalf("attempt data: %v", err)
	}
	if data.Answers["0"] != "a" || data.TimeTaken["0"] != 9.5 {
		t.Errorf("round-tripped data = %+v", data)
	}
}

func TestLogQuizAttemptBadUserID(t *testing.T) {
	store := NewStore(openTestDB(t, "progress_badid"))
	err := store.LogQuizAttempt(context.Background(), quiz.AttemptRecord{UserID: "not-a-number"})
	if err == nil {
		t.Fatal("expected error for non-numeric user id")
	}
}

func TestGetUserStats(t *testing.T) {
	store := NewStore(openTestDB(t, "progress_stats"))
	ctx := context.Background()
	id, err := store.Register(ctx, "u1", "u1@example.com", "pw123456", "")
	if err != nil {
		t.Fatal(err)
	}

	stats, err := store.GetUserStats(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if stats.XP != 0 || stats.Level != 1 || len(stats.Badges) != 0 {
		t.Errorf("fresh stats = %+v", stats)
	}

	mustLog := func(typ string, details any) {
		t.Helper()
		if err := store.LogActivity(ctx, id, typ, details); err != nil {
			t.Fatal(err)
		}
	}
	mustLog("challenge_completed", map[string]any{"xp_earned": 150})
	mustLog("daily_challenge_completed", map[string]any{"xp_earned": 75})
	mustLog("badge_earned", map[string]any{"badge_id": "first_steps"})
	mustLog("badge_earned", map[string]any{"badge_id": "first_steps"}) // dup ignored
	mustLog("video_watched", map[string]any{"topic": "Loops"})         // no XP

	stats, err = store.GetUserStats(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if stats.XP != 225 {
		t.Errorf("xp = %d, want 225", stats.XP)
	}
	if stats.Level != 3 { // 1 + 225/100
		t.Errorf("level = %d, want 3", stats.Level)
	}
	if len(stats.Badges) != 1 || stats.Badges[0] != "first_steps" {
		t.Errorf("badges = %v", stats.Badges)
	}
}
