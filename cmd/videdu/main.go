package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/navanthiga/videdu/internal/api/http"
	"github.com/navanthiga/videdu/internal/auth"
	"github.com/navanthiga/videdu/internal/challenges"
	"github.com/navanthiga/videdu/internal/chat"
	"github.com/navanthiga/videdu/internal/config"
	"github.com/navanthiga/videdu/internal/db"
	"github.com/navanthiga/videdu/internal/forum"
	"github.com/navanthiga/videdu/internal/llm"
	"github.com/navanthiga/videdu/internal/peers"
	"github.com/navanthiga/videdu/internal/progress"
	"github.com/navanthiga/videdu/internal/quiz"
	"github.com/navanthiga/videdu/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	// --- Stores and services ---
	progressStore := progress.NewStore(dbh)
	forumStore := forum.NewStore(dbh)
	peerSvc := peers.NewService(dbh)
	challengeStore := challenges.NewStore(dbh, progressStore)
	if err := challengeStore.Seed(ctx); err != nil {
		log.Fatalf("challenge seed failed: %v", err)
	}

	// --- LLM ---
	provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv())
	if err != nil {
		log.Fatalf("llm provider: %v", err)
	}
	quizSvc := quiz.NewService(quiz.NewGenerator(provider, quiz.DefaultGeneratorConfig()), progressStore)
	assistant := chat.NewAssistant(provider, dbh, progressStore)

	// --- Video assets ---
	vs, err := storage.NewFSStore(cfg.VideoBasePath)
	if err != nil {
		log.Fatalf("video store: %v", err)
	}

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthHMACSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public
	r.Post("/auth/register", api.RegisterHandler(progressStore, authSvc))
	r.Post("/auth/login", api.LoginHandler(progressStore, authSvc))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	// Protected
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Get("/me", api.MeHandler(progressStore))

		// Adaptive quiz flow
		pr.Post("/quiz/start", api.StartQuizHandler(quizSvc))
		pr.Get("/quiz", api.QuizStateHandler(quizSvc))
		pr.Post("/quiz/answer", api.RecordAnswerHandler(quizSvc))
		pr.Post("/quiz/submit", api.SubmitAnswerHandler(quizSvc))
		pr.Get("/quiz/results", api.QuizResultsHandler(quizSvc))
		pr.Post("/quiz/restart", api.RestartQuizHandler(quizSvc))

		// Progress and gamification
		pr.Get("/progress", api.GetProgressHandler(progressStore))
		pr.Get("/stats", api.GetStatsHandler(progressStore))
		pr.Post("/videos/watched", api.LogVideoHandler(progressStore))
		pr.Get("/videos/watched", api.ListVideosHandler(progressStore))
		pr.Get("/attempts", api.ListAttemptsHandler(progressStore))
		pr.Get("/attempts/{attemptID}", api.AttemptDataHandler(progressStore))

		// Forum
		pr.Post("/forum/topics", api.CreateTopicHandler(forumStore))
		pr.Get("/forum/topics", api.ListTopicsHandler(forumStore))
		pr.Get("/forum/topics/popular", api.PopularTopicsHandler(forumStore))
		pr.Get("/forum/topics/mine", api.MyTopicsHandler(forumStore))
		pr.Get("/forum/topics/{topicID}", api.GetTopicHandler(forumStore))
		pr.Post("/forum/topics/{topicID}/posts", api.CreatePostHandler(forumStore))
		pr.Post("/forum/topics/{topicID}/posts/{postID}/solution", api.MarkSolutionHandler(forumStore))
		pr.Post("/forum/posts/{postID}/like", api.LikePostHandler(forumStore))
		pr.Delete("/forum/posts/{postID}/like", api.UnlikePostHandler(forumStore))

		// Peer learning
		pr.Get("/peers/match", api.MatchPeersHandler(peerSvc))
		pr.Post("/peers/groups", api.CreateGroupHandler(peerSvc))
		pr.Get("/peers/groups", api.ListGroupsHandler(peerSvc))
		pr.Post("/peers/groups/{groupID}/join", api.JoinGroupHandler(peerSvc))
		pr.Get("/peers/groups/{groupID}/members", api.GroupMembersHandler(peerSvc))

		// Coding challenges
		pr.Get("/challenges", api.ListChallengesHandler(challengeStore))
		pr.Get("/challenges/progress", api.ChallengeProgressHandler(challengeStore))
		pr.Get("/challenges/{challengeID}", api.GetChallengeHandler(challengeStore))
		pr.Post("/challenges/{challengeID}/attempt", api.AttemptChallengeHandler(challengeStore))
		pr.Post("/challenges/{challengeID}/complete", api.CompleteChallengeHandler(challengeStore))

		// Learning assistant
		pr.Post("/chat", api.AskHandler(assistant))
		pr.Get("/chat/history", api.ChatHistoryHandler(assistant))
		pr.Get("/chat/suggestions", api.SuggestTopicsHandler(assistant))

		// Video assets
		pr.Route("/videos/assets", func(ar chi.Router) {
			api.MountVideoAssets(ar, vs)
		})
	})

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
