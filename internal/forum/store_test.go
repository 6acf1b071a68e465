package forum

import (
	"context"
	"errors"
	"testing"

	"github.com/navanthiga/videdu/internal/db"
	"github.com/navanthiga/videdu/internal/progress"
)

func setup(t *testing.T, name string) (*Store, int64, int64) {
	t.Helper()
	dbh, err := db.Open(context.Background(), db.DriverSQLite,
		"file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })

	users := progress.NewStore(dbh)
	ctx := context.Background()
	alice, err := users.Register(ctx, "alice", "alice@example.com", "pw123456", "")
	if err != nil {
		t.Fatal(err)
	}
	bob, err := users.Register(ctx, "bob", "bob@example.com", "pw123456", "")
	if err != nil {
		t.Fatal(err)
	}
	return NewStore(dbh), alice, bob
}

func TestTopicLifecycle(t *testing.T) {
	store, alice, bob := setup(t, "forum_lifecycle")
	ctx := context.Background()

	id, err := store.CreateTopic(ctx, alice, "How do list comprehensions work?", "Confused by nesting", "Python", []string{"lists", "syntax"})
	if err != nil {
		t.Fatalf("create topic: %v", err)
	}

	topic, err := store.GetTopic(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if topic.Author != "alice" || topic.Category != "Python" {
		t.Errorf("topic = %+v", topic)
	}
	if len(topic.Tags) != 2 || topic.Tags[0] != "lists" {
		t.Errorf("tags = %v", topic.Tags)
	}

	postID, err := store.CreatePost(ctx, id, bob, "They nest left to right.", 0)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	replyID, err := store.CreatePost(ctx, id, alice, "That helps, thanks!", postID)
	if err != nil {
		t.Fatalf("create reply: %v", err)
	}

	posts, err := store.PostsForTopic(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Fatalf("posts = %+v", posts)
	}
	if posts[0].ID != postID || posts[1].ParentID != postID {
		t.Errorf("threading wrong: %+v", posts)
	}
	_ = replyID

	// Post count shows up on listings.
	topics, err := store.ListTopics(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(topics) != 1 || topics[0].PostCount != 2 {
		t.Errorf("listing = %+v", topics)
	}
}

func TestMarkSolutionOwnerOnly(t *testing.T) {
	store, alice, bob := setup(t, "forum_solution")
	ctx := context.Background()

	topicID, err := store.CreateTopic(ctx, alice, "Q", "", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	postID, err := store.CreatePost(ctx, topicID, bob, "answer", 0)
	if err != nil {
		t.Fatal(err)
	}

	if err := store.MarkSolution(ctx, topicID, postID, bob); !errors.Is(err, ErrNotTopicOwner) {
		t.Fatalf("non-owner err = %v", err)
	}
	if err := store.MarkSolution(ctx, topicID, postID, alice); err != nil {
		t.Fatalf("owner mark: %v", err)
	}

	posts, err := store.PostsForTopic(ctx, topicID)
	if err != nil {
		t.Fatal(err)
	}
	if !posts[0].IsSolution {
		t.Error("post not flagged as solution")
	}

	// Marking another post moves the flag.
	second, err := store.CreatePost(ctx, topicID, bob, "better answer", 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.MarkSolution(ctx, topicID, second, alice); err != nil {
		t.Fatal(err)
	}
	posts, _ = store.PostsForTopic(ctx, topicID)
	if posts[0].IsSolution || !posts[1].IsSolution {
		t.Errorf("solution flag not moved: %+v", posts)
	}
}

func TestLikesIdempotent(t *testing.T) {
	store, alice, bob := setup(t, "forum_likes")
	ctx := context.Background()

	topicID, _ := store.CreateTopic(ctx, alice, "Q", "", "", nil)
	postID, _ := store.CreatePost(ctx, topicID, alice, "post", 0)

	if err := store.Like(ctx, postID, bob); err != nil {
		t.Fatal(err)
	}
	if err := store.Like(ctx, postID, bob); err != nil {
		t.Fatalf("double like: %v", err)
	}

	liked, err := store.HasLiked(ctx, postID, bob)
	if err != nil || !liked {
		t.Fatalf("has liked = %v, %v", liked, err)
	}

	posts, _ := store.PostsForTopic(ctx, topicID)
	if posts[0].Likes != 1 {
		t.Errorf("likes = %d, want 1", posts[0].Likes)
	}

	if err := store.Unlike(ctx, postID, bob); err != nil {
		t.Fatal(err)
	}
	liked, _ = store.HasLiked(ctx, postID, bob)
	if liked {
		t.Error("still liked after unlike")
	}
}

func TestSearchAndFilters(t *testing.T) {
	store, alice, bob := setup(t, "forum_search")
	ctx := context.Background()

	if _, err := store.CreateTopic(ctx, alice, "Decorators explained", "", "Python", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := store.CreateTopic(ctx, bob, "Career advice", "what jobs use decorators?", "General", nil); err != nil {
		t.Fatal(err)
	}

	found, err := store.Search(ctx, "DECORATOR")
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 2 {
		t.Errorf("search hit %d topics, want 2 (title and description)", len(found))
	}

	python, err := store.ListTopics(ctx, "Python")
	if err != nil {
		t.Fatal(err)
	}
	if len(python) != 1 || python[0].Title != "Decorators explained" {
		t.Errorf("category filter = %+v", python)
	}

	mine, err := store.UserTopics(ctx, bob)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].CreatedBy != bob {
		t.Errorf("user topics = %+v", mine)
	}
}

func TestGetTopicNotFound(t *testing.T) {
	store, _, _ := setup(t, "forum_missing")
	if _, err := store.GetTopic(context.Background(), 999); !errors.Is(err, ErrTopicNotFound) {
		t.Fatalf("err = %v", err)
	}
	if _, err := store.CreatePost(context.Background(), 999, 1, "x", 0); !errors.Is(err, ErrTopicNotFound) {
		t.Fatalf("post to missing topic err = %v", err)
	}
}
