package services

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"ciaan_backend/internal/cache"
	"ciaan_backend/internal/repository"
	"ciaan_backend/model"
)

func newFeedFixture(t *testing.T) (*FeedService, *repository.MemoryPostRepo, *repository.MemoryUserRepo) {
	t.Helper()
	posts := repository.NewMemoryPostRepo()
	users := repository.NewMemoryUserRepo()
	return NewFeedService(posts, users, cache.NewIdentityCache("")), posts, users
}

func TestListFeedSearch(t *testing.T) {
	svc, posts, _ := newFeedFixture(t)
	ctx := context.Background()

	author := bson.NewObjectID()
	for _, title := range []string{"Hello World", "Trip report"} {
		if _, err := NewPostService(posts).CreatePost(ctx, author, title, "d", "", ""); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	cases := []struct {
		search string
		want   int
	}{
		{"", 2},
		{"hello", 1},
		{"WORLD", 1},
		{"lo wo", 1},
		{"xyz", 0},
	}
	for _, tc := range cases {
		got, err := svc.ListFeed(ctx, tc.search)
		if err != nil {
			t.Fatalf("ListFeed(%q): %v", tc.search, err)
		}
		if len(got) != tc.want {
			t.Errorf("ListFeed(%q) returned %d posts, want %d", tc.search, len(got), tc.want)
		}
	}
}

func TestFeedEnrichment(t *testing.T) {
	svc, posts, users := newFeedFixture(t)
	ctx := context.Background()

	author, err := users.Insert(ctx, model.User{
		Username: "alice", Email: "alice@example.com", ProfilePicture: "uploads/profile-pictures/alice.png",
	})
	if err != nil {
		t.Fatalf("insert author: %v", err)
	}
	commenter, err := users.Insert(ctx, model.User{
		Username: "bob", Email: "bob@example.com", ProfilePicture: model.DefaultProfilePicture,
	})
	if err != nil {
		t.Fatalf("insert commenter: %v", err)
	}

	post, err := NewPostService(posts).CreatePost(ctx, author.ID, "Trip", "Fun day", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := NewEngagementService(posts).AddComment(ctx, post.ID, commenter.ID, "Nice!"); err != nil {
		t.Fatalf("comment: %v", err)
	}

	feed, err := svc.ListFeed(ctx, "")
	if err != nil {
		t.Fatalf("ListFeed: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("feed length = %d, want 1", len(feed))
	}

	got := feed[0]
	if got.User.Username != "alice" || got.User.ProfilePicture != "uploads/profile-pictures/alice.png" {
		t.Errorf("post author = %+v, want alice with her picture", got.User)
	}
	if len(got.Comments) != 1 || got.Comments[0].User.Username != "bob" {
		t.Errorf("comment author = %+v, want bob", got.Comments)
	}
}

func TestFeedEnrichmentMissingAuthor(t *testing.T) {
	svc, posts, _ := newFeedFixture(t)
	ctx := context.Background()

	// Author was never inserted (or has been deleted since).
	if _, err := NewPostService(posts).CreatePost(ctx, bson.NewObjectID(), "Orphan", "d", "", ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	feed, err := svc.ListFeed(ctx, "")
	if err != nil {
		t.Fatalf("ListFeed: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("feed length = %d, want 1", len(feed))
	}
	if feed[0].User.Username != "unknown" {
		t.Errorf("missing author resolved to %+v, want the unknown placeholder", feed[0].User)
	}
}

func TestGetPostNotFound(t *testing.T) {
	svc, _, _ := newFeedFixture(t)
	if _, err := svc.GetPost(context.Background(), bson.NewObjectID()); err != ErrPostNotFound {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}
