package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"ciaan_backend/dto"
	"ciaan_backend/internal/cache"
	"ciaan_backend/internal/handlers"
	"ciaan_backend/internal/middleware"
	"ciaan_backend/internal/repository"
	"ciaan_backend/internal/routes"
	"ciaan_backend/model"
	"ciaan_backend/services"
)

const testSecret = "handler-secret"

type fixture struct {
	app   *fiber.App
	posts *repository.MemoryPostRepo
	users *repository.MemoryUserRepo
	auth  *services.AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	posts := repository.NewMemoryPostRepo()
	users := repository.NewMemoryUserRepo()
	auth := services.NewAuthService(users, testSecret)
	postSvc := services.NewPostService(posts)
	engagement := services.NewEngagementService(posts)
	feed := services.NewFeedService(posts, users, cache.NewIdentityCache(""))

	app := fiber.New()
	app.Use(middleware.JWTUidOnly(testSecret))
	routes.Register(app, routes.Deps{
		Auth:    &handlers.AuthHandler{Auth: auth},
		Post:    &handlers.PostHandler{Posts: postSvc},
		Feed:    &handlers.FeedHandler{Feed: feed},
		Like:    &handlers.LikeHandler{Engagement: engagement},
		Comment: &handlers.CommentHandler{Engagement: engagement, Feed: feed},
		Profile: &handlers.ProfileHandler{Users: users, Posts: postSvc},
	})

	return &fixture{app: app, posts: posts, users: users, auth: auth}
}

func (f *fixture) newUser(t *testing.T, username string) (bson.ObjectID, string) {
	t.Helper()
	user, err := f.users.Insert(context.Background(), model.User{
		Username:       username,
		Email:          username + "@example.com",
		ProfilePicture: model.DefaultProfilePicture,
	})
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	token, err := f.auth.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return user.ID, token
}

func (f *fixture) newPost(t *testing.T, authorID bson.ObjectID, title string) model.Post {
	t.Helper()
	post, err := services.NewPostService(f.posts).CreatePost(context.Background(), authorID, title, "d", "", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

func TestLikeEndpointToggles(t *testing.T) {
	f := newFixture(t)
	authorID, _ := f.newUser(t, "author")
	_, token := f.newUser(t, "liker")
	post := f.newPost(t, authorID, "Trip")
	path := fmt.Sprintf("/post/%s/like", post.ID.Hex())

	resp := f.do(t, "POST", path, token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := decode[dto.LikeResponse](t, resp); got.Likes != 1 || !got.Liked {
		t.Fatalf("first like = %+v, want {1 true}", got)
	}

	resp = f.do(t, "POST", path, token, nil)
	if got := decode[dto.LikeResponse](t, resp); got.Likes != 0 || got.Liked {
		t.Fatalf("second like = %+v, want {0 false}", got)
	}
}

func TestLikeEndpointRequiresAuth(t *testing.T) {
	f := newFixture(t)
	authorID, _ := f.newUser(t, "author")
	post := f.newPost(t, authorID, "Trip")

	resp := f.do(t, "POST", fmt.Sprintf("/post/%s/like", post.ID.Hex()), "", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestLikeEndpointUnknownPost(t *testing.T) {
	f := newFixture(t)
	_, token := f.newUser(t, "liker")

	resp := f.do(t, "POST", "/post/"+bson.NewObjectID().Hex()+"/like", token, nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCommentEndpointReturnsEnrichedPost(t *testing.T) {
	f := newFixture(t)
	authorID, _ := f.newUser(t, "author")
	_, token := f.newUser(t, "bob")
	post := f.newPost(t, authorID, "Trip")

	resp := f.do(t, "POST", fmt.Sprintf("/post/%s/comment", post.ID.Hex()), token, dto.CreateCommentReq{Text: "Nice!"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	got := decode[dto.FeedPost](t, resp)
	if got.User.Username != "author" {
		t.Errorf("post author = %+v, want author", got.User)
	}
	if len(got.Comments) != 1 || got.Comments[0].Text != "Nice!" || got.Comments[0].User.Username != "bob" {
		t.Errorf("comments = %+v, want one comment by bob", got.Comments)
	}
}

func TestCommentEndpointRejectsBlankText(t *testing.T) {
	f := newFixture(t)
	authorID, _ := f.newUser(t, "author")
	_, token := f.newUser(t, "bob")
	post := f.newPost(t, authorID, "Trip")

	resp := f.do(t, "POST", fmt.Sprintf("/post/%s/comment", post.ID.Hex()), token, dto.CreateCommentReq{Text: "   "})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestFeedEndpointSearch(t *testing.T) {
	f := newFixture(t)
	authorID, _ := f.newUser(t, "author")
	f.newPost(t, authorID, "Hello World")
	f.newPost(t, authorID, "Trip report")

	resp := f.do(t, "GET", "/?search=hello", "", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := decode[[]dto.FeedPost](t, resp); len(got) != 1 || got[0].Title != "Hello World" {
		t.Fatalf("search result = %+v, want just Hello World", got)
	}

	resp = f.do(t, "GET", "/", "", nil)
	if got := decode[[]dto.FeedPost](t, resp); len(got) != 2 {
		t.Fatalf("unfiltered feed has %d posts, want 2", len(got))
	}
}

func TestProfileEndpoints(t *testing.T) {
	f := newFixture(t)
	aliceID, aliceToken := f.newUser(t, "alice")
	bobID, _ := f.newUser(t, "bob")
	f.newPost(t, aliceID, "mine")
	f.newPost(t, bobID, "not mine")

	resp := f.do(t, "GET", "/Profile", aliceToken, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := decode[[]model.Post](t, resp); len(got) != 1 || got[0].Title != "mine" {
		t.Fatalf("profile posts = %+v, want only alice's", got)
	}

	resp = f.do(t, "GET", "/username", aliceToken, nil)
	if got := decode[dto.UsernameResponse](t, resp); got.Username != "alice" {
		t.Fatalf("username = %q, want alice", got.Username)
	}

	resp = f.do(t, "GET", "/profile-picture", aliceToken, nil)
	if got := decode[dto.ProfilePictureResponse](t, resp); got.ProfilePicture != model.DefaultProfilePicture {
		t.Fatalf("profile picture = %q, want the default", got.ProfilePicture)
	}
}

func TestRegistrationAndLoginEndpoints(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, "POST", "/registration", "", dto.RegisterRequest{
		Username: "carol", Email: "carol@example.com", Password: "pw", Gender: "female",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("registration status = %d, want 201", resp.StatusCode)
	}
	if got := decode[dto.AuthResponse](t, resp); got.Token == "" {
		t.Fatal("registration returned no token")
	}

	// Duplicate username keeps the legacy 200 + success:"user" contract.
	resp = f.do(t, "POST", "/registration", "", dto.RegisterRequest{
		Username: "carol", Email: "other@example.com", Password: "pw",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("duplicate status = %d, want 200", resp.StatusCode)
	}
	if got := decode[dto.AuthResponse](t, resp); got.Success != "user" {
		t.Fatalf("duplicate success = %v, want \"user\"", got.Success)
	}

	resp = f.do(t, "POST", "/login", "", dto.LoginRequest{Username: "CAROL", Password: "pw"})
	if got := decode[dto.AuthResponse](t, resp); got.Token == "" {
		t.Fatalf("login response = %+v, want a token", got)
	}

	resp = f.do(t, "POST", "/login", "", dto.LoginRequest{Username: "carol", Password: "nope"})
	if got := decode[dto.AuthResponse](t, resp); got.Success != false {
		t.Fatalf("bad login success = %v, want false", got.Success)
	}
}
