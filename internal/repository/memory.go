package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ciaan_backend/model"
)

// MemoryPostRepo is an in-process PostRepository used by tests. A single
// mutex stands in for Mongo's per-document write serialization, so the
// read-modify-write in ToggleLike/AddComment is atomic here too.
type MemoryPostRepo struct {
	mu    sync.Mutex
	posts map[bson.ObjectID]model.Post
	order []bson.ObjectID
}

func NewMemoryPostRepo() *MemoryPostRepo {
	return &MemoryPostRepo{posts: make(map[bson.ObjectID]model.Post)}
}

func (r *MemoryPostRepo) Create(_ context.Context, post model.Post) (model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID.IsZero() {
		post.ID = bson.NewObjectID()
	}
	r.posts[post.ID] = post
	r.order = append(r.order, post.ID)
	return post, nil
}

func (r *MemoryPostRepo) FindByID(_ context.Context, id bson.ObjectID) (model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return model.Post{}, mongo.ErrNoDocuments
	}
	return clonePost(post), nil
}

func (r *MemoryPostRepo) FindByAuthor(_ context.Context, authorID bson.ObjectID) ([]model.Post, error) {
	return r.filter(func(p model.Post) bool { return p.UserID == authorID }), nil
}

func (r *MemoryPostRepo) List(_ context.Context, search string) ([]model.Post, error) {
	term := strings.ToLower(search)
	return r.filter(func(p model.Post) bool {
		return term == "" || strings.Contains(strings.ToLower(p.Title), term)
	}), nil
}

func (r *MemoryPostRepo) filter(keep func(model.Post) bool) []model.Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []model.Post{}
	for _, id := range r.order {
		if p := r.posts[id]; keep(p) {
			out = append(out, clonePost(p))
		}
	}
	return out
}

func (r *MemoryPostRepo) ToggleLike(_ context.Context, postID, userID bson.ObjectID) (model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[postID]
	if !ok {
		return model.Post{}, mongo.ErrNoDocuments
	}

	if post.HasLiked(userID) {
		liked := make([]bson.ObjectID, 0, len(post.Liked))
		for _, id := range post.Liked {
			if id != userID {
				liked = append(liked, id)
			}
		}
		post.Liked = liked
		if post.Likes = post.Likes - 1; post.Likes < 0 {
			post.Likes = 0
		}
	} else {
		post.Liked = append(post.Liked, userID)
		post.Likes++
	}
	post.UpdatedAt = time.Now().UTC()

	r.posts[postID] = post
	return clonePost(post), nil
}

func (r *MemoryPostRepo) AddComment(_ context.Context, postID bson.ObjectID, comment model.Comment) (model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[postID]
	if !ok {
		return model.Post{}, mongo.ErrNoDocuments
	}
	post.Comments = append(post.Comments, comment)
	post.UpdatedAt = time.Now().UTC()

	r.posts[postID] = post
	return clonePost(post), nil
}

func clonePost(p model.Post) model.Post {
	p.Liked = append([]bson.ObjectID(nil), p.Liked...)
	p.Comments = append([]model.Comment(nil), p.Comments...)
	return p
}

// MemoryUserRepo mirrors the Mongo user repository for tests, including
// its unique-username/email behavior.
type MemoryUserRepo struct {
	mu    sync.Mutex
	users map[bson.ObjectID]model.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[bson.ObjectID]model.User)}
}

func (r *MemoryUserRepo) Insert(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Username, user.Username) || u.Email == user.Email {
			return model.User{}, mongo.WriteException{
				WriteErrors: []mongo.WriteError{{Code: 11000}},
			}
		}
	}
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *MemoryUserRepo) FindByID(_ context.Context, id bson.ObjectID) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, mongo.ErrNoDocuments
	}
	return user, nil
}

func (r *MemoryUserRepo) FindByUsername(_ context.Context, username string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return model.User{}, mongo.ErrNoDocuments
}

func (r *MemoryUserRepo) FindByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, mongo.ErrNoDocuments
}

func (r *MemoryUserRepo) FindManyByID(_ context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[bson.ObjectID]model.User, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (r *MemoryUserRepo) SetProfilePicture(_ context.Context, id bson.ObjectID, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.ProfilePicture = path
	r.users[id] = user
	return nil
}
