package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"ciaan_backend/internal/metrics"
	"ciaan_backend/internal/repository"
	"ciaan_backend/model"
)

type PostService struct {
	Posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) *PostService {
	return &PostService{Posts: posts}
}

// CreatePost stores a new post with zero engagement. Photo and video are
// opaque references handed out by the media store; empty means none.
func (s *PostService) CreatePost(ctx context.Context, authorID bson.ObjectID, title, description, photo, video string) (model.Post, error) {
	if strings.TrimSpace(title) == "" {
		return model.Post{}, fmt.Errorf("%w: title", ErrValidation)
	}
	if strings.TrimSpace(description) == "" {
		return model.Post{}, fmt.Errorf("%w: discription", ErrValidation)
	}

	now := time.Now().UTC()
	post := model.Post{
		Title:       title,
		Description: description,
		Photo:       photo,
		Video:       video,
		Likes:       0,
		Liked:       []bson.ObjectID{},
		Comments:    []model.Comment{},
		UserID:      authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.Posts.Create(ctx, post)
	if err != nil {
		return model.Post{}, fmt.Errorf("create post: %w", err)
	}
	metrics.PostsCreated.Inc()
	return created, nil
}

// PostsByAuthor backs the profile page.
func (s *PostService) PostsByAuthor(ctx context.Context, authorID bson.ObjectID) ([]model.Post, error) {
	return s.Posts.FindByAuthor(ctx, authorID)
}
