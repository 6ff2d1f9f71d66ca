package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ciaan_backend/internal/metrics"
	"ciaan_backend/internal/repository"
	"ciaan_backend/model"
)

// EngagementService owns the two post mutations: toggle-like and
// add-comment. Both go through a single atomic repository update, so the
// like counter and the liker set always move together.
type EngagementService struct {
	Posts repository.PostRepository
}

func NewEngagementService(posts repository.PostRepository) *EngagementService {
	return &EngagementService{Posts: posts}
}

// ToggleLike flips userID's like on the post. Calling it twice reverses
// the first call. Returns the new count and whether the user now likes
// the post.
func (s *EngagementService) ToggleLike(ctx context.Context, postID, userID bson.ObjectID) (int, bool, error) {
	post, err := s.Posts.ToggleLike(ctx, postID, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, false, ErrPostNotFound
		}
		return 0, false, fmt.Errorf("toggle like: %w", err)
	}
	metrics.LikesToggled.Inc()
	return post.Likes, post.HasLiked(userID), nil
}

// AddComment appends a comment and returns it with its assigned id and
// timestamp. Blank text (after trimming) is rejected; the stored text is
// kept as sent.
func (s *EngagementService) AddComment(ctx context.Context, postID, userID bson.ObjectID, text string) (model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return model.Comment{}, fmt.Errorf("%w: text", ErrValidation)
	}

	comment := model.Comment{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.Posts.AddComment(ctx, postID, comment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Comment{}, ErrPostNotFound
		}
		return model.Comment{}, fmt.Errorf("add comment: %w", err)
	}
	metrics.CommentsAdded.Inc()
	return comment, nil
}
