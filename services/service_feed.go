package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ciaan_backend/dto"
	"ciaan_backend/internal/cache"
	"ciaan_backend/internal/repository"
	"ciaan_backend/model"
)

// FeedService reads posts and stitches author identity (username +
// profile picture) onto each post and each comment. The join happens at
// read time; nothing user-mutable is stored on the post.
type FeedService struct {
	Posts repository.PostRepository
	Users repository.UserRepository
	Cache *cache.IdentityCache
}

func NewFeedService(posts repository.PostRepository, users repository.UserRepository, c *cache.IdentityCache) *FeedService {
	return &FeedService{Posts: posts, Users: users, Cache: c}
}

// ListFeed returns all posts, or with search set only those whose title
// contains the term (case-insensitive substring), enriched for display.
func (s *FeedService) ListFeed(ctx context.Context, search string) ([]dto.FeedPost, error) {
	posts, err := s.Posts.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return s.enrich(ctx, posts)
}

// GetPost returns one post enriched for display; the comment endpoint
// responds with this so the front end can render without re-fetching.
func (s *FeedService) GetPost(ctx context.Context, postID bson.ObjectID) (dto.FeedPost, error) {
	post, err := s.Posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dto.FeedPost{}, ErrPostNotFound
		}
		return dto.FeedPost{}, fmt.Errorf("find post: %w", err)
	}
	enriched, err := s.enrich(ctx, []model.Post{post})
	if err != nil {
		return dto.FeedPost{}, err
	}
	return enriched[0], nil
}

func (s *FeedService) enrich(ctx context.Context, posts []model.Post) ([]dto.FeedPost, error) {
	authors, err := s.resolveAuthors(ctx, posts)
	if err != nil {
		return nil, err
	}

	out := make([]dto.FeedPost, 0, len(posts))
	for _, p := range posts {
		fp := dto.FeedPost{
			ID:          p.ID.Hex(),
			Title:       p.Title,
			Description: p.Description,
			Photo:       p.Photo,
			Video:       p.Video,
			Likes:       p.Likes,
			Liked:       hexIDs(p.Liked),
			Comments:    []dto.FeedComment{},
			User:        authors[p.UserID],
			CreatedAt:   p.CreatedAt,
		}
		for _, c := range p.Comments {
			fp.Comments = append(fp.Comments, dto.FeedComment{
				ID:        c.ID.Hex(),
				User:      authors[c.UserID],
				Text:      c.Text,
				CreatedAt: c.CreatedAt,
			})
		}
		out = append(out, fp)
	}
	return out, nil
}

// resolveAuthors collects every author id referenced by the posts and
// their comments, answers what it can from the cache, and batch-fetches
// the rest. A deleted author resolves to a placeholder rather than
// failing the feed.
func (s *FeedService) resolveAuthors(ctx context.Context, posts []model.Post) (map[bson.ObjectID]dto.Author, error) {
	wanted := map[bson.ObjectID]struct{}{}
	for _, p := range posts {
		wanted[p.UserID] = struct{}{}
		for _, c := range p.Comments {
			wanted[c.UserID] = struct{}{}
		}
	}

	authors := make(map[bson.ObjectID]dto.Author, len(wanted))
	missing := make([]bson.ObjectID, 0, len(wanted))
	for id := range wanted {
		if ident, ok := s.Cache.Get(id.Hex()); ok {
			authors[id] = dto.Author{ID: id.Hex(), Username: ident.Username, ProfilePicture: ident.ProfilePicture}
		} else {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		users, err := s.Users.FindManyByID(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("fetch authors: %w", err)
		}
		for _, id := range missing {
			if u, ok := users[id]; ok {
				authors[id] = dto.Author{ID: id.Hex(), Username: u.Username, ProfilePicture: u.ProfilePicture}
				s.Cache.Set(id.Hex(), cache.Identity{Username: u.Username, ProfilePicture: u.ProfilePicture})
			} else {
				authors[id] = dto.Author{ID: id.Hex(), Username: "unknown", ProfilePicture: model.DefaultProfilePicture}
			}
		}
	}
	return authors, nil
}

func hexIDs(ids []bson.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}
