package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eksiblog/internal/cache"
	apperrors "eksiblog/internal/errors"
	"eksiblog/internal/model"
	"eksiblog/internal/repository"
)

const postListCacheTTL = 5 * time.Minute

// PostService exposes post operations scoped to an authenticated caller.
type PostService interface {
	Create(ctx context.Context, callerID uuid.UUID, title, description string) (*model.Post, error)
	ListByOwner(ctx context.Context, callerID uuid.UUID) ([]model.Post, error)
	UpdateDescription(ctx context.Context, callerID uuid.UUID, title, newDescription string) (*model.Post, error)
	Delete(ctx context.Context, callerID uuid.UUID, title string) error
}

type postService struct {
	postRepo repository.PostRepository
	cache    *cache.Client
}

// NewPostService builds a PostService with repository and cache.
func NewPostService(postRepo repository.PostRepository, cache *cache.Client) PostService {
	return &postService{postRepo: postRepo, cache: cache}
}

func (s *postService) cacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("posts:user:%s", userID)
}

// Create inserts a new post owned by the caller. Titles are globally unique;
// the existence check is advisory and the unique index has the final word.
func (s *postService) Create(ctx context.Context, callerID uuid.UUID, title, description string) (*model.Post, error) {
	existing, err := s.postRepo.FindByTitle(ctx, title)
	if err == nil && existing != nil {
		return nil, apperrors.ErrPostExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check post existence: %w", err)
	}

	post := &model.Post{
		Title:       title,
		Description: description,
		UserID:      callerID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, apperrors.ErrPostExists
		}
		return nil, fmt.Errorf("create post: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(callerID))
	return post, nil
}

// ListByOwner returns every post owned by the caller, none of anyone else's.
func (s *postService) ListByOwner(ctx context.Context, callerID uuid.UUID) ([]model.Post, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(callerID)); data != nil {
		var cached []model.Post
		if err := json.Unmarshal(data, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	posts, err := s.postRepo.ListByUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if len(posts) == 0 {
		return nil, apperrors.ErrNoPosts
	}

	if payload, err := json.Marshal(posts); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(callerID), payload, postListCacheTTL)
	}
	return posts, nil
}

// UpdateDescription overwrites the description of the post with the given
// title, provided the caller owns it.
func (s *postService) UpdateDescription(ctx context.Context, callerID uuid.UUID, title, newDescription string) (*model.Post, error) {
	post, err := s.postRepo.FindByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	if post.UserID != callerID {
		return nil, apperrors.ErrNotPostOwner
	}

	if err := s.postRepo.UpdateDescription(ctx, title, newDescription); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(post.UserID))
	post.Description = newDescription
	return post, nil
}

// Delete removes the post with the given title, provided the caller owns it.
func (s *postService) Delete(ctx context.Context, callerID uuid.UUID, title string) error {
	post, err := s.postRepo.FindByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("find post: %w", err)
	}

	if post.UserID != callerID {
		return apperrors.ErrNotPostOwner
	}

	if err := s.postRepo.DeleteByTitle(ctx, title); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(post.UserID))
	return nil
}
