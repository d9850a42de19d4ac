package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eksiblog/internal/model"
)

// PostRepository defines post persistence operations. Titles are unique
// system-wide, so the by-title lookups address at most one row.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByTitle(ctx context.Context, title string) (*model.Post, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Post, error)
	UpdateDescription(ctx context.Context, title, description string) error
	DeleteByTitle(ctx context.Context, title string) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository builds a GORM-backed repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindByTitle(ctx context.Context, title string) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) UpdateDescription(ctx context.Context, title, description string) error {
	return r.db.WithContext(ctx).Model(&model.Post{}).
		Where("title = ?", title).
		Update("description", description).Error
}

func (r *postRepository) DeleteByTitle(ctx context.Context, title string) error {
	return r.db.WithContext(ctx).Where("title = ?", title).Delete(&model.Post{}).Error
}
