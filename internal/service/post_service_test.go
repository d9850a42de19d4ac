package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"eksiblog/internal/cache"
	apperrors "eksiblog/internal/errors"
	"eksiblog/internal/model"
)

// MockPostRepository is a mock implementation of PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByTitle(ctx context.Context, title string) (*model.Post, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) UpdateDescription(ctx context.Context, title, description string) error {
	args := m.Called(ctx, title, description)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteByTitle(ctx context.Context, title string) error {
	args := m.Called(ctx, title)
	return args.Error(0)
}

// noCache exercises the nil-safe cache path so tests never touch redis.
var noCache *cache.Client

func TestPostService_Create(t *testing.T) {
	callerID := uuid.New()

	tests := []struct {
		name          string
		title         string
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name:  "successful create",
			title: "First Post",
			setupMock: func(m *MockPostRepository) {
				m.On("FindByTitle", mock.Anything, "First Post").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "title taken by any user",
			title: "First Post",
			setupMock: func(m *MockPostRepository) {
				m.On("FindByTitle", mock.Anything, "First Post").Return(&model.Post{
					Title:  "First Post",
					UserID: uuid.New(),
				}, nil)
			},
			expectedError: apperrors.ErrPostExists,
		},
		{
			name:  "concurrent create loses to unique constraint",
			title: "First Post",
			setupMock: func(m *MockPostRepository) {
				m.On("FindByTitle", mock.Anything, "First Post").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrPostExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			service := NewPostService(mockRepo, noCache)
			post, err := service.Create(context.Background(), callerID, tt.title, "a description")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, post)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, post)
				assert.Equal(t, tt.title, post.Title)
				assert.Equal(t, callerID, post.UserID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_ListByOwner(t *testing.T) {
	callerID := uuid.New()
	owned := []model.Post{
		{ID: uuid.New(), Title: "One", UserID: callerID},
		{ID: uuid.New(), Title: "Two", UserID: callerID},
	}

	tests := []struct {
		name          string
		setupMock     func(*MockPostRepository)
		expectedError error
		expectedLen   int
	}{
		{
			name: "returns exactly the caller's posts",
			setupMock: func(m *MockPostRepository) {
				m.On("ListByUser", mock.Anything, callerID).Return(owned, nil)
			},
			expectedLen: 2,
		},
		{
			name: "zero posts is not found",
			setupMock: func(m *MockPostRepository) {
				m.On("ListByUser", mock.Anything, callerID).Return([]model.Post{}, nil)
			},
			expectedError: apperrors.ErrNoPosts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			service := NewPostService(mockRepo, noCache)
			posts, err := service.ListByOwner(context.Background(), callerID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, posts)
			} else {
				assert.NoError(t, err)
				assert.Len(t, posts, tt.expectedLen)
				for _, p := range posts {
					assert.Equal(t, callerID, p.UserID)
				}
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_UpdateDescription(t *testing.T) {
	callerID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name: "successful update",
			setupMock: func(m *MockPostRepository) {
				m.On("FindByTitle", mock.Anything, "First Post").Return(&model.Post{
					Title:       "First Post",
					Description: "old text",
					UserID:      callerID,
				}, nil)
				m.On("UpdateDescription", mock.Anything, "First Post", "new text").Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "post does not exist",
			setupMock: func(m *MockPostRepository) {
				m.On("FindByTitle", mock.Anything, "First Post").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrPostNotFound,
		},
		{
			name: "caller does not own the post",
			setupMock: func(m *MockPostRepository) {
				m.On("FindByTitle", mock.Anything, "First Post").Return(&model.Post{
					Title:  "First Post",
					UserID: otherID,
				}, nil)
			},
			expectedError: apperrors.ErrNotPostOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			service := NewPostService(mockRepo, noCache)
			post, err := service.UpdateDescription(context.Background(), callerID, "First Post", "new text")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, post)
				mockRepo.AssertNotCalled(t, "UpdateDescription", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, post)
				assert.Equal(t, "new text", post.Description)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_Delete(t *testing.T) {
	callerID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name: "successful delete",
			setupMock: func(m *MockPostRepository) {
				m.On("FindByTitle", mock.Anything, "First Post").Return(&model.Post{
					Title:  "First Post",
					UserID: callerID,
				}, nil)
				m.On("DeleteByTitle", mock.Anything, "First Post").Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "post does not exist",
			setupMock: func(m *MockPostRepository) {
				m.On("FindByTitle", mock.Anything, "First Post").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrPostNotFound,
		},
		{
			name: "caller does not own the post",
			setupMock: func(m *MockPostRepository) {
				m.On("FindByTitle", mock.Anything, "First Post").Return(&model.Post{
					Title:  "First Post",
					UserID: otherID,
				}, nil)
			},
			expectedError: apperrors.ErrNotPostOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			service := NewPostService(mockRepo, noCache)
			err := service.Delete(context.Background(), callerID, "First Post")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				mockRepo.AssertNotCalled(t, "DeleteByTitle", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
