package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a blog entry owned by a single user. Titles are unique across all
// users, so a title identifies exactly one post system-wide.
type Post struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"uniqueIndex;size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	UserID      uuid.UUID `json:"userId" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
