package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered author. Email and username carry unique
// indexes so concurrent signups with the same key are rejected by storage,
// not just by the application-level existence check.
type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	FirstName      string    `json:"firstName" gorm:"size:255;not null"`
	LastName       string    `json:"lastName" gorm:"size:255;not null"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	HashedPassword string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
