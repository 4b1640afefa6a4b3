// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultStatus is assigned to accounts that never set a status line.
const DefaultStatus = "No status yet"

// User represents an author account with its profile extension fields.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Avatar    string         `json:"avatar"`
	Status    string         `gorm:"size:200" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}

// BeforeCreate fills in the default status for fresh accounts.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.Status == "" {
		u.Status = DefaultStatus
	}
	return nil
}
