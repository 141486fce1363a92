package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the local profile kept in sync with the identity the JWT carries.
// Password is empty for profiles provisioned from an external identity.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Avatar    *string   `gorm:"size:500" json:"avatar,omitempty"`
	Password  string    `gorm:"size:255" json:"-"`
	Roles     []Role    `gorm:"many2many:user_roles" json:"roles,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Role level 60 and above grants project management, as do the coordinator
// and admin role names. Names are compared case-insensitively.
type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description *string   `gorm:"size:500" json:"description,omitempty"`
	Level       int       `gorm:"default:0" json:"level"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
