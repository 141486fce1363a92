package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Attachments is an opaque JSON array of {name, url, mimeType} tuples.
type ProjectComment struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	AuthorID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Author      User           `gorm:"foreignKey:AuthorID"`
	Content     string         `gorm:"type:text;not null"`
	Attachments datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
