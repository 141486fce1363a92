package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectTimelineEntry is a dated marker on the project timeline, distinct
// from a task. TaskID optionally links the marker to an existing task.
type ProjectTimelineEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Label       string    `gorm:"size:255;not null"`
	Description *string   `gorm:"type:text"`
	Type        string    `gorm:"size:20;not null;default:'MARCO'"`
	StartDate   time.Time `gorm:"not null;index"`
	EndDate     time.Time `gorm:"not null"`
	TaskID      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
