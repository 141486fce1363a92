package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectTask ordering is append-only: Order is assigned at creation as the
// current task count for the project and never rewritten.
type ProjectTask struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title         string     `gorm:"size:255;not null"`
	Description   *string    `gorm:"type:text"`
	Status        string     `gorm:"size:50;not null;default:'NAO_INICIADA'"`
	ResponsibleID *uuid.UUID `gorm:"type:uuid;index"`
	Responsible   *User      `gorm:"foreignKey:ResponsibleID"`
	StartDate     *time.Time
	DueDate       *time.Time
	CompletedAt   *time.Time
	Order         int `gorm:"column:task_order;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
