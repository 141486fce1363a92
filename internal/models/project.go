package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string     `gorm:"size:255;not null"`
	Description   string     `gorm:"type:text;not null"`
	Area          string     `gorm:"size:50;not null;index"`
	Status        string     `gorm:"size:50;not null"`
	Progress      int        `gorm:"default:0"`
	StartDate     time.Time  `gorm:"not null"`
	EndDate       time.Time  `gorm:"not null"`
	Priority      string     `gorm:"size:20;not null"`
	Visibility    string     `gorm:"size:20;not null;default:'PUBLIC';index"`
	Featured      bool       `gorm:"default:false"`
	Image         *string    `gorm:"size:500"`
	ImagePosition *string    `gorm:"size:20"`
	CreatedByID   *uuid.UUID `gorm:"type:uuid;index"`

	Team        []ProjectTeamMember    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Files       []ProjectFile          `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Tasks       []ProjectTask          `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Comments    []ProjectComment       `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Timeline    []ProjectTimelineEntry `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	AccessRules []ProjectAccessRule    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProjectTeamMember links a display-only team entry to a project. Team
// membership carries its own role label, independent of the RBAC roles.
type ProjectTeamMember struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"size:255;not null"`
	Role      string    `gorm:"size:100"`
	Avatar    *string   `gorm:"size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProjectFile struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"size:255;not null"`
	URL       string    `gorm:"size:1000;not null"`
	MimeType  string    `gorm:"size:100;not null"`
	Category  string    `gorm:"size:50;default:'ANEXO'"`
	Position  *string   `gorm:"size:20"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProjectAccessRule grants per-user or per-role rights on a project. A full
// grant is written for the creator on project creation. Read paths currently
// authorize via visibility + role level only and do not consult these rows.
type ProjectAccessRule struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectID uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	RoleID    *uuid.UUID `gorm:"type:uuid;index"`
	CanView   bool       `gorm:"default:true"`
	CanEdit   bool       `gorm:"default:false"`
	CanManage bool       `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
