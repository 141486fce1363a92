package services

import (
	"strings"

	"github.com/gestaopublica/painel-projetos/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileInput is the identity carried by an authenticated session.
type ProfileInput struct {
	ID     uuid.UUID
	Email  string
	Name   string
	Avatar *string
}

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Ensure upserts the local profile by id. Name, email and avatar are
// overwritten on every call so identity edits propagate on the next request.
func (s *ProfileService) Ensure(in ProfileInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		if at := strings.Index(in.Email, "@"); at > 0 {
			name = in.Email[:at]
		} else {
			name = "Usuário"
		}
	}

	user := models.User{
		ID:     in.ID,
		Name:   name,
		Email:  in.Email,
		Avatar: in.Avatar,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "avatar", "updated_at"}),
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetWithRoles loads a profile and its role assignments.
func (s *ProfileService) GetWithRoles(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Roles").First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
