package services

import (
	"errors"
	"strings"

	"github.com/gestaopublica/painel-projetos/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// managementLevel is the role level at or above which a user may manage
// projects regardless of role name.
const managementLevel = 60

var coordinatorRoleNames = []string{"coordenador", "coordenadora", "admin"}

// RoleGrantsManagement is the single source of truth for the management
// privilege rule. Every authorization path goes through it; do not restate
// the name list or the level threshold anywhere else.
func RoleGrantsManagement(name string, level int) bool {
	lower := strings.ToLower(name)
	for _, n := range coordinatorRoleNames {
		if lower == n {
			return true
		}
	}
	return level >= managementLevel
}

type PermissionService struct {
	db *gorm.DB
}

func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{db: db}
}

// CanManageProjects reports whether any of the user's roles grants
// management rights. A missing user is simply not allowed.
func (s *PermissionService) CanManageProjects(userID uuid.UUID) (bool, error) {
	var user models.User
	err := s.db.Preload("Roles").First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	for _, role := range user.Roles {
		if RoleGrantsManagement(role.Name, role.Level) {
			return true, nil
		}
	}
	return false, nil
}

// CanModifyComment allows the comment's author, the owning project's
// creator, and anyone with management rights. A missing comment is not
// modifiable.
func (s *PermissionService) CanModifyComment(userID, commentID uuid.UUID) (bool, error) {
	var comment models.ProjectComment
	err := s.db.First(&comment, "id = ?", commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if comment.AuthorID == userID {
		return true, nil
	}

	var project models.Project
	if err := s.db.Select("id", "created_by_id").First(&project, "id = ?", comment.ProjectID).Error; err == nil {
		if project.CreatedByID != nil && *project.CreatedByID == userID {
			return true, nil
		}
	}

	return s.CanManageProjects(userID)
}
