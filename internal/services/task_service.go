package services

import (
	"errors"
	"strings"
	"time"

	"github.com/gestaopublica/painel-projetos/internal/dto"
	"github.com/gestaopublica/painel-projetos/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

func (s *TaskService) List(projectID uuid.UUID) ([]dto.TaskResponse, error) {
	var tasks []models.ProjectTask
	err := s.db.Preload("Responsible").
		Where("project_id = ?", projectID).
		Order("task_order ASC, created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, dto.MapTask(t))
	}
	return out, nil
}

// Create appends the task at the end of the project's ordering (order =
// current count). The responsible is resolved by email best-effort: an email
// matching no user leaves the task unassigned.
func (s *TaskService) Create(projectID uuid.UUID, req *dto.TaskRequest) (*dto.TaskResponse, error) {
	var count int64
	if err := s.db.Model(&models.ProjectTask{}).Where("project_id = ?", projectID).Count(&count).Error; err != nil {
		return nil, err
	}

	responsibleID, err := s.findUserIDByEmail(req.ResponsibleEmail)
	if err != nil {
		return nil, err
	}

	status := models.TaskNaoIniciada
	if req.Status != nil {
		status = models.DecodeTaskStatus(*req.Status)
	}

	task := models.ProjectTask{
		ID:            uuid.New(),
		ProjectID:     projectID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        models.EncodeTaskStatus(status),
		ResponsibleID: responsibleID,
		Order:         int(count),
	}

	if task.StartDate, err = parseDatePtr(req.StartDate); err != nil {
		return nil, &InvalidDateError{Field: "startDate"}
	}
	if task.DueDate, err = parseDatePtr(req.DueDate); err != nil {
		return nil, &InvalidDateError{Field: "dueDate"}
	}
	task.CompletedAt = completedAtFor(status, time.Now().UTC())

	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}

	return s.get(task.ID)
}

// Update writes only the provided fields. A status change to "concluida"
// stamps CompletedAt; any other status clears it.
func (s *TaskService) Update(taskID uuid.UUID, req *dto.TaskUpdateRequest) (*dto.TaskResponse, error) {
	var existing models.ProjectTask
	if err := s.db.First(&existing, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.StartDate != nil {
		t, err := parseDatePtr(req.StartDate)
		if err != nil {
			return nil, &InvalidDateError{Field: "startDate"}
		}
		updates["start_date"] = t
	}
	if req.DueDate != nil {
		t, err := parseDatePtr(req.DueDate)
		if err != nil {
			return nil, &InvalidDateError{Field: "dueDate"}
		}
		updates["due_date"] = t
	}
	if req.Status != nil {
		status := models.DecodeTaskStatus(*req.Status)
		updates["status"] = models.EncodeTaskStatus(status)
		if ts := completedAtFor(status, time.Now().UTC()); ts != nil {
			updates["completed_at"] = *ts
		} else {
			updates["completed_at"] = nil
		}
	}
	if req.ResponsibleEmail != nil {
		responsibleID, err := s.findUserIDByEmail(req.ResponsibleEmail)
		if err != nil {
			return nil, err
		}
		updates["responsible_id"] = responsibleID
	}

	if len(updates) > 0 {
		if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.get(taskID)
}

func (s *TaskService) Delete(taskID uuid.UUID) error {
	result := s.db.Delete(&models.ProjectTask{}, "id = ?", taskID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (s *TaskService) get(taskID uuid.UUID) (*dto.TaskResponse, error) {
	var task models.ProjectTask
	err := s.db.Preload("Responsible").First(&task, "id = ?", taskID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	resp := dto.MapTask(task)
	return &resp, nil
}

// findUserIDByEmail resolves a responsible user. A nil/blank email or one
// matching no user yields nil without error.
func (s *TaskService) findUserIDByEmail(email *string) (*uuid.UUID, error) {
	if email == nil {
		return nil, nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*email))
	if normalized == "" {
		return nil, nil
	}

	var user models.User
	err := s.db.Select("id").Where("email = ?", normalized).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user.ID, nil
}

// completedAtFor stamps the completion time when a task reaches concluida;
// any other status clears it.
func completedAtFor(status models.TaskStatus, now time.Time) *time.Time {
	if status == models.TaskConcluida {
		return &now
	}
	return nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := dto.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
