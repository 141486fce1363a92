package services

import (
	"errors"

	"github.com/gestaopublica/painel-projetos/internal/dto"
	"github.com/gestaopublica/painel-projetos/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimelineService struct {
	db *gorm.DB
}

func NewTimelineService(db *gorm.DB) *TimelineService {
	return &TimelineService{db: db}
}

func (s *TimelineService) List(projectID uuid.UUID) ([]dto.TimelineEntryResponse, error) {
	var entries []models.ProjectTimelineEntry
	err := s.db.Where("project_id = ?", projectID).
		Order("start_date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.TimelineEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.MapTimelineEntry(e))
	}
	return out, nil
}

func (s *TimelineService) Create(projectID uuid.UUID, req *dto.TimelineEntryRequest) (*dto.TimelineEntryResponse, error) {
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, &InvalidDateError{Field: "startDate"}
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return nil, &InvalidDateError{Field: "endDate"}
	}

	entry := models.ProjectTimelineEntry{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Label:       req.Label,
		Description: req.Description,
		Type:        models.EncodeTimelineType(models.TimelineType(req.Type)),
		StartDate:   startDate,
		EndDate:     endDate,
	}

	if req.TaskID != nil && *req.TaskID != "" {
		taskID, err := uuid.Parse(*req.TaskID)
		if err != nil {
			return nil, ErrTaskNotFound
		}
		entry.TaskID = &taskID
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	resp := dto.MapTimelineEntry(entry)
	return &resp, nil
}

func (s *TimelineService) Update(entryID uuid.UUID, req *dto.TimelineEntryUpdateRequest) (*dto.TimelineEntryResponse, error) {
	updates := map[string]interface{}{}

	if req.Label != nil {
		updates["label"] = *req.Label
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.StartDate != nil {
		t, err := dto.ParseDate(*req.StartDate)
		if err != nil {
			return nil, &InvalidDateError{Field: "startDate"}
		}
		updates["start_date"] = t
	}
	if req.EndDate != nil {
		t, err := dto.ParseDate(*req.EndDate)
		if err != nil {
			return nil, &InvalidDateError{Field: "endDate"}
		}
		updates["end_date"] = t
	}
	if req.Type != nil {
		updates["type"] = models.EncodeTimelineType(models.TimelineType(*req.Type))
	}
	if req.TaskID != nil {
		if *req.TaskID == "" {
			updates["task_id"] = nil
		} else {
			taskID, err := uuid.Parse(*req.TaskID)
			if err != nil {
				return nil, ErrTaskNotFound
			}
			updates["task_id"] = taskID
		}
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.ProjectTimelineEntry{}).Where("id = ?", entryID).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrTimelineNotFound
		}
	}

	var entry models.ProjectTimelineEntry
	if err := s.db.First(&entry, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimelineNotFound
		}
		return nil, err
	}

	resp := dto.MapTimelineEntry(entry)
	return &resp, nil
}

func (s *TimelineService) Delete(entryID uuid.UUID) error {
	result := s.db.Delete(&models.ProjectTimelineEntry{}, "id = ?", entryID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTimelineNotFound
	}
	return nil
}
