package services

import (
	"errors"
	"fmt"

	"github.com/gestaopublica/painel-projetos/internal/dto"
	"github.com/gestaopublica/painel-projetos/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QueryOptions narrows read paths. Handlers serving anonymous callers must
// set Visibility to public; an unset filter returns everything.
type QueryOptions struct {
	Visibility *models.Visibility
}

// PublicOnly is the filter every unauthenticated read goes through.
func PublicOnly() QueryOptions {
	v := models.VisibilityPublic
	return QueryOptions{Visibility: &v}
}

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// withRelations preloads everything the project mapper consumes, in the
// order the API contract promises: tasks by (order, created_at), comments
// newest first, timeline by start date.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Team").
		Preload("Files").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_order ASC, created_at ASC")
		}).
		Preload("Tasks.Responsible").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Comments.Author").
		Preload("Timeline", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date ASC")
		})
}

func visibilityScope(opts QueryOptions) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if opts.Visibility == nil {
			return db
		}
		return db.Where("visibility = ?", models.EncodeVisibility(*opts.Visibility))
	}
}

func (s *ProjectService) GetProjects(opts QueryOptions) ([]dto.ProjectResponse, error) {
	var projects []models.Project
	err := withRelations(s.db).Scopes(visibilityScope(opts)).Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return mapProjects(projects), nil
}

func (s *ProjectService) GetProjectsByArea(area string, opts QueryOptions) ([]dto.ProjectResponse, error) {
	var projects []models.Project
	err := withRelations(s.db).Scopes(visibilityScope(opts)).Where("area = ?", area).Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return mapProjects(projects), nil
}

func (s *ProjectService) GetProjectByID(id uuid.UUID, opts QueryOptions) (*dto.ProjectResponse, error) {
	var project models.Project
	err := withRelations(s.db).Scopes(visibilityScope(opts)).First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	resp := dto.MapProject(project)
	return &resp, nil
}

func (s *ProjectService) Create(req *dto.ProjectRequest, createdBy uuid.UUID) (*dto.ProjectResponse, error) {
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	project := models.Project{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Area:        req.Area,
		Status:      req.Status,
		Priority:    req.Priority,
		Progress:    0,
		StartDate:   startDate,
		EndDate:     endDate,
		Visibility:  models.EncodeVisibility(models.Visibility(req.Visibility)),
		Featured:    req.Featured,
		CreatedByID: &createdBy,
		AccessRules: []models.ProjectAccessRule{
			{UserID: &createdBy, CanView: true, CanEdit: true, CanManage: true},
		},
	}
	if req.Image != "" {
		project.Image = &req.Image
	}
	if req.ImagePosition != "" {
		pos := string(models.DecodeFilePosition(req.ImagePosition))
		project.ImagePosition = &pos
	}

	for _, f := range req.Files {
		project.Files = append(project.Files, newProjectFile(project.ID, f))
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.GetProjectByID(project.ID, QueryOptions{})
}

// Update overwrites every project attribute and reconciles the file set
// against the submitted list in a single transaction: rows missing from the
// incoming id set are deleted, entries without an id are inserted, matched
// ids are updated in place. Resubmitting the same list is a no-op.
func (s *ProjectService) Update(id uuid.UUID, req *dto.ProjectRequest) (*dto.ProjectResponse, error) {
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"name":           req.Name,
			"description":    req.Description,
			"area":           req.Area,
			"status":         req.Status,
			"priority":       req.Priority,
			"start_date":     startDate,
			"end_date":       endDate,
			"visibility":     models.EncodeVisibility(models.Visibility(req.Visibility)),
			"featured":       req.Featured,
			"image":          nil,
			"image_position": nil,
		}
		if req.Image != "" {
			updates["image"] = req.Image
		}
		if req.ImagePosition != "" {
			updates["image_position"] = string(models.DecodeFilePosition(req.ImagePosition))
		}

		if err := tx.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		return reconcileFiles(tx, id, req.Files)
	})
	if err != nil {
		return nil, err
	}

	return s.GetProjectByID(id, QueryOptions{})
}

func (s *ProjectService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

type groupCount struct {
	Key   string
	Count int64
}

// Metrics aggregates project counts by area and status. Counts are over all
// projects; the dashboard consuming them is itself behind the visibility
// rules on the detail endpoints.
func (s *ProjectService) Metrics() (*dto.MetricsResponse, error) {
	byArea, err := s.groupCount("area")
	if err != nil {
		return nil, err
	}
	byStatus, err := s.groupCount("status")
	if err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, err
	}

	return &dto.MetricsResponse{ByArea: byArea, ByStatus: byStatus, Total: total}, nil
}

func (s *ProjectService) groupCount(column string) (map[string]int64, error) {
	var rows []groupCount
	err := s.db.Model(&models.Project{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Count
	}
	return result, nil
}

// fileReconciliation partitions submitted files by the presence of an id.
type fileReconciliation struct {
	keepIDs []uuid.UUID
	creates []dto.ProjectFileInput
	updates []dto.ProjectFileInput
}

func splitFileInputs(files []dto.ProjectFileInput) fileReconciliation {
	var rec fileReconciliation
	for _, f := range files {
		if f.ID == "" {
			rec.creates = append(rec.creates, f)
			continue
		}
		id, err := uuid.Parse(f.ID)
		if err != nil {
			// An unparseable id cannot match a stored row; insert as new.
			rec.creates = append(rec.creates, f)
			continue
		}
		rec.keepIDs = append(rec.keepIDs, id)
		rec.updates = append(rec.updates, f)
	}
	return rec
}

func reconcileFiles(tx *gorm.DB, projectID uuid.UUID, files []dto.ProjectFileInput) error {
	rec := splitFileInputs(files)

	del := tx.Where("project_id = ?", projectID)
	if len(rec.keepIDs) > 0 {
		del = del.Where("id NOT IN ?", rec.keepIDs)
	}
	if err := del.Delete(&models.ProjectFile{}).Error; err != nil {
		return err
	}

	for _, f := range rec.creates {
		file := newProjectFile(projectID, f)
		if err := tx.Create(&file).Error; err != nil {
			return err
		}
	}

	for _, f := range rec.updates {
		updates := map[string]interface{}{
			"name":      f.Name,
			"url":       f.URL,
			"mime_type": f.MimeType,
			"category":  models.EncodeFileCategory(models.FileCategory(f.Category)),
			"position":  string(models.DecodeFilePosition(f.Position)),
		}
		err := tx.Model(&models.ProjectFile{}).
			Where("id = ? AND project_id = ?", f.ID, projectID).
			Updates(updates).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func newProjectFile(projectID uuid.UUID, f dto.ProjectFileInput) models.ProjectFile {
	pos := string(models.DecodeFilePosition(f.Position))
	return models.ProjectFile{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      f.Name,
		URL:       f.URL,
		MimeType:  f.MimeType,
		Category:  models.EncodeFileCategory(models.FileCategory(f.Category)),
		Position:  &pos,
	}
}

func mapProjects(projects []models.Project) []dto.ProjectResponse {
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, dto.MapProject(p))
	}
	return out
}
