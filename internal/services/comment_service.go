package services

import (
	"encoding/json"
	"errors"

	"github.com/gestaopublica/painel-projetos/internal/dto"
	"github.com/gestaopublica/painel-projetos/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) List(projectID uuid.UUID) ([]dto.CommentResponse, error) {
	var comments []models.ProjectComment
	err := s.db.Preload("Author").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, dto.MapComment(c))
	}
	return out, nil
}

func (s *CommentService) Create(projectID, authorID uuid.UUID, req *dto.CommentRequest) (*dto.CommentResponse, error) {
	attachments, err := marshalAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}

	comment := models.ProjectComment{
		ID:          uuid.New(),
		ProjectID:   projectID,
		AuthorID:    authorID,
		Content:     req.Content,
		Attachments: attachments,
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	return s.get(comment.ID)
}

// Update replaces the content and, when provided, the attachment list. A nil
// attachment list leaves the stored attachments untouched.
func (s *CommentService) Update(commentID uuid.UUID, req *dto.CommentRequest) (*dto.CommentResponse, error) {
	updates := map[string]interface{}{"content": req.Content}
	if req.Attachments != nil {
		attachments, err := marshalAttachments(req.Attachments)
		if err != nil {
			return nil, err
		}
		updates["attachments"] = attachments
	}

	result := s.db.Model(&models.ProjectComment{}).Where("id = ?", commentID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCommentNotFound
	}

	return s.get(commentID)
}

func (s *CommentService) Delete(commentID uuid.UUID) error {
	result := s.db.Delete(&models.ProjectComment{}, "id = ?", commentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (s *CommentService) get(commentID uuid.UUID) (*dto.CommentResponse, error) {
	var comment models.ProjectComment
	err := s.db.Preload("Author").First(&comment, "id = ?", commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	resp := dto.MapComment(comment)
	return &resp, nil
}

func marshalAttachments(attachments []dto.CommentAttachment) (datatypes.JSON, error) {
	if attachments == nil {
		attachments = []dto.CommentAttachment{}
	}
	b, err := json.Marshal(attachments)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
