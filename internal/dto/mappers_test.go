package dto

import (
	"testing"
	"time"

	"github.com/gestaopublica/painel-projetos/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func taskWithStatus(status string) models.ProjectTask {
	return models.ProjectTask{ID: uuid.New(), Status: status}
}

func TestComputeProgressFromTasks(t *testing.T) {
	tasks := []models.ProjectTask{
		taskWithStatus("CONCLUIDA"),
		taskWithStatus("CONCLUIDA"),
		taskWithStatus("EM_ANDAMENTO"),
	}
	// round(2/3*100) = 67
	assert.Equal(t, 67, ComputeProgress(tasks, 10))
}

func TestComputeProgressUsesStoredValueWithoutTasks(t *testing.T) {
	assert.Equal(t, 42, ComputeProgress(nil, 42))
	assert.Equal(t, 0, ComputeProgress([]models.ProjectTask{}, 0))
}

func TestComputeProgressAllDone(t *testing.T) {
	tasks := []models.ProjectTask{taskWithStatus("CONCLUIDA")}
	assert.Equal(t, 100, ComputeProgress(tasks, 0))
}

func TestMapFileNormalizesCategoryAndPosition(t *testing.T) {
	resp := MapFile(models.ProjectFile{
		ID:       uuid.New(),
		Name:     "edital.pdf",
		URL:      "https://cdn.example.org/edital.pdf",
		MimeType: "application/pdf",
		Category: "BANNER",
	})

	assert.Equal(t, "anexo", resp.Category)
	assert.Equal(t, "center", resp.Position)
}

func TestMapTaskOmitsAbsentDates(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	resp := MapTask(models.ProjectTask{
		ID:        uuid.New(),
		Title:     "Levantar requisitos",
		Status:    "NAO_INICIADA",
		CreatedAt: now,
		UpdatedAt: now,
	})

	assert.Nil(t, resp.StartDate)
	assert.Nil(t, resp.DueDate)
	assert.Nil(t, resp.CompletedAt)
	assert.Nil(t, resp.Responsible)
	assert.Equal(t, "nao_iniciada", resp.Status)
	assert.Equal(t, "2026-03-10T12:00:00Z", resp.CreatedAt)
}

func TestMapTaskIncludesResponsible(t *testing.T) {
	userID := uuid.New()
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	resp := MapTask(models.ProjectTask{
		ID:     uuid.New(),
		Title:  "Publicar relatório",
		Status: "CONCLUIDA",
		Responsible: &models.User{
			ID:    userID,
			Name:  "Ana Souza",
			Email: "ana@example.org",
		},
		DueDate: &due,
	})

	require.NotNil(t, resp.Responsible)
	assert.Equal(t, userID, resp.Responsible.ID)
	require.NotNil(t, resp.DueDate)
	assert.Equal(t, "2026-05-01T00:00:00Z", *resp.DueDate)
}

func TestMapCommentParsesAttachments(t *testing.T) {
	comment := models.ProjectComment{
		ID:      uuid.New(),
		Content: "Segue o comprovante.",
		Author:  models.User{ID: uuid.New(), Name: "Bruno", Email: "bruno@example.org"},
		Attachments: datatypes.JSON([]byte(
			`[{"name":"nota.pdf","url":"https://cdn.example.org/nota.pdf","mimeType":"application/pdf"}]`,
		)),
	}

	resp := MapComment(comment)
	require.Len(t, resp.Attachments, 1)
	assert.Equal(t, "nota.pdf", resp.Attachments[0].Name)
}

func TestMapCommentIgnoresMalformedAttachments(t *testing.T) {
	comment := models.ProjectComment{
		ID:          uuid.New(),
		Content:     "sem anexos",
		Author:      models.User{ID: uuid.New()},
		Attachments: datatypes.JSON([]byte(`{"not":"an array"}`)),
	}

	assert.Nil(t, MapComment(comment).Attachments)
}

func TestMapProjectComputesProgressAndVisibility(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	project := models.Project{
		ID:          uuid.New(),
		Name:        "Portal da Transparência",
		Description: "Reestruturação do portal",
		Area:        "tecnologia",
		Status:      "em_andamento",
		Progress:    15,
		StartDate:   start,
		EndDate:     start.AddDate(0, 6, 0),
		Priority:    "alta",
		Visibility:  "RESTRICTED",
		Tasks: []models.ProjectTask{
			taskWithStatus("CONCLUIDA"),
			taskWithStatus("NAO_INICIADA"),
		},
	}

	resp := MapProject(project)

	// Stored progress is ignored once tasks exist.
	assert.Equal(t, 50, resp.Progress)
	assert.Equal(t, "restricted", resp.Visibility)
	assert.NotNil(t, resp.Files)
	assert.NotNil(t, resp.Comments)
	assert.Nil(t, resp.CreatedByID)
}

func TestMapTimelineEntryDecodesType(t *testing.T) {
	taskID := uuid.New()
	entry := models.ProjectTimelineEntry{
		ID:        uuid.New(),
		Label:     "Entrega da fase 1",
		Type:      "FASE",
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		TaskID:    &taskID,
	}

	resp := MapTimelineEntry(entry)
	assert.Equal(t, "fase", resp.Type)
	require.NotNil(t, resp.TaskID)
	assert.Equal(t, taskID.String(), *resp.TaskID)
}
