package dto

import "github.com/google/uuid"

// ProjectFileInput carries a file reference submitted with a project. An
// empty ID means the file is new; a set ID matches an existing row.
type ProjectFileInput struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
	MimeType string `json:"mimeType" validate:"required"`
	Category string `json:"category,omitempty"`
	Position string `json:"position,omitempty"`
}

// ProjectRequest is used for both create and update; updates are a
// full-field overwrite, there are no partial semantics for project attributes.
type ProjectRequest struct {
	Name          string             `json:"name" validate:"required,min=3"`
	Description   string             `json:"description" validate:"required,min=10"`
	Area          string             `json:"area" validate:"required,oneof=civel criminal familia administrativo tecnologia"`
	Status        string             `json:"status" validate:"required,oneof=planejado em_andamento pausado concluido atrasado pendente"`
	Priority      string             `json:"priority" validate:"required,oneof=baixa media alta"`
	StartDate     string             `json:"startDate" validate:"required"`
	EndDate       string             `json:"endDate" validate:"required"`
	Visibility    string             `json:"visibility" validate:"required,oneof=public restricted"`
	Featured      bool               `json:"featured"`
	Image         string             `json:"image,omitempty" validate:"omitempty,url"`
	ImagePosition string             `json:"imagePosition,omitempty" validate:"omitempty,oneof=top center bottom"`
	Files         []ProjectFileInput `json:"files,omitempty" validate:"dive"`
}

type TaskRequest struct {
	Title            string  `json:"title" validate:"required,min=3"`
	Description      *string `json:"description,omitempty"`
	StartDate        *string `json:"startDate,omitempty"`
	DueDate          *string `json:"dueDate,omitempty"`
	Status           *string `json:"status,omitempty" validate:"omitempty,oneof=nao_iniciada em_andamento concluida"`
	ResponsibleEmail *string `json:"responsibleEmail,omitempty" validate:"omitempty,email"`
}

// TaskUpdateRequest has pointer fields throughout: only the provided fields
// are written.
type TaskUpdateRequest struct {
	Title            *string `json:"title,omitempty" validate:"omitempty,min=3"`
	Description      *string `json:"description,omitempty"`
	StartDate        *string `json:"startDate,omitempty"`
	DueDate          *string `json:"dueDate,omitempty"`
	Status           *string `json:"status,omitempty" validate:"omitempty,oneof=nao_iniciada em_andamento concluida"`
	ResponsibleEmail *string `json:"responsibleEmail,omitempty"`
}

type CommentAttachment struct {
	Name     string `json:"name" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
	MimeType string `json:"mimeType" validate:"required"`
}

type CommentRequest struct {
	Content     string              `json:"content" validate:"required,min=3"`
	Attachments []CommentAttachment `json:"attachments,omitempty" validate:"dive"`
}

type TimelineEntryRequest struct {
	Label       string  `json:"label" validate:"required,min=3"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"startDate" validate:"required"`
	EndDate     string  `json:"endDate" validate:"required"`
	Type        string  `json:"type" validate:"omitempty,oneof=marco tarefa fase"`
	TaskID      *string `json:"taskId,omitempty" validate:"omitempty,uuid"`
}

type TimelineEntryUpdateRequest struct {
	Label       *string `json:"label,omitempty" validate:"omitempty,min=3"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Type        *string `json:"type,omitempty" validate:"omitempty,oneof=marco tarefa fase"`
	TaskID      *string `json:"taskId,omitempty" validate:"omitempty,uuid"`
}

// --- Responses ---

type TeamMemberResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
	Avatar *string   `json:"avatar,omitempty"`
}

type ProjectFileResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	URL      string    `json:"url"`
	MimeType string    `json:"mimeType"`
	Category string    `json:"category"`
	Position string    `json:"position"`
}

type TaskUserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type TaskResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	Status      string            `json:"status"`
	StartDate   *string           `json:"startDate,omitempty"`
	DueDate     *string           `json:"dueDate,omitempty"`
	CompletedAt *string           `json:"completedAt,omitempty"`
	Responsible *TaskUserResponse `json:"responsible,omitempty"`
	Order       int               `json:"order"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

type CommentResponse struct {
	ID          uuid.UUID           `json:"id"`
	Content     string              `json:"content"`
	Attachments []CommentAttachment `json:"attachments,omitempty"`
	Author      TaskUserResponse    `json:"author"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
}

type TimelineEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	Label       string    `json:"label"`
	Description *string   `json:"description,omitempty"`
	Type        string    `json:"type"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	TaskID      *string   `json:"taskId,omitempty"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

type ProjectResponse struct {
	ID            uuid.UUID               `json:"id"`
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	Area          string                  `json:"area"`
	Status        string                  `json:"status"`
	Progress      int                     `json:"progress"`
	StartDate     string                  `json:"startDate"`
	EndDate       string                  `json:"endDate"`
	Priority      string                  `json:"priority"`
	Featured      bool                    `json:"featured"`
	Image         *string                 `json:"image,omitempty"`
	ImagePosition *string                 `json:"imagePosition,omitempty"`
	Visibility    string                  `json:"visibility"`
	CreatedByID   *string                 `json:"createdById,omitempty"`
	Team          []TeamMemberResponse    `json:"team"`
	Files         []ProjectFileResponse   `json:"files"`
	Tasks         []TaskResponse          `json:"tasks"`
	Comments      []CommentResponse       `json:"comments"`
	Timeline      []TimelineEntryResponse `json:"timeline"`
}

type MetricsResponse struct {
	ByArea   map[string]int64 `json:"byArea"`
	ByStatus map[string]int64 `json:"byStatus"`
	Total    int64            `json:"total"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
