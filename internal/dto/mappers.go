package dto

import (
	"encoding/json"
	"math"
	"time"

	"github.com/gestaopublica/painel-projetos/internal/models"
)

// Mapping from persisted rows to the API shapes lives here so every read
// path produces the same normalization: enum fallbacks, RFC3339 timestamps,
// omitted (not empty) absent dates, and the computed progress rule.

func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func fmtTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := fmtTime(*t)
	return &s
}

// ComputeProgress derives the displayed progress: the ratio of concluded
// tasks when any task exists, otherwise the stored column value.
func ComputeProgress(tasks []models.ProjectTask, stored int) int {
	if len(tasks) == 0 {
		return stored
	}
	done := 0
	for _, t := range tasks {
		if models.DecodeTaskStatus(t.Status) == models.TaskConcluida {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(tasks)) * 100))
}

func MapFile(f models.ProjectFile) ProjectFileResponse {
	position := ""
	if f.Position != nil {
		position = *f.Position
	}
	return ProjectFileResponse{
		ID:       f.ID,
		Name:     f.Name,
		URL:      f.URL,
		MimeType: f.MimeType,
		Category: string(models.DecodeFileCategory(f.Category)),
		Position: string(models.DecodeFilePosition(position)),
	}
}

func MapTask(t models.ProjectTask) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(models.DecodeTaskStatus(t.Status)),
		StartDate:   fmtTimePtr(t.StartDate),
		DueDate:     fmtTimePtr(t.DueDate),
		CompletedAt: fmtTimePtr(t.CompletedAt),
		Order:       t.Order,
		CreatedAt:   fmtTime(t.CreatedAt),
		UpdatedAt:   fmtTime(t.UpdatedAt),
	}
	if t.Responsible != nil {
		resp.Responsible = &TaskUserResponse{
			ID:    t.Responsible.ID,
			Name:  t.Responsible.Name,
			Email: t.Responsible.Email,
		}
	}
	return resp
}

func MapComment(c models.ProjectComment) CommentResponse {
	resp := CommentResponse{
		ID:      c.ID,
		Content: c.Content,
		Author: TaskUserResponse{
			ID:    c.Author.ID,
			Name:  c.Author.Name,
			Email: c.Author.Email,
		},
		CreatedAt: fmtTime(c.CreatedAt),
		UpdatedAt: fmtTime(c.UpdatedAt),
	}
	if len(c.Attachments) > 0 {
		var attachments []CommentAttachment
		if err := json.Unmarshal(c.Attachments, &attachments); err == nil && len(attachments) > 0 {
			resp.Attachments = attachments
		}
	}
	return resp
}

func MapTimelineEntry(e models.ProjectTimelineEntry) TimelineEntryResponse {
	resp := TimelineEntryResponse{
		ID:          e.ID,
		Label:       e.Label,
		Description: e.Description,
		Type:        string(models.DecodeTimelineType(e.Type)),
		StartDate:   fmtTime(e.StartDate),
		EndDate:     fmtTime(e.EndDate),
		CreatedAt:   fmtTime(e.CreatedAt),
		UpdatedAt:   fmtTime(e.UpdatedAt),
	}
	if e.TaskID != nil {
		s := e.TaskID.String()
		resp.TaskID = &s
	}
	return resp
}

func MapProject(p models.Project) ProjectResponse {
	team := make([]TeamMemberResponse, 0, len(p.Team))
	for _, m := range p.Team {
		team = append(team, TeamMemberResponse{
			ID:     m.ID,
			Name:   m.Name,
			Role:   m.Role,
			Avatar: m.Avatar,
		})
	}

	files := make([]ProjectFileResponse, 0, len(p.Files))
	for _, f := range p.Files {
		files = append(files, MapFile(f))
	}

	tasks := make([]TaskResponse, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, MapTask(t))
	}

	comments := make([]CommentResponse, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, MapComment(c))
	}

	timeline := make([]TimelineEntryResponse, 0, len(p.Timeline))
	for _, e := range p.Timeline {
		timeline = append(timeline, MapTimelineEntry(e))
	}

	resp := ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Area:          p.Area,
		Status:        p.Status,
		Progress:      ComputeProgress(p.Tasks, p.Progress),
		StartDate:     fmtTime(p.StartDate),
		EndDate:       fmtTime(p.EndDate),
		Priority:      p.Priority,
		Featured:      p.Featured,
		Image:         p.Image,
		ImagePosition: p.ImagePosition,
		Visibility:    string(models.DecodeVisibility(p.Visibility)),
		Team:          team,
		Files:         files,
		Tasks:         tasks,
		Comments:      comments,
		Timeline:      timeline,
	}
	if p.CreatedByID != nil {
		s := p.CreatedByID.String()
		resp.CreatedByID = &s
	}
	return resp
}

func MapRole(r models.Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Level:       r.Level,
	}
}

func MapUser(u models.User) UserResponse {
	roles := make([]RoleResponse, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, MapRole(r))
	}
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
		Roles:  roles,
	}
}
