package models

import "strings"

// Enum values mirror what the frontend submits. Visibility, task status,
// timeline type and file category are persisted upper-case; the Decode
// functions bring any stored value back to the API representation, falling
// back to a safe default instead of letting unknown data leak through.

type Area string

const (
	AreaCivel          Area = "civel"
	AreaCriminal       Area = "criminal"
	AreaFamilia        Area = "familia"
	AreaAdministrativo Area = "administrativo"
	AreaTecnologia     Area = "tecnologia"
)

var Areas = []Area{AreaCivel, AreaCriminal, AreaFamilia, AreaAdministrativo, AreaTecnologia}

func IsValidArea(s string) bool {
	for _, a := range Areas {
		if string(a) == s {
			return true
		}
	}
	return false
}

type ProjectStatus string

const (
	StatusPlanejado   ProjectStatus = "planejado"
	StatusEmAndamento ProjectStatus = "em_andamento"
	StatusPausado     ProjectStatus = "pausado"
	StatusConcluido   ProjectStatus = "concluido"
	StatusAtrasado    ProjectStatus = "atrasado"
	StatusPendente    ProjectStatus = "pendente"
)

type Priority string

const (
	PriorityBaixa Priority = "baixa"
	PriorityMedia Priority = "media"
	PriorityAlta  Priority = "alta"
)

type Visibility string

const (
	VisibilityPublic     Visibility = "public"
	VisibilityRestricted Visibility = "restricted"
)

// DecodeVisibility maps a stored value ("PUBLIC"/"RESTRICTED") to the API
// representation. Anything unrecognized is treated as public.
func DecodeVisibility(s string) Visibility {
	if strings.ToLower(s) == "restricted" {
		return VisibilityRestricted
	}
	return VisibilityPublic
}

// EncodeVisibility returns the persisted form.
func EncodeVisibility(v Visibility) string {
	if v == VisibilityRestricted {
		return "RESTRICTED"
	}
	return "PUBLIC"
}

type TaskStatus string

const (
	TaskNaoIniciada TaskStatus = "nao_iniciada"
	TaskEmAndamento TaskStatus = "em_andamento"
	TaskConcluida   TaskStatus = "concluida"
)

func DecodeTaskStatus(s string) TaskStatus {
	switch strings.ToLower(s) {
	case "em_andamento":
		return TaskEmAndamento
	case "concluida":
		return TaskConcluida
	default:
		return TaskNaoIniciada
	}
}

func EncodeTaskStatus(s TaskStatus) string {
	return strings.ToUpper(string(DecodeTaskStatus(string(s))))
}

type TimelineType string

const (
	TimelineMarco  TimelineType = "marco"
	TimelineTarefa TimelineType = "tarefa"
	TimelineFase   TimelineType = "fase"
)

func DecodeTimelineType(s string) TimelineType {
	switch strings.ToLower(s) {
	case "tarefa":
		return TimelineTarefa
	case "fase":
		return TimelineFase
	default:
		return TimelineMarco
	}
}

func EncodeTimelineType(t TimelineType) string {
	return strings.ToUpper(string(DecodeTimelineType(string(t))))
}

type FileCategory string

const (
	FileAnexo       FileCategory = "anexo"
	FileComprovacao FileCategory = "comprovacao"
	FileDestaque    FileCategory = "destaque"
	FileBackground  FileCategory = "background"
)

// DecodeFileCategory normalizes a stored category, falling back to "anexo".
func DecodeFileCategory(s string) FileCategory {
	switch strings.ToLower(s) {
	case "background":
		return FileBackground
	case "destaque":
		return FileDestaque
	case "comprovacao":
		return FileComprovacao
	default:
		return FileAnexo
	}
}

func EncodeFileCategory(c FileCategory) string {
	return strings.ToUpper(string(DecodeFileCategory(string(c))))
}

type FilePosition string

const (
	PositionTop    FilePosition = "top"
	PositionCenter FilePosition = "center"
	PositionBottom FilePosition = "bottom"
)

// DecodeFilePosition normalizes a stored crop position, falling back to "center".
func DecodeFilePosition(s string) FilePosition {
	switch strings.ToLower(s) {
	case "top":
		return PositionTop
	case "bottom":
		return PositionBottom
	default:
		return PositionCenter
	}
}

func EncodeFilePosition(p FilePosition) string {
	return string(DecodeFilePosition(string(p)))
}
