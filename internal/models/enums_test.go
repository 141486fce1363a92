package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeFileCategoryFallsBackToAnexo(t *testing.T) {
	assert.Equal(t, FileAnexo, DecodeFileCategory(""))
	assert.Equal(t, FileAnexo, DecodeFileCategory("banner"))
	assert.Equal(t, FileAnexo, DecodeFileCategory("ANEXO"))
	assert.Equal(t, FileBackground, DecodeFileCategory("BACKGROUND"))
	assert.Equal(t, FileDestaque, DecodeFileCategory("destaque"))
	assert.Equal(t, FileComprovacao, DecodeFileCategory("Comprovacao"))
}

func TestDecodeFilePositionFallsBackToCenter(t *testing.T) {
	assert.Equal(t, PositionCenter, DecodeFilePosition(""))
	assert.Equal(t, PositionCenter, DecodeFilePosition("middle"))
	assert.Equal(t, PositionTop, DecodeFilePosition("TOP"))
	assert.Equal(t, PositionBottom, DecodeFilePosition("bottom"))
}

func TestDecodeTaskStatus(t *testing.T) {
	assert.Equal(t, TaskConcluida, DecodeTaskStatus("CONCLUIDA"))
	assert.Equal(t, TaskEmAndamento, DecodeTaskStatus("em_andamento"))
	assert.Equal(t, TaskNaoIniciada, DecodeTaskStatus(""))
	assert.Equal(t, TaskNaoIniciada, DecodeTaskStatus("garbage"))
}

func TestDecodeTimelineTypeFallsBackToMarco(t *testing.T) {
	assert.Equal(t, TimelineMarco, DecodeTimelineType(""))
	assert.Equal(t, TimelineMarco, DecodeTimelineType("milestone"))
	assert.Equal(t, TimelineTarefa, DecodeTimelineType("TAREFA"))
	assert.Equal(t, TimelineFase, DecodeTimelineType("fase"))
}

func TestVisibilityRoundTrip(t *testing.T) {
	assert.Equal(t, "PUBLIC", EncodeVisibility(VisibilityPublic))
	assert.Equal(t, "RESTRICTED", EncodeVisibility(VisibilityRestricted))
	assert.Equal(t, VisibilityRestricted, DecodeVisibility("RESTRICTED"))
	// Unknown stored values are treated as public.
	assert.Equal(t, VisibilityPublic, DecodeVisibility(""))
	assert.Equal(t, VisibilityPublic, DecodeVisibility("internal"))
}

func TestIsValidArea(t *testing.T) {
	assert.True(t, IsValidArea("civel"))
	assert.True(t, IsValidArea("tecnologia"))
	assert.False(t, IsValidArea("Civel"))
	assert.False(t, IsValidArea("juridico"))
	assert.False(t, IsValidArea(""))
}
