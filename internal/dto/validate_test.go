package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsJSONFieldNames(t *testing.T) {
	req := RegisterRequest{
		Name:     "Ana",
		Email:    "not-an-email",
		Password: "123",
	}

	fields := Validate(req)
	require.NotNil(t, fields)
	assert.Equal(t, "Informe um e-mail válido.", fields["email"])
	assert.Contains(t, fields["password"], "mínimo")
	assert.NotContains(t, fields, "name")
}

func TestValidateNestedFileInput(t *testing.T) {
	req := ProjectRequest{
		Name:        "Projeto Piloto",
		Description: "Descrição mínima",
		Area:        "tecnologia",
		StartDate:   "2026-01-01",
		EndDate:     "2026-06-01",
		Files: []ProjectFileInput{
			{Name: "foto.png", URL: "nope", MimeType: "image/png"},
		},
	}

	fields := Validate(req)
	require.NotNil(t, fields)
	assert.Equal(t, "Informe uma URL válida.", fields["files[0].url"])
}

func TestValidateRejectsUnknownEnumValue(t *testing.T) {
	req := ProjectRequest{
		Name:        "Projeto Piloto",
		Description: "Descrição mínima",
		Area:        "juridico",
		StartDate:   "2026-01-01",
		EndDate:     "2026-06-01",
	}

	fields := Validate(req)
	require.NotNil(t, fields)
	assert.Contains(t, fields["area"], "conjunto permitido")
}

func TestValidatePassesCompleteRequest(t *testing.T) {
	req := ProjectRequest{
		Name:        "Projeto Piloto",
		Description: "Descrição mínima",
		Area:        "tecnologia",
		Status:      "em_andamento",
		Priority:    "alta",
		Visibility:  "restricted",
		StartDate:   "2026-01-01",
		EndDate:     "2026-06-01",
	}

	assert.Nil(t, Validate(req))
}

func TestValidateTimelineUpdateTaskID(t *testing.T) {
	bad := "not-a-uuid"
	fields := Validate(TimelineEntryUpdateRequest{TaskID: &bad})
	require.NotNil(t, fields)
	assert.Equal(t, "Informe um identificador válido.", fields["taskId"])

	// An empty taskId clears the link and must keep validating.
	empty := ""
	assert.Nil(t, Validate(TimelineEntryUpdateRequest{TaskID: &empty}))

	valid := "0c7f1f77-bcf8-4f6e-9f30-b2f1a6d04f11"
	assert.Nil(t, Validate(TimelineEntryUpdateRequest{TaskID: &valid}))
}

func TestParseDateAcceptsBothFormats(t *testing.T) {
	bare, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), bare)

	full, err := ParseDate("2026-03-15T09:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 9, full.Hour())

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)
}
