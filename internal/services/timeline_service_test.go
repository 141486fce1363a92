package services

import (
	"testing"

	"github.com/gestaopublica/painel-projetos/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTimelineCreateRejectsBadDatesByField(t *testing.T) {
	svc := NewTimelineService(nil)

	_, err := svc.Create(uuid.New(), &dto.TimelineEntryRequest{
		Label:     "Entrega",
		StartDate: "01/02/2026",
		EndDate:   "2026-02-28",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
	var dateErr *InvalidDateError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "startDate", dateErr.Field)

	_, err = svc.Create(uuid.New(), &dto.TimelineEntryRequest{
		Label:     "Entrega",
		StartDate: "2026-02-01",
		EndDate:   "fim de março",
	})
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "endDate", dateErr.Field)
}

func TestTimelineUpdateRejectsBadDatesByField(t *testing.T) {
	svc := NewTimelineService(nil)

	_, err := svc.Update(uuid.New(), &dto.TimelineEntryUpdateRequest{
		StartDate: strPtr("ontem"),
	})
	require.Error(t, err)
	var dateErr *InvalidDateError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "startDate", dateErr.Field)

	_, err = svc.Update(uuid.New(), &dto.TimelineEntryUpdateRequest{
		EndDate: strPtr("amanhã"),
	})
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "endDate", dateErr.Field)
}

func TestTimelineUpdateRejectsMalformedTaskID(t *testing.T) {
	svc := NewTimelineService(nil)

	_, err := svc.Update(uuid.New(), &dto.TimelineEntryUpdateRequest{
		TaskID: strPtr("not-a-uuid"),
	})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTimelineCreateRejectsMalformedTaskID(t *testing.T) {
	svc := NewTimelineService(nil)

	_, err := svc.Create(uuid.New(), &dto.TimelineEntryRequest{
		Label:     "Entrega",
		StartDate: "2026-02-01",
		EndDate:   "2026-02-28",
		TaskID:    strPtr("not-a-uuid"),
	})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
