package services

import (
	"testing"
	"time"

	"github.com/gestaopublica/painel-projetos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletedAtStampedOnConcluida(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	stamped := completedAtFor(models.TaskConcluida, now)
	require.NotNil(t, stamped)
	assert.Equal(t, now, *stamped)
}

func TestCompletedAtClearedOnOtherStatuses(t *testing.T) {
	now := time.Now().UTC()

	assert.Nil(t, completedAtFor(models.TaskNaoIniciada, now))
	assert.Nil(t, completedAtFor(models.TaskEmAndamento, now))
}

func TestFindUserIDByEmailSkipsBlankInput(t *testing.T) {
	svc := NewTaskService(nil)

	id, err := svc.findUserIDByEmail(nil)
	require.NoError(t, err)
	assert.Nil(t, id)

	blank := "   "
	id, err = svc.findUserIDByEmail(&blank)
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestParseDatePtr(t *testing.T) {
	empty := ""
	got, err := parseDatePtr(&empty)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseDatePtr(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	valid := "2026-07-01"
	got, err = parseDatePtr(&valid)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), *got)

	bad := "01/07/2026"
	_, err = parseDatePtr(&bad)
	assert.Error(t, err)
}
