package services

import (
	"testing"

	"github.com/gestaopublica/painel-projetos/internal/dto"
	"github.com/gestaopublica/painel-projetos/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestSplitFileInputsPartitionsByID(t *testing.T) {
	existing := uuid.New()
	files := []dto.ProjectFileInput{
		{Name: "novo.pdf", URL: "https://cdn.example.org/novo.pdf", MimeType: "application/pdf"},
		{ID: existing.String(), Name: "mantido.png", URL: "https://cdn.example.org/mantido.png", MimeType: "image/png"},
	}

	rec := splitFileInputs(files)

	require.Len(t, rec.creates, 1)
	assert.Equal(t, "novo.pdf", rec.creates[0].Name)
	require.Len(t, rec.updates, 1)
	assert.Equal(t, "mantido.png", rec.updates[0].Name)
	require.Len(t, rec.keepIDs, 1)
	assert.Equal(t, existing, rec.keepIDs[0])
}

func TestSplitFileInputsTreatsBadIDAsNew(t *testing.T) {
	files := []dto.ProjectFileInput{
		{ID: "not-a-uuid", Name: "x.png", URL: "https://cdn.example.org/x.png", MimeType: "image/png"},
	}

	rec := splitFileInputs(files)

	assert.Len(t, rec.creates, 1)
	assert.Empty(t, rec.updates)
	assert.Empty(t, rec.keepIDs)
}

func TestSplitFileInputsEmpty(t *testing.T) {
	rec := splitFileInputs(nil)
	assert.Empty(t, rec.keepIDs)
	assert.Empty(t, rec.creates)
	assert.Empty(t, rec.updates)
}

func TestVisibilityScopeRestrictsAnonymousReads(t *testing.T) {
	db := dryRunDB(t)

	stmt := db.Model(&models.Project{}).
		Scopes(visibilityScope(PublicOnly())).
		Find(&[]models.Project{}).Statement

	assert.Contains(t, stmt.SQL.String(), "visibility = ")
	assert.Contains(t, stmt.Vars, "PUBLIC")
}

func TestVisibilityScopeUnsetReturnsEverything(t *testing.T) {
	db := dryRunDB(t)

	stmt := db.Model(&models.Project{}).
		Scopes(visibilityScope(QueryOptions{})).
		Find(&[]models.Project{}).Statement

	assert.NotContains(t, stmt.SQL.String(), "visibility")
}

func TestNewProjectFileNormalizesEnums(t *testing.T) {
	projectID := uuid.New()
	file := newProjectFile(projectID, dto.ProjectFileInput{
		Name:     "capa.png",
		URL:      "https://cdn.example.org/capa.png",
		MimeType: "image/png",
		Category: "destaque",
		Position: "TOPO",
	})

	assert.Equal(t, projectID, file.ProjectID)
	assert.Equal(t, "DESTAQUE", file.Category)
	require.NotNil(t, file.Position)
	assert.Equal(t, "center", *file.Position)
}
