package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedContentType(t *testing.T) {
	assert.True(t, AllowedContentType("image/png"))
	assert.True(t, AllowedContentType("image/webp"))
	assert.True(t, AllowedContentType("application/pdf"))

	assert.False(t, AllowedContentType("application/zip"))
	assert.False(t, AllowedContentType("text/html"))
	assert.False(t, AllowedContentType(""))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "relatorio-anual.pdf", SanitizeFilename("relatorio anual.pdf"))
	assert.Equal(t, "foto-da-obra.png", SanitizeFilename("  foto  da\tobra.png "))
	assert.Equal(t, "simples.png", SanitizeFilename("simples.png"))
}
