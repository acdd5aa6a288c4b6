package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adnahmed/gaze-stars/internal/core/domain"
)

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestApplyTemplate(t *testing.T) {
	t.Run("substitutes trimmed content for the token", func(t *testing.T) {
		path := writeTemplate(t, "# Header\n\n[[GENERATE HERE]]\n")

		out, err := ApplyTemplate(path, "\n## Body\n\n")

		require.NoError(t, err)
		assert.Equal(t, "# Header\n\n## Body\n", out)
	})

	t.Run("missing template is fatal", func(t *testing.T) {
		_, err := ApplyTemplate(filepath.Join(t.TempDir(), "absent.md"), "content")

		assert.Error(t, err)
	})

	t.Run("template without token is fatal", func(t *testing.T) {
		path := writeTemplate(t, "# No placeholder here\n")

		_, err := ApplyTemplate(path, "content")

		assert.ErrorIs(t, err, domain.ErrTemplateToken)
	})
}
