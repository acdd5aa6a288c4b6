package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/adnahmed/gaze-stars/internal/core/domain"
)

// PlaceholderToken marks where the generated content goes in a template.
const PlaceholderToken = "[[GENERATE HERE]]"

// ApplyTemplate reads the template file and substitutes the generated
// content (trimmed of surrounding whitespace) for the placeholder token.
// A missing template or a template without the token is fatal.
func ApplyTemplate(templatePath, content string) (string, error) {
	tmpl, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", templatePath, err)
	}

	text := string(tmpl)
	if !strings.Contains(text, PlaceholderToken) {
		return "", fmt.Errorf("template %s: %w", templatePath, domain.ErrTemplateToken)
	}

	return strings.ReplaceAll(text, PlaceholderToken, strings.TrimSpace(content)), nil
}
