package export

import (
	"strings"

	"github.com/SirClappington/seo-architect/internal/models"
)

// CategoryLines renders one "product -> category" line per mapping.
func CategoryLines(mappings []models.CategoryMapping) string {
	lines := make([]string, len(mappings))
	for i, m := range mappings {
		lines[i] = m.ProductName + " -> " + m.AssignedCategory
	}
	return strings.Join(lines, "\n")
}
