// Package export renders generated listings and category mappings into
// downloadable files.
package export

import (
	"fmt"
	"strings"

	"github.com/SirClappington/seo-architect/internal/models"
)

// CSVColumns is the header row of a listing CSV export.
var CSVColumns = []string{
	"Product Name Input",
	"Website Title",
	"Amazon Title",
	"Bullet Points",
	"SEO Description",
	"Technical Specs",
	"Search Keywords",
	"Meta Title",
	"Meta Description",
	"Suggested Tags",
}

// ListingCSV renders a header row and a single data row. Header cells are
// written as-is; every data cell is quoted with embedded quotes doubled.
// There is no trailing newline.
func ListingCSV(productName string, l *models.ProductListing) []byte {
	row := []string{
		productName,
		l.ProductTitleWebsite,
		l.ProductTitleAmazon,
		strings.Join(l.BulletPoints, "\n"),
		l.SEODescription,
		joinSpecs(l.TechnicalSpecifications),
		strings.Join(l.SearchKeywords, ", "),
		l.MetaTitle,
		l.MetaDescription,
		strings.Join(l.SuggestedTags, ", "),
	}

	quoted := make([]string, len(row))
	for i, field := range row {
		quoted[i] = quoteCSV(field)
	}

	return []byte(strings.Join(CSVColumns, ",") + "\n" + strings.Join(quoted, ","))
}

func joinSpecs(specs []models.TechnicalSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = fmt.Sprintf("%s: %s", s.Name, s.Value)
	}
	return strings.Join(parts, "; ")
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
