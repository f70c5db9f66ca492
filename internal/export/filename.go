package export

import "strings"

const (
	CSVContentType = "text/csv; charset=utf-8"
	PDFContentType = "application/pdf"
)

// FilenameStem lowercases productName and replaces every character that is
// not an ASCII letter or digit with an underscore, one per character.
func FilenameStem(productName string) string {
	var b strings.Builder
	for _, r := range productName {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func CSVFilename(productName string) string {
	return FilenameStem(productName) + "_listing.csv"
}

func PDFFilename(productName string) string {
	return FilenameStem(productName) + "_listing.pdf"
}
