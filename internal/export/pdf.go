package export

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/SirClappington/seo-architect/internal/models"
)

// UTF-8 fonts for text outside cp1252, such as ₹ prices.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	regularFont []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	boldFont []byte
)

const fontFamily = "DejaVu"

const (
	pageMargin    = 15.0
	lineHeight    = 6.0
	headingHeight = 9.0
	sectionGap    = 4.0
	bulletIndent  = 6.0
)

// WriteListingPDF renders the listing as an A4 document and writes it to w.
func WriteListingPDF(w io.Writer, productName string, l *models.ProductListing) error {
	pdf := renderListingPDF(productName, l)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

type pdfRenderer struct {
	pdf        *fpdf.Fpdf
	width      float64
	pageBottom float64
}

func renderListingPDF(productName string, l *models.ProductListing) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.SetTitle(productName, true)
	pdf.SetCreator("seo-architect", true)
	pdf.AddUTF8FontFromBytes(fontFamily, "", regularFont)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", boldFont)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	r := &pdfRenderer{
		pdf:        pdf,
		width:      pageWidth - 2*pageMargin,
		pageBottom: pageHeight - pageMargin,
	}

	r.titleBlock(productName)

	r.heading("Website Title")
	r.paragraph(l.ProductTitleWebsite, 0, "")
	r.heading("Amazon Title")
	r.paragraph(l.ProductTitleAmazon, 0, "")

	r.heading("Bullet Points")
	if len(l.BulletPoints) == 0 {
		r.paragraph("", 0, "")
	}
	for _, bp := range l.BulletPoints {
		r.paragraph(bp, bulletIndent, "•")
	}

	r.heading("SEO Description")
	r.paragraph(l.SEODescription, 0, "")

	r.heading("Technical Specifications")
	if len(l.TechnicalSpecifications) == 0 {
		r.paragraph("", 0, "")
	}
	for _, s := range l.TechnicalSpecifications {
		r.paragraph(string(s.Name+": "+s.Value), 0, "")
	}

	r.heading("Meta Title")
	r.paragraph(l.MetaTitle, 0, "")
	r.heading("Meta Description")
	r.paragraph(l.MetaDescription, 0, "")
	r.heading("Keywords")
	r.paragraph(strings.Join(l.SearchKeywords, ", "), 0, "")

	return pdf
}

// ensureSpace starts a new page when fewer than h millimetres remain.
func (r *pdfRenderer) ensureSpace(h float64) {
	if r.pdf.GetY()+h > r.pageBottom {
		r.pdf.AddPage()
	}
}

func (r *pdfRenderer) titleBlock(productName string) {
	r.pdf.SetFont(fontFamily, "B", 18)
	r.pdf.SetTextColor(30, 64, 175)
	for _, line := range r.pdf.SplitText(pdfText(productName), r.width) {
		r.pdf.CellFormat(r.width, 10, line, "", 1, "L", false, 0, "")
	}
	r.pdf.SetFont(fontFamily, "", 10)
	r.pdf.SetTextColor(100, 116, 139)
	r.pdf.CellFormat(r.width, lineHeight, "Product listing", "", 1, "L", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.Ln(sectionGap)
}

// heading keeps the section title on the same page as the first body line.
func (r *pdfRenderer) heading(text string) {
	r.ensureSpace(sectionGap + headingHeight + lineHeight)
	r.pdf.Ln(sectionGap)
	r.pdf.SetFont(fontFamily, "B", 13)
	r.pdf.SetTextColor(15, 23, 42)
	r.pdf.CellFormat(r.width, headingHeight, pdfText(text), "", 1, "L", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
}

// paragraph writes text wrapped to the content width. A block that fits on
// one page is moved whole to the next page when it does not fit here; longer
// blocks break line by line.
func (r *pdfRenderer) paragraph(text string, indent float64, marker string) {
	if strings.TrimSpace(text) == "" {
		text = "-"
	}

	r.pdf.SetFont(fontFamily, "", 11)
	width := r.width - indent

	var lines []string
	for _, para := range strings.Split(pdfText(text), "\n") {
		lines = append(lines, r.pdf.SplitText(para, width)...)
	}
	if len(lines) == 0 {
		return
	}

	blockHeight := float64(len(lines)) * lineHeight
	if blockHeight <= r.pageBottom-pageMargin {
		r.ensureSpace(blockHeight)
	}

	for i, line := range lines {
		r.ensureSpace(lineHeight)
		if marker != "" && i == 0 {
			r.pdf.SetX(pageMargin)
			r.pdf.CellFormat(indent, lineHeight, marker, "", 0, "L", false, 0, "")
		}
		r.pdf.SetX(pageMargin + indent)
		r.pdf.CellFormat(width, lineHeight, line, "", 1, "L", false, 0, "")
	}
}

// pdfText replaces runes outside the Basic Multilingual Plane, which the
// embedded fonts cannot address, with '?'.
func pdfText(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFFFF {
			return '?'
		}
		return r
	}, s)
}
