package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SirClappington/seo-architect/internal/models"
)

func sampleListing() *models.ProductListing {
	return &models.ProductListing{
		ProductTitleWebsite:     "Ai-WB2-32S Kit",
		ProductTitleAmazon:      "Ai-Thinker Ai-WB2-32S Kit",
		BulletPoints:            []string{"A", "B"},
		SEODescription:          "Compact Wi-Fi board.",
		TechnicalSpecifications: []models.TechnicalSpec{{Name: "X", Value: `1"in`}},
		SearchKeywords:          []string{"k1", "k2"},
		MetaTitle:               "Meta",
		MetaDescription:         "Meta description",
		SuggestedTags:           []string{"Wireless", "Boards"},
	}
}

func TestListingCSV(t *testing.T) {
	out := ListingCSV("Ai-WB2-32S Kit", sampleListing())

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, CSVColumns, records[0])
	assert.Equal(t, []string{
		"Ai-WB2-32S Kit",
		"Ai-WB2-32S Kit",
		"Ai-Thinker Ai-WB2-32S Kit",
		"A\nB",
		"Compact Wi-Fi board.",
		`X: 1"in`,
		"k1, k2",
		"Meta",
		"Meta description",
		"Wireless, Boards",
	}, records[1])

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "Product Name Input,Website Title,Amazon Title,"))
	assert.Contains(t, text, `"X: 1""in"`)
	assert.Contains(t, text, "\"A\nB\"")
	assert.False(t, strings.HasSuffix(text, "\n"))
}

func TestListingCSV_EmptyLists(t *testing.T) {
	out := ListingCSV("Kit", &models.ProductListing{ProductTitleWebsite: "Kit"})

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[1][5])
	assert.True(t, strings.HasSuffix(string(out), `,"","","","",""`))
}

func TestFilenameStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Ai-WB2-32S-Kit", want: "ai_wb2_32s_kit"},
		{in: "Ai-WB2 32S!! Kit", want: "ai_wb2_32s___kit"},
		{in: "XR2206 Signal Generator", want: "xr2206_signal_generator"},
		{in: "₹ Deal", want: "__deal"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FilenameStem(tt.in))
		})
	}

	assert.Equal(t, "xr2206_listing.csv", CSVFilename("XR2206"))
	assert.Equal(t, "xr2206_listing.pdf", PDFFilename("XR2206"))
}

func TestCategoryLines(t *testing.T) {
	got := CategoryLines([]models.CategoryMapping{
		{ProductName: "Li-Ion 18650 Cell", AssignedCategory: "Batteries & Chargers / Li-Ion"},
		{ProductName: "MT02DX Stripper", AssignedCategory: "Tools & Measuring Instruments / Strippers & Cutters"},
	})

	assert.Equal(t, "Li-Ion 18650 Cell -> Batteries & Chargers / Li-Ion\nMT02DX Stripper -> Tools & Measuring Instruments / Strippers & Cutters", got)
	assert.Equal(t, "", CategoryLines(nil))
}

func TestWriteListingPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteListingPDF(&buf, "Ai-WB2-32S Kit", sampleListing()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRenderListingPDF_Paginates(t *testing.T) {
	short := renderListingPDF("Kit", sampleListing())
	require.NoError(t, short.Error())
	assert.Equal(t, 1, short.PageCount())

	long := sampleListing()
	long.SEODescription = strings.Repeat("This board pairs Wi-Fi and Bluetooth LE in a compact module. ", 60)
	for i := 0; i < 40; i++ {
		long.BulletPoints = append(long.BulletPoints, "Another feature worth highlighting on the product page")
	}

	pdf := renderListingPDF("Kit", long)
	require.NoError(t, pdf.Error())
	assert.Greater(t, pdf.PageCount(), 1)
}

func TestRenderListingPDF_EmptyListing(t *testing.T) {
	pdf := renderListingPDF("Kit", &models.ProductListing{})
	require.NoError(t, pdf.Error())
	assert.Equal(t, 1, pdf.PageCount())
}

func TestWriteListingPDF_UnicodeText(t *testing.T) {
	l := sampleListing()
	l.SEODescription = "Price ₹1,299 • 3.3V–5V • Ω resistors • Привет 🔌"
	l.TechnicalSpecifications = []models.TechnicalSpec{{Name: "Price", Value: "₹349"}}

	var buf bytes.Buffer
	require.NoError(t, WriteListingPDF(&buf, "Кит ₹ Kit", l))

	out := buf.String()
	assert.Contains(t, out, "/Encoding /Identity-H")
	assert.NotContains(t, out, "/BaseFont /Helvetica")
}

func TestPDFText(t *testing.T) {
	assert.Equal(t, "₹349 • Ω", pdfText("₹349 • Ω"))
	assert.Equal(t, "plug ?", pdfText("plug 🔌"))
}
