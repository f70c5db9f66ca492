package extract

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SirClappington/seo-architect/internal/models"
)

const listingJSON = `{
  "productTitleWebsite": "Ai-WB2-32S Kit",
  "productTitleAmazon": "Ai-Thinker Ai-WB2-32S NodeMCU Kit",
  "bulletPoints": ["Wi-Fi + BLE", "Onboard USB"],
  "seoDescription": "A compact board.",
  "technicalSpecifications": [{"name": "Flash", "value": "4MB"}],
  "searchKeywords": ["ai-wb2", "nodemcu"],
  "metaTitle": "Ai-WB2-32S Kit",
  "metaDescription": "Buy the kit.",
  "suggestedTags": ["Wireless"]
}`

func expectedListing() models.ProductListing {
	return models.ProductListing{
		ProductTitleWebsite:     "Ai-WB2-32S Kit",
		ProductTitleAmazon:      "Ai-Thinker Ai-WB2-32S NodeMCU Kit",
		BulletPoints:            []string{"Wi-Fi + BLE", "Onboard USB"},
		SEODescription:          "A compact board.",
		TechnicalSpecifications: []models.TechnicalSpec{{Name: "Flash", Value: "4MB"}},
		SearchKeywords:          []string{"ai-wb2", "nodemcu"},
		MetaTitle:               "Ai-WB2-32S Kit",
		MetaDescription:         "Buy the kit.",
		SuggestedTags:           []string{"Wireless"},
	}
}

func fallbackListing() models.ProductListing {
	return models.ProductListing{
		ProductTitleWebsite: "fallback",
		ProductTitleAmazon:  "fallback",
		BulletPoints:        []string{"Could not generate details."},
	}
}

func newTestExtractor(opts ...Option) (*Extractor, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return New(logger, opts...), hook
}

func TestExtract_DirectParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "bare json", input: listingJSON},
		{name: "json tagged fence", input: "```json\n" + listingJSON + "\n```"},
		{name: "bare fence", input: "```\n" + listingJSON + "\n```"},
		{name: "surrounding whitespace", input: "\n\n   ```json   " + listingJSON + "```  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, hook := newTestExtractor()

			got, outcome := Extract(e, tt.input, fallbackListing())

			assert.Equal(t, OutcomeDirect, outcome)
			assert.Equal(t, expectedListing(), got)
			assert.Empty(t, hook.AllEntries())
		})
	}
}

func TestExtract_RecoversEmbeddedJSON(t *testing.T) {
	e, hook := newTestExtractor()

	input := "Here is the listing you asked for:\n```json\n" + listingJSON + "\n```\nLet me know if you need changes!"
	got, outcome := Extract(e, input, fallbackListing())

	assert.Equal(t, OutcomeRecovered, outcome)
	assert.Equal(t, expectedListing(), got)
	require.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, logrus.WarnLevel, hook.AllEntries()[0].Level)
}

func TestExtract_RecoversArray(t *testing.T) {
	e, _ := newTestExtractor()

	input := `I found these listings: [{"competitorName":"Robu.in","productUrl":"https://robu.in/p","price":"₹349","eyeCatchingDetails":"Pinout diagram"}] Prices may vary {as of today}.`
	got, outcome := Extract(e, input, []models.CompetitorAnalysis{})

	assert.Equal(t, OutcomeRecovered, outcome)
	assert.Equal(t, []models.CompetitorAnalysis{{
		CompetitorName:     "Robu.in",
		ProductURL:         "https://robu.in/p",
		Price:              "₹349",
		EyeCatchingDetails: "Pinout diagram",
	}}, got)
}

func TestExtract_NumericTextLeaves(t *testing.T) {
	e, hook := newTestExtractor()

	input := `[{"competitorName":"Robu","productUrl":"u","price":1299,"eyeCatchingDetails":"Kit"}]`
	got, outcome := Extract(e, input, []models.CompetitorAnalysis{})

	assert.Equal(t, OutcomeDirect, outcome)
	require.Len(t, got, 1)
	assert.Equal(t, models.Text("1299"), got[0].Price)
	assert.Empty(t, hook.AllEntries())

	listing := `Sure: {"productTitleWebsite":"XR2206","productTitleAmazon":"XR2206","bulletPoints":["a"],"technicalSpecifications":[{"name":"Voltage","value":12},{"name":"Kit","value":true}]}`
	l, outcome := Extract(e, listing, fallbackListing())

	assert.Equal(t, OutcomeRecovered, outcome)
	assert.Equal(t, []models.TechnicalSpec{{Name: "Voltage", Value: "12"}, {Name: "Kit", Value: "true"}}, l.TechnicalSpecifications)
}

func TestExtract_FirstBracketKindWins(t *testing.T) {
	e, _ := newTestExtractor()

	// '{' comes first, so the object span is tried; it is not an array, so the fallback is used.
	input := `Note {"competitorName":"Robu.in"} and then [{"competitorName":"ThingBits"}]`
	fallback := []models.CompetitorAnalysis{}
	got, outcome := Extract(e, input, fallback)

	assert.Equal(t, OutcomeFallback, outcome)
	assert.Empty(t, got)
}

func TestExtract_Fallback(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLog bool
	}{
		{name: "empty", input: "", wantLog: false},
		{name: "whitespace", input: "   \n", wantLog: true},
		{name: "prose only", input: "Sorry, I could not find that product.", wantLog: true},
		{name: "null document", input: "null", wantLog: true},
		{name: "truncated object", input: `{"productTitleWebsite": "Kit", "bulletPoints": [`, wantLog: true},
		{name: "closer before opener", input: `} oops {`, wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, hook := newTestExtractor()
			fallback := &models.ProductListing{ProductTitleWebsite: "fallback"}

			got, outcome := Extract(e, tt.input, fallback)

			assert.Equal(t, OutcomeFallback, outcome)
			assert.Same(t, fallback, got)
			if tt.wantLog {
				require.NotNil(t, hook.LastEntry())
				assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
			} else {
				assert.Empty(t, hook.AllEntries())
			}
		})
	}
}

func TestExtract_NilExtractor(t *testing.T) {
	got, outcome := Extract[[]string](nil, `["a","b"]`, nil)

	assert.Equal(t, OutcomeDirect, outcome)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestExtract_WithRepair(t *testing.T) {
	input := `{"competitorName": "Robu.in", "productUrl": "https://robu.in/p",}`
	fallback := models.CompetitorAnalysis{CompetitorName: "fallback"}

	plain, _ := newTestExtractor()
	got, outcome := Extract(plain, input, fallback)
	assert.Equal(t, OutcomeFallback, outcome)
	assert.Equal(t, fallback, got)

	repairing, _ := newTestExtractor(WithRepair())
	got, outcome = Extract(repairing, input, fallback)
	assert.Equal(t, OutcomeRepaired, outcome)
	assert.Equal(t, "Robu.in", got.CompetitorName)
	assert.Equal(t, "https://robu.in/p", got.ProductURL)
}

func TestExtract_WithValidation(t *testing.T) {
	input := `[{"productName": "MT02DX Stripper"}]`
	fallback := []models.CategoryMapping{}

	plain, _ := newTestExtractor()
	got, outcome := Extract(plain, input, fallback)
	assert.Equal(t, OutcomeDirect, outcome)
	assert.Len(t, got, 1)

	strict, _ := newTestExtractor(WithValidation())
	got, outcome = Extract(strict, input, fallback)
	assert.Equal(t, OutcomeFallback, outcome)
	assert.Empty(t, got)

	valid := `[{"productName": "MT02DX Stripper", "assignedCategory": "Tools & Measuring Instruments / Strippers & Cutters"}]`
	got, outcome = Extract(strict, valid, fallback)
	assert.Equal(t, OutcomeDirect, outcome)
	assert.Equal(t, "Tools & Measuring Instruments / Strippers & Cutters", got[0].AssignedCategory)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, `{"a":1}`, Normalize("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `[1]`, Normalize("  ```  [1]```"))
	assert.Equal(t, "plain", Normalize("plain"))
}
