package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const storeName = "Robocraze"

// competitorStores are named in the competitor prompt as the stores to check first.
var competitorStores = []string{"Robu.in", "ThinkRobotics", "ThingBits", "Robocraze"}

// taxonomyExamples are sample category paths from the store's navigation.
var taxonomyExamples = []string{
	"Batteries & Chargers / Li-Ion",
	"Drone Parts / Transmitters & Receivers",
	"DIY Kits / STEM Education",
	"Tools & Measuring Instruments / Strippers & Cutters",
	"Development Boards",
}

func listingPrompt(productName, referenceURL, referenceExcerpt string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a senior SEO content writer for %s, an online robotics and electronics store in India.\n", storeName)
	fmt.Fprintf(&b, "Write a complete product listing for: %q.\n", productName)
	if referenceURL != "" {
		fmt.Fprintf(&b, "Reference URL: %s\n", referenceURL)
	}
	if referenceExcerpt != "" {
		b.WriteString("Reference page excerpt (markdown):\n")
		b.WriteString("<<<\n")
		b.WriteString(referenceExcerpt)
		b.WriteString("\n>>>\n")
	}
	b.WriteString(`
Use Google Search to confirm technical details, features and specifications you are not certain about.

Requirements:
1. Website Title: clear and descriptive, includes the key specs.
2. Amazon Title: keyword rich but readable; brand, model and key features.
3. Bullet Points: exactly 5, covering features, use cases and benefits.
4. SEO Description: 150-200 words, engaging and technically accurate.
5. Technical Specifications: plausible specs as a list of name/value pairs.
6. Search Keywords: 10-15 high volume keywords for the Indian market.
7. Meta Title and Meta Description: written for click-through rate.
8. Suggested Tags: relevant store collections (for example Arduino, Sensors, Wireless).

IMPORTANT: Output ONLY valid JSON. No markdown, no explanations.
Structure:
{
  "productTitleWebsite": "string",
  "productTitleAmazon": "string",
  "bulletPoints": ["string"],
  "seoDescription": "string",
  "technicalSpecifications": [{"name": "string", "value": "string"}],
  "searchKeywords": ["string"],
  "metaTitle": "string",
  "metaDescription": "string",
  "suggestedTags": ["string"]
}
`)
	return b.String()
}

func competitorPrompt(productName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Find online stores in India selling %q.\n", productName)
	fmt.Fprintf(&b, "Look specifically at %s or similar Indian robotics stores.\n", quoteList(competitorStores))
	b.WriteString(`
1. Find exact product matches.
2. Give the URL of each product page.
3. Review each listing: which specific detail (images, description formatting, video, documentation) makes it eye-catching or better than a standard listing?
4. Give the price if it is visible.

IMPORTANT: Output ONLY a valid JSON array. No markdown.
Structure:
[
  {
    "competitorName": "string",
    "productUrl": "string",
    "price": "string",
    "eyeCatchingDetails": "string"
  }
]
`)
	return b.String()
}

func categoryPrompt(products []string) (string, error) {
	var encoded bytes.Buffer
	enc := json.NewEncoder(&encoded)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(products); err != nil {
		return "", fmt.Errorf("failed to encode product list: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Assign the correct website category to each of the following products, following the %s website structure.\n", storeName)
	fmt.Fprintf(&b, "Products: %s\n\n", bytes.TrimSpace(encoded.Bytes()))
	b.WriteString("Choose from typical categories such as:\n")
	for _, c := range taxonomyExamples {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	b.WriteString("\nProvide the most accurate hierarchical path for every product.\n")
	return b.String(), nil
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, ", ")
}
