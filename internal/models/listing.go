package models

// TechnicalSpec is a single name/value row of a product's specification table.
type TechnicalSpec struct {
	Name  Text `json:"name"`
	Value Text `json:"value"`
}

// ProductListing is the generated content for one product page.
type ProductListing struct {
	ProductTitleWebsite     string          `json:"productTitleWebsite" validate:"required"`
	ProductTitleAmazon      string          `json:"productTitleAmazon" validate:"required"`
	BulletPoints            []string        `json:"bulletPoints" validate:"required,min=1"`
	SEODescription          string          `json:"seoDescription"`
	TechnicalSpecifications []TechnicalSpec `json:"technicalSpecifications"`
	SearchKeywords          []string        `json:"searchKeywords"`
	MetaTitle               string          `json:"metaTitle"`
	MetaDescription         string          `json:"metaDescription"`
	SuggestedTags           []string        `json:"suggestedTags"`
}

// ListingStatus records which parsing tier produced a listing.
type ListingStatus string

const (
	ListingStatusParsed    ListingStatus = "parsed"
	ListingStatusRecovered ListingStatus = "recovered"
	ListingStatusFallback  ListingStatus = "fallback"
)

// ListingResult wraps a generated listing together with the inputs that produced it.
type ListingResult struct {
	ProductName  string          `json:"productName"`
	ReferenceURL string          `json:"referenceUrl,omitempty"`
	Listing      *ProductListing `json:"listing"`
	Status       ListingStatus   `json:"status"`
}
