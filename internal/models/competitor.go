package models

// CompetitorAnalysis describes one competitor listing of the searched product.
type CompetitorAnalysis struct {
	CompetitorName     string `json:"competitorName" validate:"required"`
	ProductURL         string `json:"productUrl" validate:"required"`
	Price              Text   `json:"price,omitempty"`
	EyeCatchingDetails string `json:"eyeCatchingDetails"`
}

// SearchStatus tells apart an empty competitor list from a response that could not be parsed.
type SearchStatus string

const (
	SearchStatusFound    SearchStatus = "found"
	SearchStatusNone     SearchStatus = "none"
	SearchStatusUnparsed SearchStatus = "unparsed"
)

// CompetitorSearchResult is returned for a single competitor query.
type CompetitorSearchResult struct {
	ProductName string               `json:"productName"`
	Competitors []CompetitorAnalysis `json:"competitors"`
	TotalFound  int                  `json:"totalFound"`
	Status      SearchStatus         `json:"status"`
}
