package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mendableai/firecrawl-go"
)

const defaultFirecrawlURL = "https://api.firecrawl.dev"

// FirecrawlClient scrapes reference pages through the Firecrawl API.
type FirecrawlClient struct {
	BaseURL string
	Client  *firecrawl.FirecrawlApp
}

// NewFirecrawlClient creates a new instance of FirecrawlClient.
func NewFirecrawlClient(apiKey, baseURL string) (*FirecrawlClient, error) {
	if baseURL == "" {
		baseURL = defaultFirecrawlURL
	}

	app, err := firecrawl.NewFirecrawlApp(apiKey, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize FirecrawlApp: %v", err)
	}

	return &FirecrawlClient{
		BaseURL: baseURL,
		Client:  app,
	}, nil
}

// ScrapeMarkdown returns the main content of pageURL as markdown. The
// Firecrawl SDK takes no context, so ctx is only checked before the call.
func (fc *FirecrawlClient) ScrapeMarkdown(ctx context.Context, pageURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &firecrawl.ScrapeParams{
		Formats:         []string{"markdown"},
		OnlyMainContent: BoolPtr(true),
	}

	doc, err := fc.Client.ScrapeURL(pageURL, params)
	if err != nil {
		return "", fmt.Errorf("scrape failed: %w", err)
	}
	if doc == nil || strings.TrimSpace(doc.Markdown) == "" {
		return "", fmt.Errorf("scrape of %s returned no content", pageURL)
	}

	return strings.TrimSpace(doc.Markdown), nil
}

func BoolPtr(b bool) *bool {
	return &b
}
