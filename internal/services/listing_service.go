package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/SirClappington/seo-architect/internal/errors"
	"github.com/SirClappington/seo-architect/internal/extract"
	"github.com/SirClappington/seo-architect/internal/models"
)

const fallbackBulletPoint = "Could not generate details."

type ListingService struct {
	generator Generator
	extractor *extract.Extractor
	scraper   PageScraper
	maxChars  int
	logger    logrus.FieldLogger
}

// ListingOption configures optional ListingService behaviour.
type ListingOption func(*ListingService)

// WithReferenceScraper makes GenerateListing fetch the reference URL and add
// up to maxChars runes of its content to the prompt.
func WithReferenceScraper(scraper PageScraper, maxChars int) ListingOption {
	return func(s *ListingService) {
		s.scraper = scraper
		s.maxChars = maxChars
	}
}

func NewListingService(generator Generator, extractor *extract.Extractor, logger logrus.FieldLogger, opts ...ListingOption) *ListingService {
	s := &ListingService{
		generator: generator,
		extractor: extractor,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateListing drafts a product listing. Only a failed model call is
// returned as an error; unusable replies yield the fallback listing.
func (s *ListingService) GenerateListing(ctx context.Context, productName, referenceURL string) (*models.ListingResult, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, errors.NewValidationError("productName is required")
	}
	referenceURL = strings.TrimSpace(referenceURL)

	excerpt := s.referenceExcerpt(ctx, referenceURL)

	text, err := s.generator.Generate(ctx, GenerateRequest{
		Prompt: listingPrompt(productName, referenceURL, excerpt),
		Search: true,
	})
	if err != nil {
		return nil, err
	}

	listing, outcome := extract.Extract(s.extractor, text, fallbackListing(productName))
	fillEmptyLists(&listing)

	s.logger.WithFields(logrus.Fields{
		"product": productName,
		"outcome": outcome,
	}).Info("Listing generated")

	return &models.ListingResult{
		ProductName:  productName,
		ReferenceURL: referenceURL,
		Listing:      &listing,
		Status:       listingStatus(outcome),
	}, nil
}

func (s *ListingService) referenceExcerpt(ctx context.Context, referenceURL string) string {
	if s.scraper == nil || referenceURL == "" {
		return ""
	}

	markdown, err := s.scraper.ScrapeMarkdown(ctx, referenceURL)
	if err != nil {
		s.logger.WithError(err).WithField("url", referenceURL).Warn("Reference page unavailable, continuing without it")
		return ""
	}
	return truncateRunes(markdown, s.maxChars)
}

func fallbackListing(productName string) models.ProductListing {
	return models.ProductListing{
		ProductTitleWebsite:     productName,
		ProductTitleAmazon:      productName,
		BulletPoints:            []string{fallbackBulletPoint},
		TechnicalSpecifications: []models.TechnicalSpec{},
		SearchKeywords:          []string{},
		SuggestedTags:           []string{},
	}
}

// fillEmptyLists replaces list fields the model left out with empty lists.
func fillEmptyLists(l *models.ProductListing) {
	if l.BulletPoints == nil {
		l.BulletPoints = []string{}
	}
	if l.TechnicalSpecifications == nil {
		l.TechnicalSpecifications = []models.TechnicalSpec{}
	}
	if l.SearchKeywords == nil {
		l.SearchKeywords = []string{}
	}
	if l.SuggestedTags == nil {
		l.SuggestedTags = []string{}
	}
}

func listingStatus(outcome extract.Outcome) models.ListingStatus {
	switch outcome {
	case extract.OutcomeDirect:
		return models.ListingStatusParsed
	case extract.OutcomeFallback:
		return models.ListingStatusFallback
	default:
		return models.ListingStatusRecovered
	}
}
