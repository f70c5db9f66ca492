package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/SirClappington/seo-architect/internal/errors"
	"github.com/SirClappington/seo-architect/internal/extract"
	"github.com/SirClappington/seo-architect/internal/models"
)

type CompetitorService struct {
	generator Generator
	extractor *extract.Extractor
	logger    logrus.FieldLogger
}

func NewCompetitorService(generator Generator, extractor *extract.Extractor, logger logrus.FieldLogger) *CompetitorService {
	return &CompetitorService{
		generator: generator,
		extractor: extractor,
		logger:    logger,
	}
}

// FindCompetitors asks the model, with search grounding, for other stores
// listing the same product.
func (s *CompetitorService) FindCompetitors(ctx context.Context, productName string) (*models.CompetitorSearchResult, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, errors.NewValidationError("productName is required")
	}

	text, err := s.generator.Generate(ctx, GenerateRequest{
		Prompt: competitorPrompt(productName),
		Search: true,
	})
	if err != nil {
		return nil, err
	}

	competitors, outcome := extract.Extract(s.extractor, text, []models.CompetitorAnalysis{})
	if competitors == nil {
		competitors = []models.CompetitorAnalysis{}
	}

	status := models.SearchStatusFound
	switch {
	case outcome == extract.OutcomeFallback:
		status = models.SearchStatusUnparsed
	case len(competitors) == 0:
		status = models.SearchStatusNone
	}

	s.logger.WithFields(logrus.Fields{
		"product": productName,
		"found":   len(competitors),
		"status":  status,
	}).Info("Competitor search finished")

	return &models.CompetitorSearchResult{
		ProductName: productName,
		Competitors: competitors,
		TotalFound:  len(competitors),
		Status:      status,
	}, nil
}
