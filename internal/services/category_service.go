package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/SirClappington/seo-architect/internal/errors"
	"github.com/SirClappington/seo-architect/internal/models"
)

// categorySchema constrains the reply to an array of category mappings.
var categorySchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"productName":      {Type: genai.TypeString},
			"assignedCategory": {Type: genai.TypeString},
			"reasoning":        {Type: genai.TypeString},
		},
		Required: []string{"productName", "assignedCategory"},
	},
}

type CategoryService struct {
	generator Generator
	logger    logrus.FieldLogger
}

func NewCategoryService(generator Generator, logger logrus.FieldLogger) *CategoryService {
	return &CategoryService{
		generator: generator,
		logger:    logger,
	}
}

// AssignCategories maps each product name to a store category path. Callers
// drop blank lines first; every entry of products is sent as given.
//
// The reply is schema-constrained, so it is decoded directly with no
// fence stripping or bracket recovery.
func (s *CategoryService) AssignCategories(ctx context.Context, products []string) ([]models.CategoryMapping, error) {
	if len(products) == 0 {
		return nil, errors.NewValidationError("at least one product is required")
	}

	prompt, err := categoryPrompt(products)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	text, err := s.generator.Generate(ctx, GenerateRequest{
		Prompt: prompt,
		Schema: categorySchema,
	})
	if err != nil {
		return nil, err
	}

	mappings := []models.CategoryMapping{}
	if text == "" {
		return mappings, nil
	}
	if err := json.Unmarshal([]byte(text), &mappings); err != nil {
		return nil, errors.NewExternalError("gemini", fmt.Errorf("schema-constrained reply is not valid JSON: %w", err))
	}
	if mappings == nil {
		mappings = []models.CategoryMapping{}
	}

	s.logger.WithFields(logrus.Fields{
		"products": len(products),
		"mapped":   len(mappings),
	}).Info("Categories assigned")

	return mappings, nil
}
