package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/SirClappington/seo-architect/internal/errors"
)

const DefaultModel = "gemini-2.5-flash"

// GenerateRequest is a single prompt sent to the model.
// Search and Schema are mutually exclusive.
type GenerateRequest struct {
	Prompt string
	// Search grounds the answer with Google Search results.
	Search bool
	// Schema constrains the reply to JSON of this shape.
	Schema *genai.Schema
}

// Generator sends one prompt to the external model and returns its text reply.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

type GeminiService struct {
	client  *genai.Client
	model   string
	initErr error
	logger  logrus.FieldLogger
}

// NewGeminiService builds the shared client. A missing or rejected API key is
// not fatal here; every Generate call reports it instead.
func NewGeminiService(ctx context.Context, apiKey, model string, logger logrus.FieldLogger) *GeminiService {
	if model == "" {
		model = DefaultModel
	}

	s := &GeminiService{
		model:  model,
		logger: logger,
	}

	if apiKey == "" {
		s.initErr = fmt.Errorf("no API key configured (set API_KEY or GEMINI_API_KEY)")
		logger.Warn("No Gemini API key found, generation requests will fail")
		return s
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		s.initErr = fmt.Errorf("failed to create GenAI client: %w", err)
		logger.WithError(err).Warn("Gemini client unavailable")
		return s
	}

	s.client = client
	return s
}

func (s *GeminiService) Model() string {
	return s.model
}

func (s *GeminiService) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if req.Search && req.Schema != nil {
		return "", errors.NewValidationError("search grounding and a response schema cannot be combined in one request")
	}
	if s.initErr != nil {
		return "", errors.NewExternalError("gemini", s.initErr)
	}

	config := &genai.GenerateContentConfig{}
	if req.Search {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = req.Schema
	}

	s.logger.WithFields(logrus.Fields{
		"model":  s.model,
		"search": req.Search,
		"schema": req.Schema != nil,
	}).Debug("Sending generate request")

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(req.Prompt), config)
	if err != nil {
		s.logger.WithError(err).Error("Gemini request failed")
		return "", errors.NewExternalError("gemini", err)
	}

	return resp.Text(), nil
}
