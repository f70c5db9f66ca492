package app

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SirClappington/seo-architect/internal/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		Gemini:    config.GeminiConfig{Model: "gemini-2.5-flash"},
		Reference: config.ReferenceConfig{Provider: "direct", MaxChars: 4000, Timeout: 5},
	}
}

func TestNew_WithoutOptionalServices(t *testing.T) {
	logger, _ := test.NewNullLogger()

	c, err := New(context.Background(), baseConfig(), logger)
	require.NoError(t, err)
	defer c.Close()

	assert.NotNil(t, c.Listings)
	assert.NotNil(t, c.Competitors)
	assert.NotNil(t, c.Categories)
	assert.Nil(t, c.Archive)
	assert.Equal(t, "gemini-2.5-flash", c.Generator.Model())
}

func TestNew_DirectReferenceScraper(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := baseConfig()
	cfg.Reference.Fetch = true

	c, err := New(context.Background(), cfg, logger)
	require.NoError(t, err)
	assert.Len(t, c.closers, 1)
	assert.NoError(t, c.Close())
}

func TestNew_UnknownReferenceProvider(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := baseConfig()
	cfg.Reference.Fetch = true
	cfg.Reference.Provider = "carrier-pigeon"

	_, err := New(context.Background(), cfg, logger)
	assert.ErrorContains(t, err, "carrier-pigeon")
}

func TestExtractOptions(t *testing.T) {
	assert.Empty(t, extractOptions(config.ExtractConfig{}))
	assert.Len(t, extractOptions(config.ExtractConfig{Repair: true, Validate: true}), 2)
}

func TestNew_FirecrawlReferenceScraper(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := baseConfig()
	cfg.Reference.Fetch = true
	cfg.Reference.Provider = "firecrawl"
	cfg.Firecrawl.APIKey = "fc-test"

	c, err := New(context.Background(), cfg, logger)
	require.NoError(t, err)
	assert.Empty(t, c.closers)
	assert.NoError(t, c.Close())
}
