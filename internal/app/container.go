package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SirClappington/seo-architect/internal/config"
	"github.com/SirClappington/seo-architect/internal/extract"
	"github.com/SirClappington/seo-architect/internal/services"
)

// Container holds all initialized components
type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	Generator   *services.GeminiService
	Listings    *services.ListingService
	Competitors *services.CompetitorService
	Categories  *services.CategoryService

	// Archive is nil unless archive.bucket is configured.
	Archive services.Archive

	closers []func() error
}

// New creates a new container with all dependencies initialized. The model
// client is built once here and shared by every request builder.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	c.Generator = services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger.WithField("service", "gemini"))

	extractor := extract.New(logger.WithField("service", "extract"), extractOptions(cfg.Extract)...)

	var listingOpts []services.ListingOption
	if cfg.Reference.Fetch {
		scraper, err := c.newScraper(cfg)
		if err != nil {
			return nil, err
		}
		listingOpts = append(listingOpts, services.WithReferenceScraper(scraper, cfg.Reference.MaxChars))
	}

	c.Listings = services.NewListingService(c.Generator, extractor, logger.WithField("service", "listing"), listingOpts...)
	c.Competitors = services.NewCompetitorService(c.Generator, extractor, logger.WithField("service", "competitor"))
	c.Categories = services.NewCategoryService(c.Generator, logger.WithField("service", "category"))

	if cfg.Archive.Enabled() {
		archive, err := services.NewFirebaseService(ctx,
			cfg.Archive.CredentialsFile,
			cfg.Archive.Bucket,
			cfg.Archive.Prefix,
			logger.WithField("service", "archive"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize export archive: %w", err)
		}
		c.Archive = archive
	}

	return c, nil
}

func (c *Container) newScraper(cfg *config.Config) (services.PageScraper, error) {
	switch cfg.Reference.Provider {
	case "firecrawl":
		client, err := services.NewFirecrawlClient(cfg.Firecrawl.APIKey, cfg.Firecrawl.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize firecrawl: %w", err)
		}
		return client, nil
	case "direct", "":
		scraper := services.NewDirectScraper(cfg.Reference.TimeoutDuration())
		c.closers = append(c.closers, scraper.Close)
		return scraper, nil
	default:
		return nil, fmt.Errorf("unknown reference provider %q", cfg.Reference.Provider)
	}
}

func extractOptions(cfg config.ExtractConfig) []extract.Option {
	var opts []extract.Option
	if cfg.Repair {
		opts = append(opts, extract.WithRepair())
	}
	if cfg.Validate {
		opts = append(opts, extract.WithValidation())
	}
	return opts
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
