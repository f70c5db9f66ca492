package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/SirClappington/seo-architect/internal/extract"
)

type fakeGenerator struct {
	reply    string
	err      error
	requests []GenerateRequest
}

func (f *fakeGenerator) Generate(_ context.Context, req GenerateRequest) (string, error) {
	f.requests = append(f.requests, req)
	return f.reply, f.err
}

type fakeScraper struct {
	markdown string
	err      error
	urls     []string
}

func (f *fakeScraper) ScrapeMarkdown(_ context.Context, pageURL string) (string, error) {
	f.urls = append(f.urls, pageURL)
	return f.markdown, f.err
}

var errTransport = errors.New("connection reset by peer")

func quietLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func quietExtractor() *extract.Extractor {
	return extract.New(quietLogger())
}
