package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SirClappington/seo-architect/internal/app"
	"github.com/SirClappington/seo-architect/internal/config"
	"github.com/SirClappington/seo-architect/internal/logging"
)

var (
	configDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "architect",
	Short: "Draft product listings, competitor reviews and categories with Gemini",
	Long: `architect drives the same request builders as the HTTP API from the
command line. The API key is read from API_KEY or GEMINI_API_KEY.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "directory containing config.yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(listingCmd, competitorsCmd, categoriesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newContainer loads configuration and wires the services. Logs go to
// stderr so stdout carries only results.
func newContainer(ctx context.Context) (*app.Container, error) {
	var paths []string
	if configDir != "" {
		paths = append(paths, configDir)
	}

	cfg, err := config.Load(paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.NewWithOutput(cfg.Log, os.Stderr)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return app.New(ctx, cfg, logger)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
