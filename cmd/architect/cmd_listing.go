package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SirClappington/seo-architect/internal/export"
	"github.com/SirClappington/seo-architect/internal/models"
	"github.com/SirClappington/seo-architect/internal/services"
)

var (
	listingURL     string
	listingCSVDir  string
	listingPDFDir  string
	listingArchive bool
)

// listingCmd generates a product listing
var listingCmd = &cobra.Command{
	Use:   "listing [product name]",
	Short: "Generate an SEO product listing",
	Long: `Generates website and Amazon titles, bullet points, description,
specifications, keywords and meta tags for one product.

Example:
  architect listing "XR2206 Signal Generator" --url https://example.com/xr2206 --csv out/`,
	Args: cobra.ExactArgs(1),
	RunE: runListing,
}

func init() {
	listingCmd.Flags().StringVar(&listingURL, "url", "", "reference URL for the product")
	listingCmd.Flags().StringVar(&listingCSVDir, "csv", "", "write a CSV export into this directory")
	listingCmd.Flags().StringVar(&listingPDFDir, "pdf", "", "write a PDF export into this directory")
	listingCmd.Flags().BoolVar(&listingArchive, "archive", false, "also upload the exports to the configured archive bucket")
}

func runListing(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	container, err := newContainer(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	if listingArchive && container.Archive == nil {
		return fmt.Errorf("--archive needs archive.bucket to be configured")
	}

	result, err := container.Listings.GenerateListing(ctx, args[0], listingURL)
	if err != nil {
		return fmt.Errorf("failed to generate listing: %w", err)
	}

	files, err := renderExports(result, listingCSVDir != "", listingPDFDir != "")
	if err != nil {
		return err
	}

	for _, f := range files {
		dir := listingCSVDir
		if f.contentType == export.PDFContentType {
			dir = listingPDFDir
		}
		path, err := writeExport(dir, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)

		if listingArchive {
			location, err := archiveExport(ctx, container.Archive, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "archived %s\n", location)
		}
	}

	return printJSON(cmd.OutOrStdout(), result)
}

type exportFile struct {
	name        string
	contentType string
	data        []byte
}

func renderExports(result *models.ListingResult, csv, pdf bool) ([]exportFile, error) {
	var files []exportFile
	if csv {
		files = append(files, exportFile{
			name:        export.CSVFilename(result.ProductName),
			contentType: export.CSVContentType,
			data:        export.ListingCSV(result.ProductName, result.Listing),
		})
	}
	if pdf {
		var buf bytes.Buffer
		if err := export.WriteListingPDF(&buf, result.ProductName, result.Listing); err != nil {
			return nil, err
		}
		files = append(files, exportFile{
			name:        export.PDFFilename(result.ProductName),
			contentType: export.PDFContentType,
			data:        buf.Bytes(),
		})
	}
	return files, nil
}

func writeExport(dir string, f exportFile) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	path := filepath.Join(dir, f.name)
	if err := os.WriteFile(path, f.data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func archiveExport(ctx context.Context, archive services.Archive, f exportFile) (string, error) {
	location, err := archive.Put(ctx, f.name, f.contentType, f.data)
	if err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", f.name, err)
	}
	return location, nil
}
