package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/SirClappington/seo-architect/internal/export"
	"github.com/SirClappington/seo-architect/internal/models"
)

var categoriesText bool

// categoriesCmd assigns store categories to a list of products
var categoriesCmd = &cobra.Command{
	Use:   "categories [file]",
	Short: "Assign store categories to products, one per line",
	Long: `Reads product names, one per line, from the given file or from stdin
and assigns each a category path. Blank lines are ignored.

Example:
  printf 'Li-Ion 18650 Cell\nMT02DX Stripper\n' | architect categories --text`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&categoriesText, "text", false, "print \"product -> category\" lines instead of JSON")
}

func runCategories(cmd *cobra.Command, args []string) error {
	products, err := readProducts(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return fmt.Errorf("no product names given")
	}

	ctx := commandContext(cmd)
	container, err := newContainer(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	mappings, err := container.Categories.AssignCategories(ctx, products)
	if err != nil {
		return fmt.Errorf("failed to assign categories: %w", err)
	}

	if categoriesText {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), export.CategoryLines(mappings))
		return err
	}
	return printJSON(cmd.OutOrStdout(), mappings)
}

func readProducts(stdin io.Reader, args []string) ([]string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product list: %w", err)
	}
	return models.ProductLines(string(data)), nil
}
