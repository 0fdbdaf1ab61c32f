package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/partstack/digikey-mcp/pkg/digikey"
)

var (
	searchLimit        int
	searchManufacturer string
	searchCategory     string
	searchOptions      string
	searchSortField    string
	searchSortOrder    string
)

var searchCmd = &cobra.Command{
	Use:   "search <keywords>",
	Short: "Search products by keyword",
	Long: `Search the DigiKey catalog by keyword and print the raw JSON response.

Examples:
  digikey search "rp2040"
  digikey search "10k resistor 0603" --limit 25
  digikey search "led" --options LeadFree,InStock --sort-field Price`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 5, "max results")
	searchCmd.Flags().StringVar(&searchManufacturer, "manufacturer", "", "filter by manufacturer ID")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "filter by category ID")
	searchCmd.Flags().StringVar(&searchOptions, "options", "", "comma-delimited search options (LeadFree,InStock,...)")
	searchCmd.Flags().StringVar(&searchSortField, "sort-field", "", "field to sort by")
	searchCmd.Flags().StringVar(&searchSortOrder, "sort-order", "", "Ascending or Descending")
}

func runSearch(cmd *cobra.Command, args []string) error {
	raw, err := client.KeywordSearch(context.Background(), digikey.KeywordSearchParams{
		Keywords:       args[0],
		Limit:          searchLimit,
		ManufacturerID: searchManufacturer,
		CategoryID:     searchCategory,
		SearchOptions:  searchOptions,
		SortField:      searchSortField,
		SortOrder:      searchSortOrder,
	})
	if err != nil {
		return fmt.Errorf("keyword search: %w", err)
	}

	return printJSON(raw)
}
