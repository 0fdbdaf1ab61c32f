package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/partstack/digikey-mcp/pkg/digikey"
)

var productCustomer string

var productCmd = &cobra.Command{
	Use:   "product <product-number>",
	Short: "Get product details",
	Long: `Fetch detailed information for a DigiKey or manufacturer product number
and print the raw JSON response.

Examples:
  digikey product 296-1721-1-ND
  digikey product ATMEGA328P-PU --customer 12345`,
	Args: cobra.ExactArgs(1),
	RunE: runProduct,
}

func init() {
	productCmd.Flags().StringVar(&productCustomer, "customer", "", "customer ID for customer-specific pricing")
}

func runProduct(cmd *cobra.Command, args []string) error {
	raw, err := client.ProductDetails(context.Background(), digikey.ProductDetailsParams{
		ProductNumber: args[0],
		CustomerID:    productCustomer,
	})
	if err != nil {
		return fmt.Errorf("product details: %w", err)
	}

	return printJSON(raw)
}
