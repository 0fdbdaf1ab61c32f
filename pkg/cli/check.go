package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify credentials and API reachability",
	Long: `Check authenticates against the DigiKey API and fetches the manufacturer
and category listings concurrently. A zero exit status means the
credentials and the upstream are both good.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var manufacturers, categories json.RawMessage

	p := pool.New().WithMaxGoroutines(2).WithErrors()
	p.Go(func() error {
		raw, err := client.SearchManufacturers(ctx)
		if err != nil {
			return fmt.Errorf("manufacturers: %w", err)
		}
		manufacturers = raw
		return nil
	})
	p.Go(func() error {
		raw, err := client.SearchCategories(ctx)
		if err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		categories = raw
		return nil
	})
	if err := p.Wait(); err != nil {
		return err
	}

	fmt.Println("Authentication OK")
	printListingSize("Manufacturers", manufacturers)
	printListingSize("Categories", categories)

	return nil
}

// printListingSize reports how many entries sit under the listing's top-level
// key, falling back to the payload size when the shape is unexpected.
func printListingSize(key string, raw json.RawMessage) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		var items []json.RawMessage
		if err := json.Unmarshal(envelope[key], &items); err == nil {
			fmt.Printf("%s: %d\n", key, len(items))
			return
		}
	}
	fmt.Printf("%s: %d bytes\n", key, len(raw))
}
