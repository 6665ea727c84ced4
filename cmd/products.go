package cmd

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	searchStart int
	searchLimit int
)

// maxConcurrentFetches bounds parallel product lookups when several IDs are
// requested at once.
const maxConcurrentFetches = 4

// productsCmd groups the product operations
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Search, fetch and update products",
}

var productsSearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search products by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsSearch,
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>...",
	Short: "Fetch one or more products by ID",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProductsGet,
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a product",
	Long: `Update fields of a product. The record is a JSON object holding only the
fields to change, supplied inline with --data or from a file with --file.`,
	Args: cobra.ExactArgs(1),
	RunE: runProductsUpdate,
}

func init() {
	productsSearchCmd.Flags().IntVar(&searchStart, "start", 0, "pagination offset")
	productsSearchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum results per page")
	productsSearchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")

	productsUpdateCmd.Flags().StringVar(&recordData, "data", "", "record as inline JSON")
	productsUpdateCmd.Flags().StringVar(&recordFile, "file", "", "record from a JSON file (- for stdin)")
	productsUpdateCmd.Flags().BoolVar(&encodeHTML, "encode-html", false, "entity-escape string fields before sending")

	productsCmd.AddCommand(productsSearchCmd)
	productsCmd.AddCommand(productsGetCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	rootCmd.AddCommand(productsCmd)
}

func runProductsSearch(cmd *cobra.Command, args []string) error {
	resp, err := client.SearchProducts(context.Background(), args[0], searchStart, searchLimit)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("search failed: %s", resp.Error)
	}

	records, err := filterRecords(resp.DataList())
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No products found.")
		return nil
	}

	fmt.Printf("Found %d products (server total: %d):\n", len(records), resp.Count)
	return printJSON(records)
}

func runProductsGet(cmd *cobra.Command, args []string) error {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid product ID %q", arg)
		}
		ids = append(ids, id)
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(maxConcurrentFetches)

	// Use mutex to protect concurrent writes
	var mu sync.Mutex
	products := make(map[int]map[string]any, len(ids))

	for _, id := range ids {
		id := id
		g.Go(func() error {
			resp, err := client.GetProduct(ctx, id)
			if err != nil {
				return fmt.Errorf("product %d: %w", id, err)
			}
			if !resp.Success {
				return fmt.Errorf("product %d: %s", id, resp.Error)
			}

			mu.Lock()
			products[id] = resp.DataMap()
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Print in the order requested
	if len(ids) == 1 {
		return printJSON(products[ids[0]])
	}
	ordered := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		ordered = append(ordered, products[id])
	}
	return printJSON(ordered)
}

func runProductsUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product ID %q", args[0])
	}

	record, err := loadRecord(recordData, recordFile)
	if err != nil {
		return err
	}

	resp, err := client.UpdateProduct(context.Background(), id, record, encodeHTML)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("update failed: %s", resp.Error)
	}

	logger.Info().Int("product_id", id).Msg("Product updated")
	if resp.Message != "" {
		fmt.Println(resp.Message)
	}
	return nil
}
