package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// categoriesCmd groups the category operations
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Browse the category tree",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE:  runCategoriesList,
}

var categoriesSearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search categories by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesSearch,
}

func init() {
	categoriesListCmd.Flags().IntVar(&searchStart, "start", 0, "pagination offset")
	categoriesListCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum results per page")
	categoriesListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")

	categoriesSearchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")

	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesSearchCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategoriesList(cmd *cobra.Command, args []string) error {
	resp, err := client.GetAllCategories(context.Background(), searchStart, searchLimit)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("listing failed: %s", resp.Error)
	}

	records, err := filterRecords(resp.DataList())
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No categories found.")
		return nil
	}

	fmt.Printf("Found %d categories (server total: %d):\n", len(records), resp.Count)
	return printJSON(records)
}

func runCategoriesSearch(cmd *cobra.Command, args []string) error {
	resp, err := client.SearchCategories(context.Background(), args[0])
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
		fmt.Println("No categories found.")
		return nil
	}
	return printJSON(records)
}
