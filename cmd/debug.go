package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// debugCmd dumps the server's diagnostic endpoint
var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Show the server's diagnostic information",
	Long: `Fetch the debug endpoint and print the raw envelope: OpenCart version,
token configuration and the model paths the API detected.`,
	RunE: runDebug,
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to the OpenCart server",
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(testCmd)
}

func runDebug(cmd *cobra.Command, args []string) error {
	resp, err := client.GetDebugInfo(context.Background())
	if err != nil {
		return err
	}
	return printJSON(resp.Fields)
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to OpenCart at %s...\n", cfg.OpenCart.URL)

	ctx := context.Background()
	if err := client.TestConnection(ctx); err != nil {
		return err
	}
	fmt.Println("✓ Connection successful!")

	resp, err := client.GetDebugInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to get debug info: %w", err)
	}

	fmt.Printf("\nServer information:\n")
	if v, ok := resp.Field("opencart_version"); ok {
		fmt.Printf("- OpenCart version: %v\n", v)
	}
	if v, ok := resp.Field("detected_version"); ok {
		fmt.Printf("- Detected major version: %v\n", v)
	}
	if v, ok := resp.Field("token_name"); ok {
		fmt.Printf("- Token parameter: %v\n", v)
	}
	if v, ok := resp.Field("seo_table"); ok {
		fmt.Printf("- SEO table: %v\n", v)
	}

	return nil
}
