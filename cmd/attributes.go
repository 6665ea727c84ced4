package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// attributesCmd groups the attribute operations
var attributesCmd = &cobra.Command{
	Use:   "attributes",
	Short: "Search and manage product attributes",
}

var attributesSearchKeyCmd = &cobra.Command{
	Use:   "search-key <key>",
	Short: "Find attributes whose name matches the key",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttributesSearchKey,
}

var attributesSearchValueCmd = &cobra.Command{
	Use:   "search-value <value>",
	Short: "Find attributes carrying the value text",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttributesSearchValue,
}

var attributesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch an attribute by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttributesGet,
}

var attributesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an attribute from a JSON record",
	RunE:  runAttributesAdd,
}

var attributesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an attribute",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttributesUpdate,
}

var attributesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an attribute",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttributesDelete,
}

func init() {
	attributesSearchKeyCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")
	attributesSearchValueCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")

	attributesAddCmd.Flags().StringVar(&recordData, "data", "", "record as inline JSON")
	attributesAddCmd.Flags().StringVar(&recordFile, "file", "", "record from a JSON file (- for stdin)")
	attributesAddCmd.Flags().BoolVar(&encodeHTML, "encode-html", false, "entity-escape string fields before sending")

	attributesUpdateCmd.Flags().StringVar(&recordData, "data", "", "record as inline JSON")
	attributesUpdateCmd.Flags().StringVar(&recordFile, "file", "", "record from a JSON file (- for stdin)")
	attributesUpdateCmd.Flags().BoolVar(&encodeHTML, "encode-html", false, "entity-escape string fields before sending")

	attributesDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompt")

	attributesCmd.AddCommand(attributesSearchKeyCmd)
	attributesCmd.AddCommand(attributesSearchValueCmd)
	attributesCmd.AddCommand(attributesGetCmd)
	attributesCmd.AddCommand(attributesAddCmd)
	attributesCmd.AddCommand(attributesUpdateCmd)
	attributesCmd.AddCommand(attributesDeleteCmd)
	rootCmd.AddCommand(attributesCmd)
}

func runAttributesSearchKey(cmd *cobra.Command, args []string) error {
	resp, err := client.SearchAttributesByKey(context.Background(), args[0])
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
		fmt.Println("No attributes found.")
		return nil
	}
	return printJSON(records)
}

func runAttributesSearchValue(cmd *cobra.Command, args []string) error {
	resp, err := client.SearchAttributesByValue(context.Background(), args[0])
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
		fmt.Println("No attributes found.")
		return nil
	}
	return printJSON(records)
}

func runAttributesGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid attribute ID %q", args[0])
	}

	resp, err := client.GetAttribute(context.Background(), id)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("lookup failed: %s", resp.Error)
	}
	return printJSON(resp.DataMap())
}

func runAttributesAdd(cmd *cobra.Command, args []string) error {
	record, err := loadRecord(recordData, recordFile)
	if err != nil {
		return err
	}

	resp, err := client.AddAttribute(context.Background(), record, encodeHTML)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("create failed: %s", resp.Error)
	}

	logger.Info().Msg("Attribute created")
	return printJSON(resp.Fields)
}

func runAttributesUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid attribute ID %q", args[0])
	}

	record, err := loadRecord(recordData, recordFile)
	if err != nil {
		return err
	}

	resp, err := client.UpdateAttribute(context.Background(), id, record, encodeHTML)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("update failed: %s", resp.Error)
	}

	logger.Info().Int("attribute_id", id).Msg("Attribute updated")
	if resp.Message != "" {
		fmt.Println(resp.Message)
	}
	return nil
}

func runAttributesDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid attribute ID %q", args[0])
	}

	if !assumeYes && !confirm(fmt.Sprintf("Delete attribute %d?", id)) {
		fmt.Println("Cancelled.")
		return nil
	}

	resp, err := client.DeleteAttribute(context.Background(), id)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("delete failed: %s", resp.Error)
	}

	logger.Info().Int("attribute_id", id).Msg("Attribute deleted")
	return nil
}
