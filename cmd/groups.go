package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// groupsCmd groups the attribute-group operations
var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Search and manage attribute groups",
}

var groupsSearchCmd = &cobra.Command{
	Use:   "search [name]",
	Short: "List attribute groups, optionally narrowed by name",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGroupsSearch,
}

var groupsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch an attribute group by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupsGet,
}

var groupsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an attribute group from a JSON record",
	RunE:  runGroupsAdd,
}

var groupsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an attribute group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupsUpdate,
}

var groupsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an attribute group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupsDelete,
}

func init() {
	groupsSearchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")

	groupsAddCmd.Flags().StringVar(&recordData, "data", "", "record as inline JSON")
	groupsAddCmd.Flags().StringVar(&recordFile, "file", "", "record from a JSON file (- for stdin)")
	groupsAddCmd.Flags().BoolVar(&encodeHTML, "encode-html", false, "entity-escape string fields before sending")

	groupsUpdateCmd.Flags().StringVar(&recordData, "data", "", "record as inline JSON")
	groupsUpdateCmd.Flags().StringVar(&recordFile, "file", "", "record from a JSON file (- for stdin)")
	groupsUpdateCmd.Flags().BoolVar(&encodeHTML, "encode-html", false, "entity-escape string fields before sending")

	groupsDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompt")

	groupsCmd.AddCommand(groupsSearchCmd)
	groupsCmd.AddCommand(groupsGetCmd)
	groupsCmd.AddCommand(groupsAddCmd)
	groupsCmd.AddCommand(groupsUpdateCmd)
	groupsCmd.AddCommand(groupsDeleteCmd)
	rootCmd.AddCommand(groupsCmd)
}

func runGroupsSearch(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	resp, err := client.SearchAttributeGroups(context.Background(), name)
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
		fmt.Println("No attribute groups found.")
		return nil
	}
	return printJSON(records)
}

func runGroupsGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid attribute group ID %q", args[0])
	}

	resp, err := client.GetAttributeGroup(context.Background(), id)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("lookup failed: %s", resp.Error)
	}
	return printJSON(resp.DataMap())
}

func runGroupsAdd(cmd *cobra.Command, args []string) error {
	record, err := loadRecord(recordData, recordFile)
	if err != nil {
		return err
	}

	resp, err := client.AddAttributeGroup(context.Background(), record, encodeHTML)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("create failed: %s", resp.Error)
	}

	logger.Info().Msg("Attribute group created")
	return printJSON(resp.Fields)
}

func runGroupsUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid attribute group ID %q", args[0])
	}

	record, err := loadRecord(recordData, recordFile)
	if err != nil {
		return err
	}

	resp, err := client.UpdateAttributeGroup(context.Background(), id, record, encodeHTML)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("update failed: %s", resp.Error)
	}

	logger.Info().Int("attribute_group_id", id).Msg("Attribute group updated")
	if resp.Message != "" {
		fmt.Println(resp.Message)
	}
	return nil
}

func runGroupsDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid attribute group ID %q", args[0])
	}

	if !assumeYes && !confirm(fmt.Sprintf("Delete attribute group %d?", id)) {
		fmt.Println("Cancelled.")
		return nil
	}

	resp, err := client.DeleteAttributeGroup(context.Background(), id)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("delete failed: %s", resp.Error)
	}

	logger.Info().Int("attribute_group_id", id).Msg("Attribute group deleted")
	return nil
}
