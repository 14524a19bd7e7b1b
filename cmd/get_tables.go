package cmd

import (
	"fmt"

	"github.com/wixkit/wixkit/db"
	"github.com/wixkit/wixkit/lib"

	"github.com/spf13/cobra"
)

var tableQuery string
var tableName string

// getTablesCmd represents the get tables command
var getTablesCmd = &cobra.Command{
	Use:     "tables",
	Aliases: []string{"table", "t", "msitables"},
	Short:   "List MSI table definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatType, err := lib.ParseFormatType(format)
		if err != nil {
			return err
		}

		if tableName != "" {
			table, err := db.Connection.GetMsiTableByName(tableName)
			if err != nil {
				return err
			}
			formattedOutput, err := lib.FormatSingleOutput(table, formatType)
			if err != nil {
				return err
			}
			fmt.Println(formattedOutput)
			return nil
		}

		items, _, err := db.Connection.ListMsiTables(db.MsiTableFilter{Query: tableQuery})
		if err != nil {
			return err
		}

		formattedOutput, err := lib.FormatOutput(items, formatType)
		if err != nil {
			return err
		}

		fmt.Println(formattedOutput)
		return nil
	},
}

func init() {
	getCmd.AddCommand(getTablesCmd)
	getTablesCmd.Flags().StringVarP(&tableQuery, "query", "q", "", "Search query")
	getTablesCmd.Flags().StringVarP(&tableName, "name", "n", "", "Show a single table by name")
}
