package cmd

import (
	"fmt"

	"github.com/wixkit/wixkit/db"
	"github.com/wixkit/wixkit/lib"

	"github.com/spf13/cobra"
)

var dialogQuery string

// getDialogsCmd represents the get dialogs command
var getDialogsCmd = &cobra.Command{
	Use:     "dialogs",
	Aliases: []string{"dialog"},
	Short:   "List stock UI dialogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, _, err := db.Connection.ListDialogs(db.DialogFilter{Query: dialogQuery})
		if err != nil {
			return err
		}

		formatType, err := lib.ParseFormatType(format)
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
	getCmd.AddCommand(getDialogsCmd)
	getDialogsCmd.Flags().StringVarP(&dialogQuery, "query", "q", "", "Search query")
}
