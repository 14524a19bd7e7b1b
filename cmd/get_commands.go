package cmd

import (
	"fmt"

	"github.com/wixkit/wixkit/db"
	"github.com/wixkit/wixkit/lib"

	"github.com/spf13/cobra"
)

// getCommandsCmd represents the get commands command
var getCommandsCmd = &cobra.Command{
	Use:     "commands",
	Aliases: []string{"cli"},
	Short:   "List documented wix.exe commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, _, err := db.Connection.ListCliCommands()
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
	getCmd.AddCommand(getCommandsCmd)
}
