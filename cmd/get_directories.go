package cmd

import (
	"fmt"

	"github.com/wixkit/wixkit/db"
	"github.com/wixkit/wixkit/lib"

	"github.com/spf13/cobra"
)

var directoryScope string
var directoryQuery string

// getDirectoriesCmd represents the get directories command
var getDirectoriesCmd = &cobra.Command{
	Use:     "directories",
	Aliases: []string{"dirs", "d"},
	Short:   "List standard installer directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		if directoryScope != "" && !lib.SliceContains([]string{"machine", "user", "both"}, directoryScope) {
			return fmt.Errorf("unknown scope: %s", directoryScope)
		}

		items, _, err := db.Connection.ListStandardDirectories(db.StandardDirectoryFilter{
			Scope: directoryScope,
			Query: directoryQuery,
		})
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
	getCmd.AddCommand(getDirectoriesCmd)
	getDirectoriesCmd.Flags().StringVarP(&directoryScope, "scope", "s", "", "Filter by scope (machine, user, both)")
	getDirectoriesCmd.Flags().StringVarP(&directoryQuery, "query", "q", "", "Search query")
}
