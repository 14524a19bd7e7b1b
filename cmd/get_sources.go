package cmd

import (
	"fmt"

	"github.com/wixkit/wixkit/db"
	"github.com/wixkit/wixkit/lib"

	"github.com/spf13/cobra"
)

var sourceKinds []string

// getSourcesCmd represents the get sources command
var getSourcesCmd = &cobra.Command{
	Use:     "sources",
	Aliases: []string{"source"},
	Short:   "List data provenance records",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, _, err := db.Connection.ListDataSources(db.DataSourceFilter{Kinds: sourceKinds})
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
	getCmd.AddCommand(getSourcesCmd)
	getSourcesCmd.Flags().StringSliceVarP(&sourceKinds, "kind", "k", nil, "Filter by kind (xsd, documentation, msi, ice, ui)")
}
