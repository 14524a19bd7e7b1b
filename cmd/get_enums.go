package cmd

import (
	"fmt"

	"github.com/wixkit/wixkit/db"
	"github.com/wixkit/wixkit/lib"

	"github.com/spf13/cobra"
)

var enumElement string
var enumAttribute string

// getEnumsCmd represents the get enums command
var getEnumsCmd = &cobra.Command{
	Use:     "enums",
	Aliases: []string{"enum"},
	Short:   "List attribute enum value descriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, _, err := db.Connection.ListEnumDescriptions(db.EnumDescriptionFilter{
			Element:    enumElement,
			Attribute:  enumAttribute,
			Pagination: db.Pagination{Page: page, PageSize: pageSize},
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
	getCmd.AddCommand(getEnumsCmd)
	getEnumsCmd.Flags().StringVarP(&enumElement, "element", "e", "", "Filter by element name")
	getEnumsCmd.Flags().StringVarP(&enumAttribute, "attribute", "a", "", "Filter by attribute name")
}
