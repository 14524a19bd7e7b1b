package cmd

import (
	"fmt"

	"github.com/wixkit/wixkit/db"
	"github.com/wixkit/wixkit/lib"

	"github.com/spf13/cobra"
)

var ruleCategories []string
var ruleSeverities []string
var ruleQuery string

// getRulesCmd represents the get rules command
var getRulesCmd = &cobra.Command{
	Use:     "rules",
	Aliases: []string{"rule", "r"},
	Short:   "List lint rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := db.RuleFilter{
			Categories: ruleCategories,
			Severities: ruleSeverities,
			Query:      ruleQuery,
			Pagination: db.Pagination{Page: page, PageSize: pageSize},
		}

		items, _, err := db.Connection.ListRules(filter)
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
	getCmd.AddCommand(getRulesCmd)
	getRulesCmd.Flags().StringSliceVarP(&ruleCategories, "category", "c", nil, "Filter by category")
	getRulesCmd.Flags().StringSliceVarP(&ruleSeverities, "severity", "s", nil, "Filter by severity")
	getRulesCmd.Flags().StringVarP(&ruleQuery, "query", "q", "", "Search query")
}
