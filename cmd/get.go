package cmd

import (
	"github.com/spf13/cobra"
)

var format string
var page int
var pageSize int

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Query knowledge base content",
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.PersistentFlags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml, text, pretty)")
	getCmd.PersistentFlags().IntVarP(&page, "page", "p", 0, "Page number")
	getCmd.PersistentFlags().IntVar(&pageSize, "page-size", 0, "Page size (0 lists everything)")
}
