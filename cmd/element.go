package cmd

import (
	"fmt"

	"github.com/wixkit/wixkit/lib"
	"github.com/wixkit/wixkit/pkg/schema"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var elementDir string
var elementFormat string

// elementCmd prints one stored element descriptor.
var elementCmd = &cobra.Command{
	Use:     "element [name]",
	Aliases: []string{"el"},
	Short:   "Show a stored element descriptor",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := elementDir
		if dir == "" {
			dir = viper.GetString("data.elements_dir")
		}
		store, err := schema.NewDescriptorStore(dir)
		if err != nil {
			return err
		}

		element, ok := store.LoadExisting(args[0])
		if !ok {
			return fmt.Errorf("no descriptor for element %s in %s", args[0], dir)
		}

		formatType, err := lib.ParseFormatType(elementFormat)
		if err != nil {
			return err
		}

		formattedOutput, err := lib.FormatSingleOutput(element, formatType)
		if err != nil {
			return err
		}

		fmt.Println(formattedOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(elementCmd)
	elementCmd.Flags().StringVarP(&elementDir, "dir", "d", "", "Descriptor directory (default from config)")
	elementCmd.Flags().StringVarP(&elementFormat, "format", "f", "json", "Output format (json, yaml, text, pretty, table)")
}
