package cmd

import (
	"fmt"
	"sort"

	"github.com/wixkit/wixkit/pkg/schema"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var extractURL string
var extractLocal string
var extractNamespace string
var extractOutput string
var extractVerbose bool

// extractCmd parses one schema and dumps fresh descriptors without
// merging, mainly useful for inspecting what a schema defines.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract element descriptors from a single XSD schema",
	Long: `Parses one schema document and writes a fresh descriptor per element,
overwriting whatever the output directory already holds. Unlike
harvest, nothing is merged and nothing is skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := schema.NewDescriptorStore(extractOutput)
		if err != nil {
			return err
		}

		parser := schema.NewParser().
			WithDocsBase(viper.GetString("schemas.docs_base")).
			WithSchemaRef(viper.GetString("data.schema_ref"))

		var result *schema.ParseResult
		if extractLocal != "" {
			result, err = parser.ParseFile(extractLocal, extractNamespace)
		} else {
			result, err = parser.ParseFromURL(extractURL, extractNamespace)
		}
		if err != nil {
			return err
		}

		schema.ResolveRelationships(result.Elements)

		names := make([]string, 0, len(result.Elements))
		for name := range result.Elements {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if err := store.Write(*result.Elements[name]); err != nil {
				return err
			}
			if extractVerbose {
				element := result.Elements[name]
				fmt.Printf("%s: %d attributes, %d children\n", name, len(element.Attributes), len(element.Children))
			}
		}

		fmt.Printf("Extracted %d elements into %s\n", len(names), store.Dir())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractURL, "url", "u", "https://wixtoolset.org/schemas/v4/wxs/wix.xsd", "Schema URL to extract from")
	extractCmd.Flags().StringVarP(&extractLocal, "local", "l", "", "Local schema file instead of a URL")
	extractCmd.Flags().StringVarP(&extractNamespace, "namespace", "n", "wxs", "Namespace label recorded on the descriptors")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "data/elements", "Descriptor output directory")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print per element counts")
}
