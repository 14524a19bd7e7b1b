package cmd

import (
	"fmt"

	"github.com/wixkit/wixkit/db"
	"github.com/wixkit/wixkit/pkg/export"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportDir string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump knowledge base tables to JSON fixture files",
	Long: `Writes the database content back out as versioned JSON fixtures so
curated content can live in source control and the database can be
rebuilt from scratch.`,
}

func newExportCommand(use string, aliases []string, short string, run func(*export.Exporter) (int, error)) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   short,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := exportDir
			if dir == "" {
				dir = viper.GetString("data.fixtures_dir")
			}
			exporter, err := export.NewExporter(db.Connection, dir)
			if err != nil {
				return err
			}
			exporter.WithElementsDir(viper.GetString("data.elements_dir"))
			count, err := run(exporter)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d rows to %s\n", count, dir)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.PersistentFlags().StringVarP(&exportDir, "output", "o", "", "Fixture output directory (default from config)")
	exportCmd.AddCommand(
		newExportCommand("enrichments", []string{"rules"}, "Export rule rationale and fix suggestions", (*export.Exporter).ExportRuleEnrichments),
		newExportCommand("conditions", nil, "Export rule evaluation conditions", (*export.Exporter).ExportRuleConditions),
		newExportCommand("msitables", []string{"tables", "msi"}, "Export MSI table column layouts", (*export.Exporter).ExportMsiTables),
		newExportCommand("enums", nil, "Export attribute enum value descriptions", (*export.Exporter).ExportEnumDescriptions),
		newExportCommand("directories", []string{"dirs"}, "Export the standard directory reference", (*export.Exporter).ExportStandardDirectories),
		newExportCommand("sources", nil, "Export data provenance records", (*export.Exporter).ExportDataSources),
		newExportCommand("clicommands", []string{"cli"}, "Export the wix.exe command documentation", (*export.Exporter).ExportCliCommands),
		newExportCommand("parents", nil, "Export element parent relationships from the descriptors", (*export.Exporter).ExportElementParents),
		newExportCommand("all", nil, "Run every exporter", (*export.Exporter).ExportAll),
	)
}
