package cmd

import (
	"fmt"

	"github.com/wixkit/wixkit/db"
	"github.com/wixkit/wixkit/pkg/curation"

	"github.com/spf13/cobra"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load curated content into the knowledge base",
	Long: `Upserts the embedded curation tables into the database. Every seeder
is idempotent: rows are keyed by their natural identifier, so running
a seeder twice updates instead of duplicating.`,
}

func newSeedCommand(use string, aliases []string, short string, run func(*curation.Seeder) (curation.Summary, error)) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   short,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeder := curation.NewSeeder(db.Connection)
			summary, err := run(seeder)
			if err != nil {
				return err
			}
			fmt.Println(summary.String())
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.AddCommand(
		newSeedCommand("rules", []string{"rule"}, "Seed the lint rule catalog", (*curation.Seeder).SeedRules),
		newSeedCommand("conditions", []string{"condition"}, "Seed rule evaluation conditions", (*curation.Seeder).SeedConditions),
		newSeedCommand("msitables", []string{"tables", "msi"}, "Seed MSI table column layouts", (*curation.Seeder).SeedMsiTables),
		newSeedCommand("enums", []string{"enum"}, "Seed attribute enum value descriptions", (*curation.Seeder).SeedEnumDescriptions),
		newSeedCommand("directories", []string{"dirs"}, "Seed the standard directory reference", (*curation.Seeder).SeedStandardDirectories),
		newSeedCommand("dialogs", []string{"dialog"}, "Seed the stock UI dialog set", (*curation.Seeder).SeedDialogs),
		newSeedCommand("clicommands", []string{"cli"}, "Seed the wix.exe command documentation", (*curation.Seeder).SeedCliCommands),
		newSeedCommand("sources", []string{"source"}, "Seed data provenance records", (*curation.Seeder).SeedDataSources),
		newSeedCommand("all", nil, "Run every seeder in dependency order", (*curation.Seeder).SeedAll),
	)
}
