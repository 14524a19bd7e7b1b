package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/wixkit/wixkit/lib"
	"github.com/wixkit/wixkit/pkg/schema"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var harvestForce bool
var harvestDryRun bool
var harvestOffline bool
var harvestOutput string
var harvestOnly []string
var harvestLocalXsd string
var harvestVerbose bool

// harvestCmd scrapes every configured schema and reconciles the
// results with the descriptor directory.
var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Scrape the WiX XSD schemas into element descriptor files",
	Long: `Downloads every configured XSD schema (wxs, util, ui, netfx, bal and
any others listed under schemas.urls), extracts an element descriptor
per defined element and reconciles them with the descriptor directory.

Existing descriptors are skipped unless --force is given, in which case
structural facts are merged in while curated prose is preserved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if harvestVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}

		urls := viper.GetStringMapString("schemas.urls")
		fallbacks := viper.GetStringMapString("schemas.fallback_urls")
		if len(harvestOnly) > 0 {
			selected := make(map[string]string)
			for _, namespace := range harvestOnly {
				url, ok := urls[namespace]
				if !ok {
					return fmt.Errorf("unknown namespace: %s", namespace)
				}
				selected[namespace] = url
			}
			urls = selected
		}
		if len(urls) == 0 {
			return errors.New("no schema urls configured")
		}

		if harvestOutput == "" {
			harvestOutput = viper.GetString("data.elements_dir")
		}
		store, err := schema.NewDescriptorStore(harvestOutput)
		if err != nil {
			return err
		}

		parser := schema.NewParser().
			WithDocsBase(viper.GetString("schemas.docs_base")).
			WithSchemaRef(viper.GetString("data.schema_ref"))
		fetcher := schema.NewFetcher(viper.GetString("data.cache_dir")).
			WithClient(&http.Client{Timeout: time.Duration(viper.GetInt("schemas.fetch_timeout")) * time.Second})

		harvester := schema.NewHarvester(parser, fetcher, store, schema.HarvestOptions{
			Force:   harvestForce,
			DryRun:  harvestDryRun,
			Offline: harvestOffline,
		})

		if harvestLocalXsd != "" {
			if !lib.LocalFileExists(harvestLocalXsd) {
				log.Error().Str("path", harvestLocalXsd).Msg("Local schema file not found")
				os.Exit(1)
			}
			if err := harvester.HarvestFile(harvestLocalXsd, "wxs"); err != nil {
				return err
			}
		} else if err := harvester.HarvestURLs(urls, fallbacks); err != nil {
			return err
		}

		summary, err := harvester.Reconcile()
		if err != nil {
			if errors.Is(err, schema.ErrNoElements) {
				log.Error().Msg("No elements extracted from any schema, aborting")
				os.Exit(1)
			}
			return err
		}

		if harvestDryRun {
			fmt.Printf("Dry run: would create %d, update %d, skip %d descriptors\n", summary.Created, summary.Updated, summary.Skipped)
		} else {
			fmt.Printf("Created %d, updated %d, skipped %d descriptors in %s\n", summary.Created, summary.Updated, summary.Skipped, store.Dir())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(harvestCmd)
	harvestCmd.Flags().BoolVar(&harvestForce, "force", false, "Merge into existing descriptors instead of skipping them")
	harvestCmd.Flags().BoolVar(&harvestDryRun, "dry-run", false, "Compute the reconciliation without writing files")
	harvestCmd.Flags().BoolVar(&harvestOffline, "offline", false, "Only use already cached schema files")
	harvestCmd.Flags().StringVarP(&harvestOutput, "output", "o", "", "Descriptor directory (default from config)")
	harvestCmd.Flags().StringSliceVar(&harvestOnly, "only", nil, "Restrict to the given schema namespaces")
	harvestCmd.Flags().StringVar(&harvestLocalXsd, "xsd", "", "Parse a single local schema file instead of downloading")
	harvestCmd.Flags().BoolVarP(&harvestVerbose, "verbose", "v", false, "Detailed per element progress")
}
