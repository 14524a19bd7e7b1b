package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func LoadConfig() {
	viper.SetConfigName("wixkit")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/wixkit/")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("No config file found, using defaults")
		} else {
			log.Panic().Err(err).Msg("Fatal error reading config file")
		}
	}
	SetDefaultConfig()
}

func SetDefaultConfig() {
	// Knowledge base store
	viper.SetDefault("db.path", "wix.db")

	// Descriptor and fixture layout
	viper.SetDefault("data.elements_dir", "data/elements")
	viper.SetDefault("data.fixtures_dir", "data/fixtures")
	viper.SetDefault("data.cache_dir", ".cache/xsd")
	viper.SetDefault("data.schema_ref", "../schema/element.schema.json")

	// WiX v4 schema locations, one per namespace
	viper.SetDefault("schemas.urls", map[string]string{
		"wxs":   "https://raw.githubusercontent.com/wixtoolset/wix/main/src/xsd/wix.xsd",
		"bal":   "https://raw.githubusercontent.com/wixtoolset/wix/main/src/xsd/bal.xsd",
		"util":  "https://raw.githubusercontent.com/wixtoolset/wix/main/src/xsd/util.xsd",
		"netfx": "https://raw.githubusercontent.com/wixtoolset/wix/main/src/xsd/netfx.xsd",
		"ui":    "https://raw.githubusercontent.com/wixtoolset/wix/main/src/xsd/ui.xsd",
	})
	viper.SetDefault("schemas.fallback_urls", map[string]string{
		"wxs": "https://wixtoolset.org/schemas/v4/wxs/wix.xsd",
	})
	viper.SetDefault("schemas.fetch_timeout", 30)
	viper.SetDefault("schemas.docs_base", "https://wixtoolset.org/docs/schema/wxs/")
}
