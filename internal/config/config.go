package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// OutputConfig holds artifact emission settings.
type OutputConfig struct {
	Dir      string   `json:"dir" mapstructure:"dir"`
	Formats  []string `json:"formats" mapstructure:"formats"`
	Compress bool     `json:"compress" mapstructure:"compress"`
}

// CatalogConfig holds build-catalog database settings.
type CatalogConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Type    string `json:"type" mapstructure:"type"`
	File    string `json:"file" mapstructure:"file"`
}

// Load reads configuration from the JSON config file and sets default
// values. configDir is the directory containing the config file.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")

	viper.SetDefault("spritesDir", "./assets/sprites")
	viper.SetDefault("profilesDir", "./profiles")

	viper.SetDefault("output.dir", "./dist")
	viper.SetDefault("output.formats", []string{"jsmodule"})
	viper.SetDefault("output.compress", false)

	viper.SetDefault("catalog.enabled", false)
	viper.SetDefault("catalog.type", "sqlite")
	viper.SetDefault("catalog.file", "./spritec_catalog.db")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "assets")

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "asset-pipeline")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", false)

	viper.SetConfigName("spritec.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetOutputConfig returns the artifact output settings.
func GetOutputConfig() OutputConfig {
	return OutputConfig{
		Dir:      viper.GetString("output.dir"),
		Formats:  viper.GetStringSlice("output.formats"),
		Compress: viper.GetBool("output.compress"),
	}
}

// GetCatalogConfig returns the build-catalog settings.
func GetCatalogConfig() CatalogConfig {
	return CatalogConfig{
		Enabled: viper.GetBool("catalog.enabled"),
		Type:    viper.GetString("catalog.type"),
		File:    viper.GetString("catalog.file"),
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
