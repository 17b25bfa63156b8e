package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the service settings.
type Config struct {
	ListenAddr     string `mapstructure:"listen_addr"`
	DBPath         string `mapstructure:"db_path"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
	// ColumnMapFile optionally points at a YAML file mapping canonical
	// columns to the header names of a custom CSV layout.
	ColumnMapFile string `mapstructure:"column_map_file"`
}

// Load reads configuration with precedence env > config file > defaults.
// Environment variables use the DASH_ prefix (DASH_LISTEN_ADDR, ...). A
// missing config file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DASH")
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("db_path", "dashboard.db")
	v.SetDefault("max_upload_bytes", int64(32<<20))
	v.SetDefault("column_map_file", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("dashboard")
		v.SetConfigType("yaml")
		_ = v.ReadInConfig()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
