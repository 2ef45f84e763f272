package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration. The thresholds
// default to the values of the built-in advice rule table; a config file or
// FINSIGHT_-prefixed environment variables can override them.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Catalog struct {
		File             string `mapstructure:"file" yaml:"file"`
		FallbackCategory string `mapstructure:"fallback_category" yaml:"fallback_category"`
	} `mapstructure:"catalog" yaml:"catalog"`

	Advice struct {
		FoodSharePercent     float64 `mapstructure:"food_share_percent" yaml:"food_share_percent"`
		ShoppingSharePercent float64 `mapstructure:"shopping_share_percent" yaml:"shopping_share_percent"`
		SubscriptionMonthly  float64 `mapstructure:"subscription_monthly" yaml:"subscription_monthly"`
		SubscriptionCap      float64 `mapstructure:"subscription_cap" yaml:"subscription_cap"`
	} `mapstructure:"advice" yaml:"advice"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config.yaml, then FINSIGHT_ environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(".finsight")
	v.AddConfigPath("$HOME/.finsight")

	v.SetEnvPrefix("FINSIGHT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars, but tell the user.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("catalog.file", "categories.yaml")
	v.SetDefault("catalog.fallback_category", "Others")

	v.SetDefault("advice.food_share_percent", 30.0)
	v.SetDefault("advice.shopping_share_percent", 25.0)
	v.SetDefault("advice.subscription_monthly", 1500.0)
	v.SetDefault("advice.subscription_cap", 600.0)
}

func validateConfig(config *Config) error {
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv.delimiter must be a single character, got %q", config.CSV.Delimiter)
	}
	if config.Catalog.FallbackCategory == "" {
		return fmt.Errorf("catalog.fallback_category must not be empty")
	}
	if config.Advice.FoodSharePercent <= 0 || config.Advice.FoodSharePercent > 100 {
		return fmt.Errorf("advice.food_share_percent must be in (0, 100]")
	}
	if config.Advice.ShoppingSharePercent <= 0 || config.Advice.ShoppingSharePercent > 100 {
		return fmt.Errorf("advice.shopping_share_percent must be in (0, 100]")
	}
	if config.Advice.SubscriptionMonthly < 0 {
		return fmt.Errorf("advice.subscription_monthly must not be negative")
	}
	return nil
}
