package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(old)
	})
}

func TestInitializeConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "categories.yaml", cfg.Catalog.File)
	assert.Equal(t, "Others", cfg.Catalog.FallbackCategory)
	assert.Equal(t, 30.0, cfg.Advice.FoodSharePercent)
	assert.Equal(t, 25.0, cfg.Advice.ShoppingSharePercent)
	assert.Equal(t, 1500.0, cfg.Advice.SubscriptionMonthly)
	assert.Equal(t, 600.0, cfg.Advice.SubscriptionCap)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FINSIGHT_CSV_DELIMITER", ";")
	t.Setenv("FINSIGHT_CATALOG_FILE", "my-categories.yaml")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.CSV.Delimiter)
	assert.Equal(t, "my-categories.yaml", cfg.Catalog.File)
}

func TestInitializeConfigFileOverride(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	raw := "advice:\n  food_share_percent: 40\n  shopping_share_percent: 20\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0600))

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, 40.0, cfg.Advice.FoodSharePercent)
	assert.Equal(t, 20.0, cfg.Advice.ShoppingSharePercent)
	assert.Equal(t, 1500.0, cfg.Advice.SubscriptionMonthly)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.CSV.Delimiter = ","
		cfg.Catalog.FallbackCategory = "Others"
		cfg.Advice.FoodSharePercent = 30
		cfg.Advice.ShoppingSharePercent = 25
		cfg.Advice.SubscriptionMonthly = 1500
		return cfg
	}

	assert.NoError(t, validateConfig(base()))

	bad := base()
	bad.CSV.Delimiter = ";;"
	assert.Error(t, validateConfig(bad))

	bad = base()
	bad.Catalog.FallbackCategory = ""
	assert.Error(t, validateConfig(bad))

	bad = base()
	bad.Advice.FoodSharePercent = 0
	assert.Error(t, validateConfig(bad))

	bad = base()
	bad.Advice.ShoppingSharePercent = 150
	assert.Error(t, validateConfig(bad))

	bad = base()
	bad.Advice.SubscriptionMonthly = -1
	assert.Error(t, validateConfig(bad))
}
