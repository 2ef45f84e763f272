// Package root contains the root command for the application
package root

import (
	"fmt"
	"time"

	"finsight/internal/advice"
	"finsight/internal/config"
	"finsight/internal/dateutils"
	"finsight/internal/logging"
	"finsight/internal/models"
	"finsight/internal/store"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	AsOf   string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the resolved application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finsight",
		Short: "A CLI tool to classify expenses and generate spending insights.",
		Long: `finsight is a CLI tool that classifies expense exports into categories
and turns them into monthly reports, savings advice, spending spike alerts
and answers to simple questions about your money.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finsight!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			return nil
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific chat command flags
	Question string

	// Specific advise command flags
	GoalName   string
	GoalTarget string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.AsOf, "as-of", "", "Reference date (e.g. 2024-01-15, defaults to today)")
}

// ResolveAsOf parses the --as-of flag, defaulting to the current date.
func ResolveAsOf() (time.Time, error) {
	if SharedFlags.AsOf == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	asOf, _, err := dateutils.ParseTransactionDate(SharedFlags.AsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of date %q: %w", SharedFlags.AsOf, err)
	}
	return asOf, nil
}

// LoadCatalog reads the configured category catalog, falling back to the
// built-in defaults when no catalog file exists yet.
func LoadCatalog() ([]models.Category, error) {
	catalogStore := store.NewCategoryStore(Cfg.Catalog.File)
	catalog, err := catalogStore.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("error loading category catalog: %w", err)
	}
	if len(catalog) == 0 {
		catalog = models.DefaultCategories()
		// Seed the file so users have something to edit.
		if err := catalogStore.SaveCategories(catalog); err != nil {
			Log.WithError(err).Warn("Could not write default category catalog")
		} else {
			Log.WithField("file", Cfg.Catalog.File).Info("Created default category catalog")
		}
	}
	return catalog, nil
}

// EngineLogger wraps the shared logrus instance for the engine packages.
func EngineLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Delimiter returns the configured CSV delimiter as a rune.
func Delimiter() rune {
	return []rune(Cfg.CSV.Delimiter)[0]
}

// AdviceThresholds converts the configured rule thresholds for the engine.
func AdviceThresholds() advice.Thresholds {
	return advice.Thresholds{
		FoodSharePercent:     decimal.NewFromFloat(Cfg.Advice.FoodSharePercent),
		ShoppingSharePercent: decimal.NewFromFloat(Cfg.Advice.ShoppingSharePercent),
		SubscriptionMonthly:  decimal.NewFromFloat(Cfg.Advice.SubscriptionMonthly),
		SubscriptionCap:      decimal.NewFromFloat(Cfg.Advice.SubscriptionCap),
	}
}

// ResolveGoal builds a savings goal from the --goal-name/--goal-target flags.
// Returns nil when no target was given.
func ResolveGoal() (*models.SavingsGoal, error) {
	if GoalTarget == "" {
		return nil, nil
	}
	target, err := decimal.NewFromString(GoalTarget)
	if err != nil {
		return nil, fmt.Errorf("invalid --goal-target %q: %w", GoalTarget, err)
	}
	name := GoalName
	if name == "" {
		name = "Monthly budget"
	}
	return &models.SavingsGoal{Name: name, MonthlyTarget: target, Active: true}, nil
}
