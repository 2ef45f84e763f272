// Package classify handles expense classification commands
package classify

import (
	"fmt"
	"os"
	"time"

	"finsight/cmd/root"
	"finsight/internal/classifier"
	"finsight/internal/ingest"
	"finsight/internal/models"
	"finsight/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a CSV expense export into categories",
	Long: `Classify parses a delimited expense export, assigns each expense a
category by keyword matching and writes the classified rows to CSV.`,
	RunE: classifyFunc,
}

func classifyFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Classify command called")

	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required")
	}

	asOf, err := root.ResolveAsOf()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	logger := root.EngineLogger()
	ingestor := ingest.New(root.Delimiter(), logger)
	transactions, err := ingestor.Parse(string(raw), asOf)
	if err != nil {
		return err
	}

	catalog, err := root.LoadCatalog()
	if err != nil {
		return err
	}

	cls := classifier.New(catalog, root.Cfg.Catalog.FallbackCategory, logger)
	expenses, err := cls.ClassifyAll(transactions, "local", models.SourceImported, time.Now().UTC())
	if err != nil {
		return err
	}

	if root.SharedFlags.Output != "" {
		writer := report.NewWriter(root.Delimiter(), logger)
		if err := writer.WriteExpenses(expenses, catalog, root.SharedFlags.Output); err != nil {
			return err
		}
		root.Log.WithField("count", len(expenses)).Infof("Wrote classified expenses to %s", root.SharedFlags.Output)
		return nil
	}

	for _, e := range expenses {
		fmt.Printf("%s  %-12s  %10s  %s\n",
			e.DateISO(),
			models.CategoryNameByID(catalog, e.CategoryID),
			e.Amount.StringFixed(2),
			e.Description,
		)
	}
	return nil
}
