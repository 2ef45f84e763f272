// Package report handles the monthly summary command
package report

import (
	"fmt"
	"os"
	"time"

	"finsight/cmd/root"
	"finsight/internal/aggregate"
	"finsight/internal/anomaly"
	"finsight/internal/classifier"
	"finsight/internal/dateutils"
	"finsight/internal/ingest"
	"finsight/internal/models"
	"finsight/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a month's spending by category",
	Long: `Report classifies an expense export and prints the monthly breakdown:
per-category totals and percentages, weekly trend and spike alerts.`,
	RunE: reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Report command called")

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

	monthKey := dateutils.MonthKey(asOf)
	summary := aggregate.Summarize(expenses, catalog, monthKey)

	fmt.Printf("Spending for %s\n", summary.MonthKey)
	fmt.Printf("Total: %s across %d expenses (avg %s)\n\n",
		summary.Total.StringFixed(2), summary.Count, summary.Average.StringFixed(2))
	for _, cs := range summary.Categories {
		fmt.Printf("  %-14s %10s  %5.1f%%  (%d expenses)\n",
			cs.CategoryName, cs.Total.StringFixed(2), cs.Percentage, cs.Count)
	}

	weeks := aggregate.WeeklyTotals(expenses, asOf)
	fmt.Println("\nLast four weeks:")
	for _, wt := range weeks {
		fmt.Printf("  week of %s  %10s\n", dateutils.ToISODate(wt.WeekStart), wt.Total.StringFixed(2))
	}

	detector := anomaly.New(logger)
	for _, alert := range detector.DetectSpikes(expenses, catalog, asOf) {
		fmt.Printf("\n%s\n", alert)
	}

	if root.SharedFlags.Output != "" {
		writer := report.NewWriter(root.Delimiter(), logger)
		if err := writer.WriteSummary(summary, root.SharedFlags.Output); err != nil {
			return err
		}
		root.Log.Infof("Wrote summary to %s", root.SharedFlags.Output)
	}
	return nil
}
