// Package advise handles the savings advice command
package advise

import (
	"fmt"
	"os"
	"time"

	"finsight/cmd/root"
	"finsight/internal/advice"
	"finsight/internal/aggregate"
	"finsight/internal/classifier"
	"finsight/internal/dateutils"
	"finsight/internal/ingest"
	"finsight/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the advise command
var Cmd = &cobra.Command{
	Use:   "advise",
	Short: "Generate savings advice from an expense export",
	Long: `Advise classifies an expense export and runs the advice rules against
the reference month, printing recommendations, a financial health score
and a suggested budget split.`,
	RunE: adviseFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.GoalName, "goal-name", "", "Name of the savings goal")
	Cmd.Flags().StringVar(&root.GoalTarget, "goal-target", "", "Monthly spending target for the goal")
}

func adviseFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Advise command called")

	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required")
	}

	asOf, err := root.ResolveAsOf()
	if err != nil {
		return err
	}

	goal, err := root.ResolveGoal()
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
	generator := advice.NewGenerator(root.AdviceThresholds(), logger)
	items := generator.Generate(expenses, catalog, goal, monthKey)

	if len(items) == 0 {
		fmt.Println("No recommendations this month. Your spending looks balanced.")
	}
	for _, item := range items {
		fmt.Printf("* %s\n  %s\n", item.Title, item.Message)
	}

	totals := aggregate.MonthlyTotals(expenses, catalog, monthKey)
	fmt.Printf("\nFinancial health score: %d/100\n", advice.HealthScore(totals))

	monthTotal := aggregate.MonthTotal(expenses, monthKey)
	plan := advice.SuggestBudget(monthTotal)
	fmt.Printf("Suggested 50/30/20 split for %s spending:\n", monthTotal.StringFixed(2))
	fmt.Printf("  needs %s, wants %s, savings %s\n",
		plan.Needs.StringFixed(2), plan.Wants.StringFixed(2), plan.Savings.StringFixed(2))
	fmt.Printf("  emergency fund target: %s\n", plan.EmergencyFund.StringFixed(2))
	return nil
}
