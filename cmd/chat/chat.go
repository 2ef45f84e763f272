// Package chat handles the question answering command
package chat

import (
	"fmt"
	"os"
	"time"

	"finsight/cmd/root"
	"finsight/internal/advice"
	"finsight/internal/chat"
	"finsight/internal/classifier"
	"finsight/internal/ingest"
	"finsight/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the chat command
var Cmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask a question about your spending",
	Long: `Chat answers simple questions against a classified expense export,
such as your biggest expense, how to save, goal progress or travel spend.`,
	RunE: chatFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Question, "question", "q", "", "Question to ask")
	Cmd.Flags().StringVar(&root.GoalName, "goal-name", "", "Name of the savings goal")
	Cmd.Flags().StringVar(&root.GoalTarget, "goal-target", "", "Monthly spending target for the goal")
	_ = Cmd.MarkFlagRequired("question")
}

func chatFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Chat command called")

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

	generator := advice.NewGenerator(root.AdviceThresholds(), logger)
	responder := chat.New(generator, logger)
	fmt.Println(responder.Respond(root.Question, expenses, catalog, goal, asOf))
	return nil
}
