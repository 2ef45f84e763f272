// Package chat answers free-form spending questions with keyword intent
// matching. Intents are tried in a fixed order and the first match wins.
package chat

import (
	"fmt"
	"strings"
	"time"

	"finsight/internal/advice"
	"finsight/internal/aggregate"
	"finsight/internal/currencyutils"
	"finsight/internal/dateutils"
	"finsight/internal/logging"
	"finsight/internal/models"
)

const helpMessage = "I can answer questions about your biggest expense, how to save money, " +
	"your savings goal, and your travel spending. Try asking one of those."

// Responder answers questions about one user's expense history.
type Responder struct {
	generator *advice.Generator
	logger    logging.Logger
}

// New creates a Responder. The generator supplies the savings tips behind
// the "how do I save" intent.
func New(generator *advice.Generator, logger logging.Logger) *Responder {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	if generator == nil {
		generator = advice.NewGenerator(advice.DefaultThresholds(), logger)
	}
	return &Responder{generator: generator, logger: logger}
}

// Respond answers a question against the asOf month's expenses. Matching is
// case-insensitive on keywords; an unrecognized question gets a help message.
func (r *Responder) Respond(query string, expenses []models.Expense, catalog []models.Category, goal *models.SavingsGoal, asOf time.Time) string {
	q := strings.ToLower(query)
	monthKey := dateutils.MonthKey(asOf)

	switch {
	case strings.Contains(q, "biggest") && strings.Contains(q, "expense"):
		return r.biggestExpense(expenses, catalog, monthKey)
	case strings.Contains(q, "save") || strings.Contains(q, "saving"):
		return r.savingTips(expenses, catalog, goal, monthKey)
	case strings.Contains(q, "goal"):
		return r.goalStatus(expenses, goal, monthKey)
	case strings.Contains(q, "transport") || strings.Contains(q, "travel"):
		return r.travelSpend(expenses, catalog, monthKey)
	default:
		r.logger.WithField("query", query).Debug("No intent matched")
		return helpMessage
	}
}

func (r *Responder) biggestExpense(expenses []models.Expense, catalog []models.Category, monthKey string) string {
	top, ok := aggregate.TopCategory(expenses, catalog, monthKey)
	if !ok {
		return "I don't see any expenses for this month yet."
	}
	return fmt.Sprintf(
		"Your biggest expense category this month is %s at %s (%.1f%% of your spending).",
		top.CategoryName,
		currencyutils.FormatAmount(top.Total, ""),
		top.Percentage,
	)
}

func (r *Responder) savingTips(expenses []models.Expense, catalog []models.Category, goal *models.SavingsGoal, monthKey string) string {
	items := r.generator.Generate(expenses, catalog, goal, monthKey)
	if len(items) == 0 {
		return "Your spending looks balanced this month. Keep it up!"
	}
	if len(items) > 2 {
		items = items[:2]
	}
	messages := make([]string, 0, len(items))
	for _, item := range items {
		messages = append(messages, item.Message)
	}
	return strings.Join(messages, " ")
}

func (r *Responder) goalStatus(expenses []models.Expense, goal *models.SavingsGoal, monthKey string) string {
	if goal == nil || !goal.Active {
		return "You haven't set a savings goal yet. Setting a monthly target is a great first step."
	}
	total := aggregate.MonthTotal(expenses, monthKey)
	if total.GreaterThan(goal.MonthlyTarget) {
		over := total.Sub(goal.MonthlyTarget)
		return fmt.Sprintf(
			"You're %s over your %s target for %q this month. Trimming a few purchases would get you back on track.",
			currencyutils.FormatAmount(over, ""),
			currencyutils.FormatAmount(goal.MonthlyTarget, ""),
			goal.Name,
		)
	}
	remaining := goal.MonthlyTarget.Sub(total)
	return fmt.Sprintf(
		"You're on track for %q: %s of headroom left against your %s target.",
		goal.Name,
		currencyutils.FormatAmount(remaining, ""),
		currencyutils.FormatAmount(goal.MonthlyTarget, ""),
	)
}

func (r *Responder) travelSpend(expenses []models.Expense, catalog []models.Category, monthKey string) string {
	cat, ok := models.FindCategoryByName(catalog, "Travel")
	if !ok {
		return "I don't see a travel category in your setup."
	}
	totals := aggregate.MonthlyTotals(expenses, catalog, monthKey)
	for _, ct := range totals {
		if ct.CategoryID == cat.ID {
			return fmt.Sprintf("You've spent %s on travel this month.", currencyutils.FormatAmount(ct.Total, ""))
		}
	}
	return "No travel spending recorded this month."
}
