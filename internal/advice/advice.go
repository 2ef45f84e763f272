// Package advice turns monthly aggregates into recommendations using a fixed
// rule table. Rules are evaluated independently: every applicable rule fires
// and none suppresses another. The "Others" bucket never participates.
package advice

import (
	"fmt"

	"finsight/internal/aggregate"
	"finsight/internal/currencyutils"
	"finsight/internal/logging"
	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// Rule identifiers, also used as AdviceItem ids.
const (
	RuleHighFoodSpend      = "high-food-spend"
	RuleSubscriptionReview = "subscription-review"
	RuleShoppingAlert      = "shopping-alert"
	RuleGoalAtRisk         = "goal-at-risk"
)

// Category names the rule table keys on.
const (
	categoryFood          = "Food"
	categorySubscriptions = "Subscriptions"
	categoryShopping      = "Shopping"
)

// Thresholds parameterizes the rule table. All comparisons are strict:
// a category sitting exactly on a threshold does not fire.
type Thresholds struct {
	FoodSharePercent     decimal.Decimal
	ShoppingSharePercent decimal.Decimal
	SubscriptionMonthly  decimal.Decimal
	SubscriptionCap      decimal.Decimal
}

// DefaultThresholds returns the standard rule table values.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FoodSharePercent:     decimal.NewFromInt(30),
		ShoppingSharePercent: decimal.NewFromInt(25),
		SubscriptionMonthly:  decimal.NewFromInt(1500),
		SubscriptionCap:      decimal.NewFromInt(600),
	}
}

// Generator produces advice items from one month of expenses.
type Generator struct {
	thresholds Thresholds
	logger     logging.Logger
}

// NewGenerator creates a Generator with the given thresholds.
func NewGenerator(thresholds Thresholds, logger logging.Logger) *Generator {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Generator{thresholds: thresholds, logger: logger}
}

// Generate evaluates the rule table against the given month's expenses and
// returns the advice items of every rule that fired, in table order. The
// goal may be nil; only an active goal participates in the goal-at-risk rule.
func (g *Generator) Generate(expenses []models.Expense, catalog []models.Category, goal *models.SavingsGoal, monthKey string) []models.AdviceItem {
	totals := aggregate.MonthlyTotals(expenses, catalog, monthKey)
	monthTotal := aggregate.MonthTotal(expenses, monthKey)

	items := []models.AdviceItem{}

	if item, ok := g.foodRule(totals, monthTotal); ok {
		items = append(items, item)
	}
	if item, ok := g.subscriptionRule(totals); ok {
		items = append(items, item)
	}
	if item, ok := g.shoppingRule(totals, monthTotal); ok {
		items = append(items, item)
	}
	if item, ok := g.goalRule(goal, monthTotal); ok {
		items = append(items, item)
	}

	g.logger.WithField("count", len(items)).Debug("Generated advice items")
	return items
}

func (g *Generator) foodRule(totals []models.CategoryTotal, monthTotal decimal.Decimal) (models.AdviceItem, bool) {
	ct, ok := findByName(totals, categoryFood)
	if !ok || !shareExceeds(ct.Total, monthTotal, g.thresholds.FoodSharePercent) {
		return models.AdviceItem{}, false
	}

	savings := ct.Total.Mul(decimal.NewFromFloat(0.30)).Round(2)
	return models.AdviceItem{
		ID:    RuleHighFoodSpend,
		Title: "High food spending",
		Message: fmt.Sprintf(
			"Food makes up %.1f%% of this month's spending (%s). Planning meals and cooking at home more often could save about %s.",
			ct.Percentage,
			currencyutils.FormatAmount(ct.Total, ""),
			currencyutils.FormatAmount(savings, ""),
		),
		PotentialSavings: &savings,
		CategoryID:       ct.CategoryID,
	}, true
}

func (g *Generator) subscriptionRule(totals []models.CategoryTotal) (models.AdviceItem, bool) {
	ct, ok := findByName(totals, categorySubscriptions)
	if !ok || !ct.Total.GreaterThan(g.thresholds.SubscriptionMonthly) {
		return models.AdviceItem{}, false
	}

	savings := ct.Total.Mul(decimal.NewFromFloat(0.40)).Round(2)
	if savings.GreaterThan(g.thresholds.SubscriptionCap) {
		savings = g.thresholds.SubscriptionCap
	}
	return models.AdviceItem{
		ID:    RuleSubscriptionReview,
		Title: "Review your subscriptions",
		Message: fmt.Sprintf(
			"You spent %s on subscriptions this month. Cancelling unused services could free up to %s.",
			currencyutils.FormatAmount(ct.Total, ""),
			currencyutils.FormatAmount(savings, ""),
		),
		PotentialSavings: &savings,
		CategoryID:       ct.CategoryID,
	}, true
}

func (g *Generator) shoppingRule(totals []models.CategoryTotal, monthTotal decimal.Decimal) (models.AdviceItem, bool) {
	ct, ok := findByName(totals, categoryShopping)
	if !ok || !shareExceeds(ct.Total, monthTotal, g.thresholds.ShoppingSharePercent) {
		return models.AdviceItem{}, false
	}

	savings := ct.Total.Mul(decimal.NewFromFloat(0.25)).Round(2)
	return models.AdviceItem{
		ID:    RuleShoppingAlert,
		Title: "Shopping alert",
		Message: fmt.Sprintf(
			"Shopping is %.1f%% of this month's spending (%s). Waiting a day before non-essential purchases could save about %s.",
			ct.Percentage,
			currencyutils.FormatAmount(ct.Total, ""),
			currencyutils.FormatAmount(savings, ""),
		),
		PotentialSavings: &savings,
		CategoryID:       ct.CategoryID,
	}, true
}

func (g *Generator) goalRule(goal *models.SavingsGoal, monthTotal decimal.Decimal) (models.AdviceItem, bool) {
	if goal == nil || !goal.Active || !monthTotal.GreaterThan(goal.MonthlyTarget) {
		return models.AdviceItem{}, false
	}

	return models.AdviceItem{
		ID:    RuleGoalAtRisk,
		Title: "Savings goal at risk",
		Message: fmt.Sprintf(
			"You have spent %s this month, above your %s monthly target.",
			currencyutils.FormatAmount(monthTotal, ""),
			currencyutils.FormatAmount(goal.MonthlyTarget, ""),
		),
	}, true
}

// shareExceeds reports whether part is strictly more than thresholdPercent of
// whole. Cross-multiplied so the boundary stays exact for decimal inputs.
func shareExceeds(part, whole, thresholdPercent decimal.Decimal) bool {
	if whole.IsZero() {
		return false
	}
	return part.Mul(decimal.NewFromInt(100)).GreaterThan(thresholdPercent.Mul(whole))
}

// findByName picks a category total by display name, skipping the fallback
// bucket so "Others" can never satisfy a rule.
func findByName(totals []models.CategoryTotal, name string) (models.CategoryTotal, bool) {
	for _, ct := range totals {
		if ct.CategoryName == name && ct.CategoryName != models.FallbackCategoryName {
			return ct, true
		}
	}
	return models.CategoryTotal{}, false
}
