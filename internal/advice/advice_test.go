package advice

import (
	"testing"
	"time"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Food"},
		{ID: "2", Name: "Travel"},
		{ID: "3", Name: "Shopping"},
		{ID: "4", Name: "Bills"},
		{ID: "5", Name: "Subscriptions"},
		{ID: "6", Name: "Others"},
	}
}

func expense(date string, categoryID string, amount float64) models.Expense {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Expense{
		Transaction: models.Transaction{
			Date:        d,
			Description: "test",
			Amount:      decimal.NewFromFloat(amount),
		},
		CategoryID: categoryID,
	}
}

func findItem(items []models.AdviceItem, id string) (models.AdviceItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return models.AdviceItem{}, false
}

func TestGenerateFoodRule(t *testing.T) {
	// Food is 1000 of 1500, well past the 30% threshold.
	expenses := []models.Expense{
		expense("2024-01-05", "1", 1000),
		expense("2024-01-10", "6", 500),
	}

	g := NewGenerator(DefaultThresholds(), nil)
	items := g.Generate(expenses, testCatalog(), nil, "2024-01")

	require.Len(t, items, 1)
	assert.Equal(t, RuleHighFoodSpend, items[0].ID)
	assert.Equal(t, "1", items[0].CategoryID)
	require.NotNil(t, items[0].PotentialSavings)
	assert.True(t, items[0].PotentialSavings.Equal(decimal.NewFromInt(300)))
	assert.Contains(t, items[0].Message, "66.7%")
	assert.Contains(t, items[0].Message, "300.00")
}

func TestGenerateFoodRuleExactThresholdDoesNotFire(t *testing.T) {
	// Food is exactly 30% of the month. The comparison is strict.
	expenses := []models.Expense{
		expense("2024-01-05", "1", 300),
		expense("2024-01-10", "6", 700),
	}

	g := NewGenerator(DefaultThresholds(), nil)
	items := g.Generate(expenses, testCatalog(), nil, "2024-01")

	_, found := findItem(items, RuleHighFoodSpend)
	assert.False(t, found)
}

func TestGenerateFoodRuleJustOverThresholdFires(t *testing.T) {
	expenses := []models.Expense{
		expense("2024-01-05", "1", 300.01),
		expense("2024-01-10", "6", 699.99),
	}

	g := NewGenerator(DefaultThresholds(), nil)
	items := g.Generate(expenses, testCatalog(), nil, "2024-01")

	_, found := findItem(items, RuleHighFoodSpend)
	assert.True(t, found)
}

func TestGenerateSubscriptionRule(t *testing.T) {
	tests := []struct {
		name            string
		total           float64
		expectFire      bool
		expectedSavings string
	}{
		{"Exactly at threshold", 1500, false, ""},
		{"Just above threshold", 1500.01, true, "600.00"},
		{"Below threshold", 1200, false, ""},
		{"High spend hits cap", 5000, true, "600"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expenses := []models.Expense{
				expense("2024-01-05", "5", tc.total),
				// Dilute the share so no other rule can interfere.
				expense("2024-01-10", "6", tc.total*10),
			}

			g := NewGenerator(DefaultThresholds(), nil)
			items := g.Generate(expenses, testCatalog(), nil, "2024-01")

			item, found := findItem(items, RuleSubscriptionReview)
			if !tc.expectFire {
				assert.False(t, found)
				return
			}
			require.True(t, found)
			require.NotNil(t, item.PotentialSavings)
			assert.True(t, item.PotentialSavings.Equal(decimal.RequireFromString(tc.expectedSavings)))
		})
	}
}

func TestGenerateShoppingRule(t *testing.T) {
	// Shopping is 400 of 1000, past the 25% threshold.
	expenses := []models.Expense{
		expense("2024-01-05", "3", 400),
		expense("2024-01-10", "6", 600),
	}

	g := NewGenerator(DefaultThresholds(), nil)
	items := g.Generate(expenses, testCatalog(), nil, "2024-01")

	item, found := findItem(items, RuleShoppingAlert)
	require.True(t, found)
	require.NotNil(t, item.PotentialSavings)
	assert.True(t, item.PotentialSavings.Equal(decimal.NewFromInt(100)))
}

func TestGenerateGoalRule(t *testing.T) {
	expenses := []models.Expense{
		expense("2024-01-05", "6", 2500),
	}
	active := &models.SavingsGoal{Name: "Trip fund", MonthlyTarget: decimal.NewFromInt(2000), Active: true}
	inactive := &models.SavingsGoal{Name: "Paused", MonthlyTarget: decimal.NewFromInt(2000), Active: false}
	comfortable := &models.SavingsGoal{Name: "Roomy", MonthlyTarget: decimal.NewFromInt(5000), Active: true}

	g := NewGenerator(DefaultThresholds(), nil)

	items := g.Generate(expenses, testCatalog(), active, "2024-01")
	item, found := findItem(items, RuleGoalAtRisk)
	require.True(t, found)
	assert.Nil(t, item.PotentialSavings)
	assert.Contains(t, item.Message, "2500.00")
	assert.Contains(t, item.Message, "2000.00")

	items = g.Generate(expenses, testCatalog(), inactive, "2024-01")
	_, found = findItem(items, RuleGoalAtRisk)
	assert.False(t, found)

	items = g.Generate(expenses, testCatalog(), comfortable, "2024-01")
	_, found = findItem(items, RuleGoalAtRisk)
	assert.False(t, found)

	items = g.Generate(expenses, testCatalog(), nil, "2024-01")
	_, found = findItem(items, RuleGoalAtRisk)
	assert.False(t, found)
}

func TestGenerateRulesAreIndependent(t *testing.T) {
	// Food 40%, Shopping 30% and Subscriptions over 1500 all at once.
	expenses := []models.Expense{
		expense("2024-01-05", "1", 4000),
		expense("2024-01-10", "3", 3000),
		expense("2024-01-15", "5", 2000),
		expense("2024-01-20", "6", 1000),
	}
	goal := &models.SavingsGoal{Name: "Budget", MonthlyTarget: decimal.NewFromInt(5000), Active: true}

	g := NewGenerator(DefaultThresholds(), nil)
	items := g.Generate(expenses, testCatalog(), goal, "2024-01")

	require.Len(t, items, 4)
	assert.Equal(t, RuleHighFoodSpend, items[0].ID)
	assert.Equal(t, RuleSubscriptionReview, items[1].ID)
	assert.Equal(t, RuleShoppingAlert, items[2].ID)
	assert.Equal(t, RuleGoalAtRisk, items[3].ID)
}

func TestGenerateOthersNeverTriggersRules(t *testing.T) {
	// The whole month lands in the fallback bucket.
	expenses := []models.Expense{
		expense("2024-01-05", "6", 9000),
	}

	g := NewGenerator(DefaultThresholds(), nil)
	items := g.Generate(expenses, testCatalog(), nil, "2024-01")
	assert.Empty(t, items)
}

func TestGenerateEmptyMonth(t *testing.T) {
	g := NewGenerator(DefaultThresholds(), nil)
	items := g.Generate(nil, testCatalog(), nil, "2024-01")
	assert.Empty(t, items)
}
