package advice

import (
	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// healthDeduction maps a category share ceiling to the points lost when the
// share is exceeded.
type healthDeduction struct {
	category string
	limit    float64
	points   int
}

var healthDeductions = []healthDeduction{
	{categoryFood, 30, 10},
	{categoryShopping, 20, 8},
	{"Travel", 20, 6},
	{"Bills", 15, 5},
	{categorySubscriptions, 15, 5},
}

// HealthScore rates a month's category mix on a 0-100 scale. Every category
// whose share exceeds its limit deducts points; the score never goes below 0.
func HealthScore(totals []models.CategoryTotal) int {
	score := 100
	for _, d := range healthDeductions {
		for _, ct := range totals {
			if ct.CategoryName == d.category && ct.Percentage > d.limit {
				score -= d.points
				break
			}
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

// SuggestBudget splits a month's spending into a 50/30/20 plan and sizes an
// emergency fund at six months of spending.
func SuggestBudget(monthTotal decimal.Decimal) models.BudgetPlan {
	return models.BudgetPlan{
		Needs:         monthTotal.Mul(decimal.NewFromFloat(0.50)).Round(2),
		Wants:         monthTotal.Mul(decimal.NewFromFloat(0.30)).Round(2),
		Savings:       monthTotal.Mul(decimal.NewFromFloat(0.20)).Round(2),
		EmergencyFund: monthTotal.Mul(decimal.NewFromInt(6)).Round(2),
	}
}
