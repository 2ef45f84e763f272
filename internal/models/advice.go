package models

import (
	"github.com/shopspring/decimal"
)

// AdviceItem is a generated recommendation. PotentialSavings is optional;
// rules that cannot quantify savings (goal-at-risk) leave it nil. CategoryID
// is empty when the advice is not tied to one category.
type AdviceItem struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Message          string           `json:"message"`
	PotentialSavings *decimal.Decimal `json:"potential_savings,omitempty"`
	CategoryID       string           `json:"category_id,omitempty"`
}

// SavingsGoal is a user's monthly savings target. Only an active goal
// participates in advice and chat responses.
type SavingsGoal struct {
	Name          string          `json:"name" yaml:"name"`
	MonthlyTarget decimal.Decimal `json:"monthly_target" yaml:"monthly_target"`
	Active        bool            `json:"active" yaml:"active"`
}

// BudgetPlan is a 50/30/20 allocation derived from one month's total spend.
type BudgetPlan struct {
	Needs         decimal.Decimal `json:"needs"`
	Wants         decimal.Decimal `json:"wants"`
	Savings       decimal.Decimal `json:"savings"`
	EmergencyFund decimal.Decimal `json:"emergency_fund"`
}
