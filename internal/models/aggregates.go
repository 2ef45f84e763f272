package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the aggregated spend and percentage share for one category
// over an aggregation window. It is recomputed on demand, never persisted.
type CategoryTotal struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
	// Percentage of the window's overall spend, 0-100. For a non-empty
	// window the percentages of a full result set sum to 100.
	Percentage float64 `json:"percentage"`
}

// WeekTotal is the overall spend for one week of a rolling window.
type WeekTotal struct {
	// WeekStart is the Monday the week begins on.
	WeekStart time.Time       `json:"week_start"`
	Total     decimal.Decimal `json:"total"`
}

// CategoryStat extends a category total with transaction counts.
type CategoryStat struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
	Count        int             `json:"count"`
	Average      decimal.Decimal `json:"average"`
	Percentage   float64         `json:"percentage"`
}

// Summary describes one month of spending at a glance.
type Summary struct {
	MonthKey   string          `json:"month"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	Average    decimal.Decimal `json:"average"`
	Categories []CategoryStat  `json:"categories"`
}
