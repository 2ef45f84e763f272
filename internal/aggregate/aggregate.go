// Package aggregate groups expenses by category and time window. All
// functions are pure: they never mutate their inputs and read no clock — the
// caller frames every window with an explicit month key or as-of date.
package aggregate

import (
	"sort"
	"time"

	"finsight/internal/dateutils"
	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// RollingWeeks is the number of weeks the weekly trend covers.
const RollingWeeks = 4

// MonthlyTotals sums the expenses of the given ISO month (YYYY-MM) per
// category and computes each category's percentage share of the month's
// total. Results are sorted by descending total, ties broken by category id
// for a stable order. A month with no expenses yields an empty slice.
func MonthlyTotals(expenses []models.Expense, catalog []models.Category, monthKey string) []models.CategoryTotal {
	sums := sumByCategory(expenses, monthKey)
	if len(sums) == 0 {
		return []models.CategoryTotal{}
	}

	monthTotal := decimal.Zero
	for _, total := range sums {
		monthTotal = monthTotal.Add(total)
	}

	totals := make([]models.CategoryTotal, 0, len(sums))
	for id, total := range sums {
		totals = append(totals, models.CategoryTotal{
			CategoryID:   id,
			CategoryName: models.CategoryNameByID(catalog, id),
			Total:        total,
			Percentage:   percentage(total, monthTotal),
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].CategoryID < totals[j].CategoryID
	})

	return totals
}

// MonthTotal returns the overall spend of the given month.
func MonthTotal(expenses []models.Expense, monthKey string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.MonthKey() == monthKey {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// WeeklyTotals returns the overall spend of the last RollingWeeks weeks,
// most recent week first. A week starts on Monday; an expense belongs to a
// week when its absolute day distance from that week's start is under seven
// days.
func WeeklyTotals(expenses []models.Expense, asOf time.Time) []models.WeekTotal {
	weeks := make([]models.WeekTotal, 0, RollingWeeks)
	weekStart := dateutils.StartOfWeek(asOf)

	for w := 0; w < RollingWeeks; w++ {
		start := weekStart.AddDate(0, 0, -7*w)
		total := decimal.Zero
		for _, e := range expenses {
			if dateutils.DayDistance(e.Date, start) < 7 {
				total = total.Add(e.Amount)
			}
		}
		weeks = append(weeks, models.WeekTotal{WeekStart: start, Total: total})
	}

	return weeks
}

// Summarize builds the month-at-a-glance summary: overall total, transaction
// count and average, plus per-category counts and averages. Categories are
// ordered by descending total like MonthlyTotals.
func Summarize(expenses []models.Expense, catalog []models.Category, monthKey string) models.Summary {
	summary := models.Summary{
		MonthKey:   monthKey,
		Total:      decimal.Zero,
		Average:    decimal.Zero,
		Categories: []models.CategoryStat{},
	}

	counts := map[string]int{}
	for _, e := range expenses {
		if e.MonthKey() != monthKey {
			continue
		}
		summary.Total = summary.Total.Add(e.Amount)
		summary.Count++
		counts[e.CategoryID]++
	}
	if summary.Count == 0 {
		return summary
	}
	summary.Average = summary.Total.Div(decimal.NewFromInt(int64(summary.Count))).Round(2)

	for _, ct := range MonthlyTotals(expenses, catalog, monthKey) {
		count := counts[ct.CategoryID]
		stat := models.CategoryStat{
			CategoryID:   ct.CategoryID,
			CategoryName: ct.CategoryName,
			Total:        ct.Total,
			Count:        count,
			Percentage:   ct.Percentage,
		}
		if count > 0 {
			stat.Average = ct.Total.Div(decimal.NewFromInt(int64(count))).Round(2)
		}
		summary.Categories = append(summary.Categories, stat)
	}

	return summary
}

// TopCategory returns the category with the highest total for the month, or
// false when the month has no expenses.
func TopCategory(expenses []models.Expense, catalog []models.Category, monthKey string) (models.CategoryTotal, bool) {
	totals := MonthlyTotals(expenses, catalog, monthKey)
	if len(totals) == 0 {
		return models.CategoryTotal{}, false
	}
	return totals[0], true
}

func sumByCategory(expenses []models.Expense, monthKey string) map[string]decimal.Decimal {
	sums := map[string]decimal.Decimal{}
	for _, e := range expenses {
		if e.MonthKey() != monthKey {
			continue
		}
		sums[e.CategoryID] = sums[e.CategoryID].Add(e.Amount)
	}
	return sums
}

func percentage(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	p, _ := part.Div(whole).Mul(decimal.NewFromInt(100)).Float64()
	return p
}
