// Package anomaly flags categories whose current-week spending spiked to more
// than double the previous week.
package anomaly

import (
	"fmt"
	"time"

	"finsight/internal/currencyutils"
	"finsight/internal/dateutils"
	"finsight/internal/logging"
	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// Detector compares per-category weekly totals around a reference date.
type Detector struct {
	logger logging.Logger
}

// New creates a Detector.
func New(logger logging.Logger) *Detector {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Detector{logger: logger}
}

// DetectSpikes returns one alert message per category whose spending in the
// week containing asOf is strictly more than twice the previous week's.
// Weeks are numbered with the calendar-row scheme, so only expenses from the
// asOf year are considered. Categories with no spending last week never
// alert, and the fallback bucket is skipped. Alerts follow catalog order.
func (d *Detector) DetectSpikes(expenses []models.Expense, catalog []models.Category, asOf time.Time) []string {
	thisWeek := dateutils.LegacyWeekNumber(asOf)
	lastWeek := thisWeek - 1

	thisTotals := make(map[string]decimal.Decimal)
	lastTotals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if e.Date.Year() != asOf.Year() {
			continue
		}
		switch dateutils.LegacyWeekNumber(e.Date) {
		case thisWeek:
			thisTotals[e.CategoryID] = thisTotals[e.CategoryID].Add(e.Amount)
		case lastWeek:
			lastTotals[e.CategoryID] = lastTotals[e.CategoryID].Add(e.Amount)
		}
	}

	alerts := []string{}
	for _, cat := range catalog {
		if cat.IsFallback() {
			continue
		}
		last := lastTotals[cat.ID]
		this := thisTotals[cat.ID]
		if !last.IsPositive() {
			continue
		}
		if this.GreaterThan(last.Mul(decimal.NewFromInt(2))) {
			d.logger.WithFields(
				logging.Field{Key: "category", Value: cat.Name},
				logging.Field{Key: "this_week", Value: this.String()},
				logging.Field{Key: "last_week", Value: last.String()},
			).Info("Spending spike detected")
			alerts = append(alerts, fmt.Sprintf(
				"Heads up: your %s spending this week (%s) is more than double last week's (%s).",
				cat.Name,
				currencyutils.FormatAmount(this, ""),
				currencyutils.FormatAmount(last, ""),
			))
		}
	}
	return alerts
}
