package anomaly

import (
	"testing"
	"time"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-04-15 falls in week 16 of 2024; April 6-12 is week 15.
var testAsOf = time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)

func testCatalog() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Food"},
		{ID: "2", Name: "Travel"},
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

func TestDetectSpikes(t *testing.T) {
	expenses := []models.Expense{
		expense("2024-04-10", "1", 100), // last week
		expense("2024-04-14", "1", 250), // this week, more than double
	}

	d := New(nil)
	alerts := d.DetectSpikes(expenses, testCatalog(), testAsOf)

	require.Len(t, alerts, 1)
	assert.Contains(t, alerts[0], "Food")
	assert.Contains(t, alerts[0], "250.00")
	assert.Contains(t, alerts[0], "100.00")
}

func TestDetectSpikesDoubleBoundary(t *testing.T) {
	tests := []struct {
		name        string
		thisWeek    float64
		expectAlert bool
	}{
		{"Exactly double does not alert", 200, false},
		{"Just above double alerts", 200.01, true},
		{"Below double does not alert", 150, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expenses := []models.Expense{
				expense("2024-04-10", "1", 100),
				expense("2024-04-14", "1", tc.thisWeek),
			}

			d := New(nil)
			alerts := d.DetectSpikes(expenses, testCatalog(), testAsOf)

			if tc.expectAlert {
				assert.Len(t, alerts, 1)
			} else {
				assert.Empty(t, alerts)
			}
		})
	}
}

func TestDetectSpikesZeroLastWeekNeverAlerts(t *testing.T) {
	expenses := []models.Expense{
		expense("2024-04-14", "1", 5000),
	}

	d := New(nil)
	alerts := d.DetectSpikes(expenses, testCatalog(), testAsOf)
	assert.Empty(t, alerts)
}

func TestDetectSpikesSkipsFallbackBucket(t *testing.T) {
	expenses := []models.Expense{
		expense("2024-04-10", "6", 100),
		expense("2024-04-14", "6", 1000),
	}

	d := New(nil)
	alerts := d.DetectSpikes(expenses, testCatalog(), testAsOf)
	assert.Empty(t, alerts)
}

func TestDetectSpikesIgnoresOtherYears(t *testing.T) {
	expenses := []models.Expense{
		expense("2023-04-10", "1", 100),
		expense("2024-04-14", "1", 5000),
	}

	d := New(nil)
	alerts := d.DetectSpikes(expenses, testCatalog(), testAsOf)
	assert.Empty(t, alerts)
}

func TestDetectSpikesCatalogOrder(t *testing.T) {
	expenses := []models.Expense{
		expense("2024-04-10", "2", 50),
		expense("2024-04-14", "2", 500),
		expense("2024-04-10", "1", 100),
		expense("2024-04-14", "1", 300),
	}

	d := New(nil)
	alerts := d.DetectSpikes(expenses, testCatalog(), testAsOf)

	require.Len(t, alerts, 2)
	assert.Contains(t, alerts[0], "Food")
	assert.Contains(t, alerts[1], "Travel")
}
