package ingest

import (
	"testing"
	"time"

	"finsight/internal/logging"
	"finsight/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAsOf = time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)

func TestParseBasicExport(t *testing.T) {
	raw := "Date,Description,Amount\n" +
		"2024-01-15,Swiggy Order,450\n" +
		"2024-01-16,Uber ride,220.50\n"

	ing := New(',', nil)
	transactions, err := ing.Parse(raw, testAsOf)

	require.NoError(t, err)
	require.Len(t, transactions, 2)

	assert.Equal(t, "2024-01-15", transactions[0].DateISO())
	assert.Equal(t, "Swiggy Order", transactions[0].Description)
	assert.True(t, transactions[0].Amount.Equal(decimal.NewFromInt(450)))

	assert.Equal(t, "2024-01-16", transactions[1].DateISO())
	assert.True(t, transactions[1].Amount.Equal(decimal.NewFromFloat(220.50)))
}

func TestParseHeaderVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Canonical names", "Date,Description,Amount\n2024-01-15,Swiggy Order,450\n"},
		{"Bank style names", "Txn Date,Narration,Withdrawal Amt\n2024-01-15,Swiggy Order,450\n"},
		{"Details and debit", "Value Date,Details,Debit\n2024-01-15,Swiggy Order,450\n"},
		{"Mixed case", "DATE,DESCRIPTION,AMOUNT\n2024-01-15,Swiggy Order,450\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ing := New(',', nil)
			transactions, err := ing.Parse(tc.raw, testAsOf)

			require.NoError(t, err)
			require.Len(t, transactions, 1)
			assert.Equal(t, "Swiggy Order", transactions[0].Description)
		})
	}
}

func TestParseDateFormatsEquivalent(t *testing.T) {
	inputs := []string{
		"Date,Description,Amount\n2024-01-15,Swiggy Order,450\n",
		"Date,Description,Amount\n15/01/2024,Swiggy Order,450\n",
		"Date,Description,Amount\n15-01-2024,Swiggy Order,450\n",
	}

	ing := New(',', nil)
	for _, raw := range inputs {
		transactions, err := ing.Parse(raw, testAsOf)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "2024-01-15", transactions[0].DateISO())
	}
}

func TestParseMissingColumn(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		expectedRole string
	}{
		{"No date column", "Description,Amount\nSwiggy Order,450\n", "date"},
		{"No description column", "Date,Amount\n2024-01-15,450\n", "description"},
		{"No amount column", "Date,Description\n2024-01-15,Swiggy Order\n", "amount"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ing := New(',', nil)
			transactions, err := ing.Parse(tc.raw, testAsOf)

			assert.Nil(t, transactions)
			var missing *parsererror.MissingColumnError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.expectedRole, missing.Role)
		})
	}
}

func TestParseSkipsBadRows(t *testing.T) {
	raw := "Date,Description,Amount\n" +
		"2024-01-15,Swiggy Order,450\n" +
		",Missing date,100\n" +
		"2024-01-16,,100\n" +
		"2024-01-17,Blank amount,\n" +
		"2024-01-18,Refund,-250\n" +
		"2024-01-19,Zero amount,0\n" +
		"2024-01-19,Garbage amount,abc\n" +
		"2024-01-20,Uber ride,220.50\n"

	ing := New(',', nil)
	transactions, err := ing.Parse(raw, testAsOf)

	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "Swiggy Order", transactions[0].Description)
	assert.Equal(t, "Uber ride", transactions[1].Description)
}

func TestParseUnparseableDateFallsBackToAsOf(t *testing.T) {
	raw := "Date,Description,Amount\n" +
		"someday,Swiggy Order,450\n"

	logger := &logging.MockLogger{}
	ing := New(',', logger)
	transactions, err := ing.Parse(raw, testAsOf)

	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "2024-01-20", transactions[0].DateISO())
	assert.NotEmpty(t, logger.GetEntriesByLevel("WARN"))
}

func TestParseEmptyInput(t *testing.T) {
	ing := New(',', nil)

	transactions, err := ing.Parse("", testAsOf)
	require.NoError(t, err)
	assert.Empty(t, transactions)

	transactions, err = ing.Parse("Date,Description,Amount\n", testAsOf)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestParseCurrencyDecoratedAmounts(t *testing.T) {
	raw := "Date,Description,Amount\n" +
		"2024-01-15,Swiggy Order,₹450.00\n" +
		"2024-01-16,Amazon,\"INR 1,234.56\"\n"

	ing := New(',', nil)
	transactions, err := ing.Parse(raw, testAsOf)

	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.True(t, transactions[0].Amount.Equal(decimal.NewFromInt(450)))
	assert.True(t, transactions[1].Amount.Equal(decimal.RequireFromString("1234.56")))
}

func TestParseSemicolonDelimiter(t *testing.T) {
	raw := "Date;Description;Amount\n" +
		"2024-01-15;Swiggy Order;450\n"

	ing := New(';', nil)
	transactions, err := ing.Parse(raw, testAsOf)

	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Swiggy Order", transactions[0].Description)
}
