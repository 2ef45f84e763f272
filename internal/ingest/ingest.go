// Package ingest parses delimited bank-export text into normalized
// transaction records. The first line must be a header row; the date,
// description and amount columns are located by substring match against the
// header names, so exports from different banks parse without per-bank
// configuration.
package ingest

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"finsight/internal/currencyutils"
	"finsight/internal/dateutils"
	"finsight/internal/logging"
	"finsight/internal/models"
	"finsight/internal/parsererror"
)

// Header names accepted for each column role, matched case-insensitively as
// substrings, in this order.
var (
	dateHeaders        = []string{"date"}
	descriptionHeaders = []string{"description", "narration", "details"}
	amountHeaders      = []string{"amount", "debit", "withdrawal"}
)

// Ingestor parses delimited text into transactions.
type Ingestor struct {
	delimiter rune
	logger    logging.Logger
}

// New creates an Ingestor. A zero delimiter means comma.
func New(delimiter rune, logger logging.Logger) *Ingestor {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Ingestor{delimiter: delimiter, logger: logger}
}

// Parse reads delimited text and returns the transactions it contains, in
// input row order. The asOf date substitutes for dates no known format can
// parse. Rows with a blank date, description or amount, or with an amount
// that is not a positive number, are skipped; only a header row missing one
// of the required columns fails the whole parse, with a MissingColumnError
// and no partial result.
func (ing *Ingestor) Parse(raw string, asOf time.Time) ([]models.Transaction, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.Comma = ing.delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []models.Transaction{}, nil
	}
	if err != nil {
		return nil, &parsererror.ParseError{Field: "header", Value: firstLine(raw), Err: err}
	}

	cols, err := detectColumns(header)
	if err != nil {
		return nil, err
	}

	transactions := []models.Transaction{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			ing.logger.WithError(err).Debug("Skipping unreadable row")
			continue
		}

		tx, ok := ing.parseRow(record, cols, asOf)
		if !ok {
			continue
		}
		transactions = append(transactions, tx)
	}

	ing.logger.WithField("count", len(transactions)).Debug("Parsed transactions")
	return transactions, nil
}

// columns holds the detected index of each column role.
type columns struct {
	date        int
	description int
	amount      int
}

// detectColumns locates the date, description and amount columns. For each
// role the first header containing one of the accepted names wins, scanning
// left to right.
func detectColumns(header []string) (columns, error) {
	cols := columns{
		date:        findColumn(header, dateHeaders),
		description: findColumn(header, descriptionHeaders),
		amount:      findColumn(header, amountHeaders),
	}

	switch {
	case cols.date < 0:
		return cols, &parsererror.MissingColumnError{Role: "date", Headers: header}
	case cols.description < 0:
		return cols, &parsererror.MissingColumnError{Role: "description", Headers: header}
	case cols.amount < 0:
		return cols, &parsererror.MissingColumnError{Role: "amount", Headers: header}
	}
	return cols, nil
}

func findColumn(header []string, names []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, name := range names {
			if strings.Contains(h, name) {
				return i
			}
		}
	}
	return -1
}

func (ing *Ingestor) parseRow(record []string, cols columns, asOf time.Time) (models.Transaction, bool) {
	dateStr := fieldAt(record, cols.date)
	description := fieldAt(record, cols.description)
	amountStr := fieldAt(record, cols.amount)

	if dateStr == "" || description == "" || amountStr == "" {
		ing.logger.Debug("Skipping row with blank field")
		return models.Transaction{}, false
	}

	amount, err := currencyutils.ParseAmount(amountStr)
	if err != nil || !amount.IsPositive() {
		ing.logger.WithField("amount", amountStr).Debug("Skipping row with invalid amount")
		return models.Transaction{}, false
	}

	date, _, err := dateutils.ParseTransactionDate(dateStr)
	if err != nil {
		// An unparseable date falls back to the as-of date instead of
		// failing the row.
		ing.logger.WithField("date", dateStr).Warn("Unparseable date, falling back to as-of date")
		date = time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	}

	return models.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
	}, true
}

func fieldAt(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func firstLine(raw string) string {
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		return raw[:i]
	}
	return raw
}
