// Package report writes classified expenses and monthly summaries to CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"finsight/internal/logging"
	"finsight/internal/models"

	"github.com/gocarina/gocsv"
)

// ExpenseRow is the CSV shape of one classified expense.
type ExpenseRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
	Source      string `csv:"Source"`
}

// SummaryRow is the CSV shape of one category line in a monthly summary.
type SummaryRow struct {
	Month      string `csv:"Month"`
	Category   string `csv:"Category"`
	Total      string `csv:"Total"`
	Count      string `csv:"Count"`
	Percentage string `csv:"Percentage"`
}

// Writer exports engine output as CSV files.
type Writer struct {
	delimiter rune
	logger    logging.Logger
}

// NewWriter creates a Writer using the given output delimiter. A zero
// delimiter falls back to a comma.
func NewWriter(delimiter rune, logger logging.Logger) *Writer {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Writer{delimiter: delimiter, logger: logger}
}

// WriteExpenses writes classified expenses to csvFile, creating parent
// directories as needed.
func (w *Writer) WriteExpenses(expenses []models.Expense, catalog []models.Category, csvFile string) error {
	rows := make([]ExpenseRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, ExpenseRow{
			Date:        e.DateISO(),
			Description: e.Description,
			Amount:      e.Amount.StringFixed(2),
			Category:    models.CategoryNameByID(catalog, e.CategoryID),
			Source:      string(e.Source),
		})
	}

	w.logger.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(rows)},
	).Info("Writing expenses to CSV file")
	return w.writeRows(rows, csvFile)
}

// WriteSummary writes a monthly summary to csvFile, one row per category.
func (w *Writer) WriteSummary(summary models.Summary, csvFile string) error {
	rows := make([]SummaryRow, 0, len(summary.Categories))
	for _, cs := range summary.Categories {
		rows = append(rows, SummaryRow{
			Month:      summary.MonthKey,
			Category:   cs.CategoryName,
			Total:      cs.Total.StringFixed(2),
			Count:      fmt.Sprintf("%d", cs.Count),
			Percentage: fmt.Sprintf("%.1f", cs.Percentage),
		})
	}

	w.logger.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "month", Value: summary.MonthKey},
	).Info("Writing summary to CSV file")
	return w.writeRows(rows, csvFile)
}

func (w *Writer) writeRows(rows interface{}, csvFile string) error {
	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		w.logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		w.logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			w.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = w.delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		w.logger.WithError(err).Error("Failed to marshal rows to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
