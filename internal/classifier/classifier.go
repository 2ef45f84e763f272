// Package classifier assigns spending categories to transactions by ordered
// keyword matching against the category catalog.
package classifier

import (
	"strings"
	"time"

	"finsight/internal/logging"
	"finsight/internal/models"
	"finsight/internal/parsererror"
	"finsight/internal/textutils"
)

// Classifier matches transaction descriptions against an ordered category
// catalog. It holds no mutable state, so a single instance is safe for
// concurrent use.
type Classifier struct {
	catalog      []models.Category
	fallbackName string
	logger       logging.Logger
}

// New creates a Classifier over the given catalog. An empty fallbackName
// means the standard "Others" bucket.
func New(catalog []models.Category, fallbackName string, logger logging.Logger) *Classifier {
	if fallbackName == "" {
		fallbackName = models.FallbackCategoryName
	}
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Classifier{
		catalog:      catalog,
		fallbackName: fallbackName,
		logger:       logger,
	}
}

// Classify returns the id of the category whose keywords match the
// description. Categories are tried in catalog order, each category's
// keywords in list order, and the first keyword found as a case-insensitive
// substring wins. The fallback category is never matched directly; its id is
// returned when nothing hits, or the last category's id if the catalog has no
// fallback. An empty catalog is a caller bug and yields EmptyCatalogError.
func (c *Classifier) Classify(description string) (string, error) {
	if len(c.catalog) == 0 {
		return "", &parsererror.EmptyCatalogError{}
	}

	lowered := strings.ToLower(description)
	normalized := textutils.NormalizeDescription(description)

	for _, category := range c.catalog {
		if category.Name == c.fallbackName {
			continue
		}
		for _, keyword := range category.Keywords {
			kw := strings.ToLower(keyword)
			if kw == "" {
				continue
			}
			if strings.Contains(lowered, kw) || strings.Contains(normalized, kw) {
				c.logger.WithFields(
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: "category", Value: category.Name},
				).Debug("Transaction categorized using keyword matching")
				return category.ID, nil
			}
		}
	}

	return c.fallbackID(), nil
}

// fallbackID resolves the id to assign when no keyword matches.
func (c *Classifier) fallbackID() string {
	if fallback, ok := models.FindCategoryByName(c.catalog, c.fallbackName); ok {
		return fallback.ID
	}
	return c.catalog[len(c.catalog)-1].ID
}

// ClassifyAll annotates a batch of transactions into expenses owned by the
// given user, tagged with the given source. The createdAt timestamp is
// caller-supplied so the engine stays clock-free.
func (c *Classifier) ClassifyAll(transactions []models.Transaction, userID string, source models.Source, createdAt time.Time) ([]models.Expense, error) {
	if len(c.catalog) == 0 {
		return nil, &parsererror.EmptyCatalogError{}
	}

	expenses := make([]models.Expense, 0, len(transactions))
	for _, tx := range transactions {
		categoryID, err := c.Classify(tx.Description)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, models.Expense{
			Transaction: tx,
			CategoryID:  categoryID,
			UserID:      userID,
			Source:      source,
			CreatedAt:   createdAt,
		})
	}
	return expenses, nil
}
