// Package store loads and saves the category catalog. The catalog is plain
// YAML the user can edit; the engine never reads it on its own — callers load
// it here and pass it in explicitly.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"finsight/internal/models"

	"gopkg.in/yaml.v3"
)

// CatalogFile wraps the category list inside a top-level key so the YAML file
// stays self-describing.
type CatalogFile struct {
	Categories []models.Category `yaml:"categories"`
}

// CategoryStore manages loading and saving of the category catalog.
type CategoryStore struct {
	CatalogPath string
}

// NewCategoryStore creates a store for the given catalog file path.
func NewCategoryStore(catalogPath string) *CategoryStore {
	return &CategoryStore{CatalogPath: catalogPath}
}

// LoadCategories loads the catalog from the YAML file. A missing file is not
// an error: it returns (nil, nil) so the caller can decide whether to seed
// defaults.
func (s *CategoryStore) LoadCategories() ([]models.Category, error) {
	data, err := os.ReadFile(s.CatalogPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var catalog CatalogFile
	if err := yaml.Unmarshal(data, &catalog); err == nil && len(catalog.Categories) > 0 {
		return catalog.Categories, nil
	}

	// Fallback: a bare list without the top-level key.
	var categories []models.Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	return categories, nil
}

// SaveCategories writes the catalog back to the YAML file, creating parent
// directories as needed.
func (s *CategoryStore) SaveCategories(categories []models.Category) error {
	data, err := yaml.Marshal(CatalogFile{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if dir := filepath.Dir(s.CatalogPath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	if err := os.WriteFile(s.CatalogPath, data, 0600); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}
	return nil
}
