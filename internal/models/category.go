package models

// FallbackCategoryName is the display name of the catch-all category.
// The category carrying this name has no keywords and is never matched
// directly; the classifier assigns it when nothing else hits.
const FallbackCategoryName = "Others"

// Category is a named spending bucket with the ordered keyword list used for
// classification. Keywords match as case-insensitive substrings of a
// transaction description, in list order.
type Category struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Color    string   `json:"color,omitempty" yaml:"color,omitempty"`
	Icon     string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// IsFallback reports whether this category is the catch-all bucket.
func (c Category) IsFallback() bool {
	return c.Name == FallbackCategoryName
}

// FindCategoryByID returns the category with the given id from the catalog.
func FindCategoryByID(catalog []Category, id string) (Category, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FindCategoryByName returns the category with the given display name.
func FindCategoryByName(catalog []Category, name string) (Category, bool) {
	for _, c := range catalog {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryNameByID resolves an id to a display name, falling back to the id
// itself for unknown categories so output never goes blank.
func CategoryNameByID(catalog []Category, id string) string {
	if c, ok := FindCategoryByID(catalog, id); ok {
		return c.Name
	}
	return id
}
