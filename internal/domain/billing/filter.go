package billing

import "strings"

// Wildcard is the categorical filter value that matches everything
const Wildcard = "all"

// Field reads one string attribute of an item
type Field[T any] func(T) string

// Category pairs an attribute with the value it must equal
type Category[T any] struct {
	Field Field[T]
	Value string
}

// FilterSpec combines a text search with categorical equality filters.
// Search matches a case-insensitive substring of any SearchFields; every
// Category must also match. An empty search and Wildcard or empty category
// values match everything.
type FilterSpec[T any] struct {
	Search       string
	SearchFields []Field[T]
	Categories   []Category[T]
}

func (s FilterSpec[T]) active() ([]Category[T], string) {
	var cats []Category[T]
	for _, c := range s.Categories {
		if !isWildcard(c.Value) {
			cats = append(cats, c)
		}
	}
	return cats, strings.ToLower(strings.TrimSpace(s.Search))
}

// Filter returns the items matching f in their input order. When
// nothing in f constrains the result, items is returned unchanged.
func Filter[T any](items []T, f FilterSpec[T]) []T {
	cats, search := f.active()
	if len(cats) == 0 && (search == "" || len(f.SearchFields) == 0) {
		return items
	}

	result := make([]T, 0, len(items))
	for _, item := range items {
		if matchesSearch(item, search, f.SearchFields) && matchesCategories(item, cats) {
			result = append(result, item)
		}
	}
	return result
}

func matchesSearch[T any](item T, search string, fields []Field[T]) bool {
	if search == "" || len(fields) == 0 {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(item)), search) {
			return true
		}
	}
	return false
}

func matchesCategories[T any](item T, cats []Category[T]) bool {
	for _, c := range cats {
		if !strings.EqualFold(c.Field(item), strings.TrimSpace(c.Value)) {
			return false
		}
	}
	return true
}

func isWildcard(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || strings.EqualFold(v, Wildcard)
}
