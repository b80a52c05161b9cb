// Package settings provides pure reducers over the immutable Settings
// snapshot and the documented fallback resolution for dangling references.
//
// Every mutation takes the previous snapshot and returns a new one; nothing
// is modified in place, so the host's change detection fires correctly.
package settings

import "github.com/moondogdev/overwhelmed/internal/model"

// Fallback labels for unresolvable references. The policy is uniform: an
// empty id means "no assignment" and resolves to Uncategorized; a non-empty
// id with no matching entity is dangling and resolves to UnknownCategory.
const (
	Uncategorized   = "Uncategorized"
	UnknownCategory = "Unknown Category"
)

// CategoryByID looks up an organizational category.
func CategoryByID(s model.Settings, id string) (model.Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// TaxCategoryByID looks up a tax category.
func TaxCategoryByID(s model.Settings, id string) (model.TaxCategory, bool) {
	for _, tc := range s.TaxCategories {
		if tc.ID == id {
			return tc, true
		}
	}
	return model.TaxCategory{}, false
}

// AccountByID looks up an account.
func AccountByID(s model.Settings, id string) (model.Account, bool) {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return model.Account{}, false
}

// CategoryName resolves a category reference to a display name, degrading
// to the fallback labels rather than failing.
func CategoryName(s model.Settings, id string) string {
	if id == "" {
		return Uncategorized
	}
	if c, ok := CategoryByID(s, id); ok {
		return c.Name
	}
	return UnknownCategory
}

// TaxCategoryName resolves a tax-category reference to a display name.
func TaxCategoryName(s model.Settings, id string) string {
	if id == "" {
		return Uncategorized
	}
	if tc, ok := TaxCategoryByID(s, id); ok {
		return tc.Name
	}
	return UnknownCategory
}
