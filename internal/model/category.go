package model

// Category represents an organizational category. A category with ParentID
// set is a sub-category; ParentID must reference an existing top-level
// category (the hierarchy is at most two levels deep).
type Category struct {
	ID                         string   `json:"id"`
	Name                       string   `json:"name"`
	ParentID                   string   `json:"parentId,omitempty"`
	Color                      string   `json:"color,omitempty"`
	AutoCategorizationKeywords []string `json:"autoCategorizationKeywords,omitempty"`
	DeductiblePercentage       int      `json:"deductiblePercentage,omitempty"`
}

// IsSub reports whether the category is a sub-category.
func (c *Category) IsSub() bool {
	return c.ParentID != ""
}

// TaxCategory is an independent classification used solely for deduction
// reporting, distinct from the organizational Category hierarchy.
type TaxCategory struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Keywords             []string `json:"keywords"`
	DeductiblePercentage int      `json:"deductiblePercentage,omitempty"`
}

// Account identifies a financial account referenced by transactions. It is
// used purely for filtering and grouping; no balance is tracked.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
