package model

import "strconv"

// IncomeTypeKeywords holds the keyword dictionaries for income-type
// auto-tagging. Bulk tagging evaluates the sets in a fixed order: W2,
// then Business, then Reimbursement.
type IncomeTypeKeywords struct {
	W2            []string `json:"w2"`
	Business      []string `json:"business"`
	Reimbursement []string `json:"reimbursement"`
}

// Settings aggregates all user configuration consumed by the derivation
// core. Settings values are treated as immutable snapshots: every mutation
// goes through a reducer that returns a new Settings, never an in-place
// assignment, so the host's change detection fires correctly.
type Settings struct {
	W2ByYear           map[string]W2Data  `json:"w2DataByYear,omitempty"`
	Categories         []Category         `json:"categories"`
	TaxCategories      []TaxCategory      `json:"taxCategories"`
	Accounts           []Account          `json:"accounts"`
	DepreciableAssets  []DepreciableAsset `json:"depreciableAssets"`
	IncomeTypeKeywords IncomeTypeKeywords `json:"incomeTypeKeywords"`
	BusinessMiles      float64            `json:"businessMiles"`
	VehicleParkingFees float64            `json:"vehicleParkingFees"`
	VehicleTolls       float64            `json:"vehicleTolls"`
	VehiclePropertyTax float64            `json:"vehiclePropertyTax"`
}

// DefaultSettings returns the baseline settings merged into restored
// snapshots when fields are missing.
func DefaultSettings() Settings {
	return Settings{
		Categories:        []Category{},
		TaxCategories:     []TaxCategory{},
		Accounts:          []Account{},
		DepreciableAssets: []DepreciableAsset{},
		W2ByYear:          map[string]W2Data{},
	}
}

// W2ForYear returns the W-2 entry for the given year. A missing entry is
// treated as all-zero.
func (s Settings) W2ForYear(year int) W2Data {
	if s.W2ByYear == nil {
		return W2Data{}
	}
	return s.W2ByYear[yearKey(year)]
}

func yearKey(year int) string {
	return strconv.Itoa(year)
}

