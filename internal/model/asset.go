package model

// RecoveryPeriod selects the MACRS schedule applied to an asset.
type RecoveryPeriod string

// Recovery period constants.
const (
	RecoveryFiveYear  RecoveryPeriod = "5-year"
	RecoverySevenYear RecoveryPeriod = "7-year"
)

// Asset category constants that imply a default recovery period.
const (
	AssetCategoryComputer  = "computer_etc"
	AssetCategoryEquipment = "equipment"
)

// DepreciableAsset is a business asset tracked for MACRS depreciation.
// CurrentYearDepreciation is a derived cache, recomputed whenever the
// cost, business-use percentage, recovery period, acquisition date, or
// viewed tax year changes; it must always be treated as derivable from the
// other fields, never as an independent source of truth.
type DepreciableAsset struct {
	ID                              string         `json:"id"`
	Description                     string         `json:"description"`
	DateAcquired                    string         `json:"dateAcquired"`
	AssetCategory                   string         `json:"assetCategory"`
	RecoveryPeriod                  RecoveryPeriod `json:"recoveryPeriod,omitempty"`
	Cost                            float64        `json:"cost"`
	BusinessUsePercentage           float64        `json:"businessUsePercentage"`
	PriorYear179Expense             float64        `json:"priorYear179Expense"`
	PriorYearDepreciation           float64        `json:"priorYearDepreciation"`
	PriorYearAmtDepreciation        float64        `json:"priorYearAmtDepreciation"`
	PriorYearBonusDepreciationTaken float64        `json:"priorYearBonusDepreciationTaken"`
	IsFullyDepreciated              bool           `json:"isFullyDepreciated,omitempty"`
	CurrentYearDepreciation         float64        `json:"currentYearDepreciation"`
}

// W2Data holds per-year W-2 wage and withholding figures.
type W2Data struct {
	EmployerName              string  `json:"employerName,omitempty"`
	EmployerEIN               string  `json:"employerEin,omitempty"`
	EmployeeName              string  `json:"employeeName,omitempty"`
	Wages                     float64 `json:"wages"`
	FederalWithholding        float64 `json:"federalWithholding"`
	SocialSecurityWithholding float64 `json:"socialSecurityWithholding"`
	MedicareWithholding       float64 `json:"medicareWithholding"`
}

// TotalWithholding sums the three withholding amounts.
func (w W2Data) TotalWithholding() float64 {
	return w.FederalWithholding + w.SocialSecurityWithholding + w.MedicareWithholding
}
