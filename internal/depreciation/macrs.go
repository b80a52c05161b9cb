// Package depreciation computes MACRS depreciation deductions for business
// assets using the half-year convention.
package depreciation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moondogdev/overwhelmed/internal/model"
)

// MACRS half-year convention rate tables.
var macrsRates = map[model.RecoveryPeriod][]float64{
	model.RecoveryFiveYear:  {0.20, 0.32, 0.192, 0.1152, 0.1152, 0.0576},
	model.RecoverySevenYear: {0.1429, 0.2449, 0.1749, 0.1249, 0.0893, 0.0892, 0.0893, 0.0446},
}

// Accepted acquisition date layouts, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"1/2/2006",
}

// ResolveRecoveryPeriod returns the recovery period for an asset. An
// explicit RecoveryPeriod wins; otherwise it is derived from the asset
// category. Asset categories without a schedule yield no period and a zero
// deduction.
func ResolveRecoveryPeriod(asset model.DepreciableAsset) (model.RecoveryPeriod, bool) {
	if asset.RecoveryPeriod != "" {
		_, ok := macrsRates[asset.RecoveryPeriod]
		return asset.RecoveryPeriod, ok
	}

	switch asset.AssetCategory {
	case model.AssetCategoryComputer:
		return model.RecoveryFiveYear, true
	case model.AssetCategoryEquipment:
		return model.RecoverySevenYear, true
	}
	return "", false
}

// BusinessBasis returns cost scaled by the business-use percentage, the
// depreciable base for the asset.
func BusinessBasis(asset model.DepreciableAsset) decimal.Decimal {
	return decimal.NewFromFloat(asset.Cost).
		Mul(decimal.NewFromFloat(asset.BusinessUsePercentage)).
		Div(decimal.NewFromInt(100))
}

// AcquiredYear parses the asset's acquisition date and returns its calendar
// year. The second return is false when the date is unparseable.
func AcquiredYear(asset model.DepreciableAsset) (int, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, asset.DateAcquired); err == nil {
			return t.Year(), true
		}
	}
	return 0, false
}

// Deduction computes the MACRS deduction for an asset in the given tax
// year. Fully depreciated assets, assets without a schedule, zero or
// negative business basis, unparseable dates, and years outside the
// recovery table all yield zero.
func Deduction(asset model.DepreciableAsset, year int) decimal.Decimal {
	if asset.IsFullyDepreciated {
		return decimal.Zero
	}

	period, ok := ResolveRecoveryPeriod(asset)
	if !ok {
		return decimal.Zero
	}
	rates := macrsRates[period]

	basis := BusinessBasis(asset)
	if !basis.IsPositive() {
		return decimal.Zero
	}

	acquired, ok := AcquiredYear(asset)
	if !ok {
		return decimal.Zero
	}

	index := year - acquired
	if index < 0 || index >= len(rates) {
		return decimal.Zero
	}

	return basis.Mul(decimal.NewFromFloat(rates[index]))
}

// Recompute returns a copy of the asset with CurrentYearDepreciation
// refreshed for the given tax year. The cached value is derived state, not
// authoritative: it is recomputable from the other fields at any time.
// When the acquisition date is unparseable the previous cached value is
// left untouched, except that the fully-depreciated flag always forces
// zero.
func Recompute(asset model.DepreciableAsset, year int) model.DepreciableAsset {
	if asset.IsFullyDepreciated {
		asset.CurrentYearDepreciation = 0
		return asset
	}

	if _, ok := AcquiredYear(asset); !ok {
		return asset
	}

	asset.CurrentYearDepreciation = Deduction(asset, year).InexactFloat64()
	return asset
}

// RecomputeAll refreshes the cached deduction on every asset for the given
// tax year, returning a new slice.
func RecomputeAll(assets []model.DepreciableAsset, year int) []model.DepreciableAsset {
	result := make([]model.DepreciableAsset, len(assets))
	for i, asset := range assets {
		result[i] = Recompute(asset, year)
	}
	return result
}
