package depreciation

import (
	"testing"

	"github.com/moondogdev/overwhelmed/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDeduction(t *testing.T) {
	base := model.DepreciableAsset{
		ID:                    "a1",
		Description:           "Workstation",
		DateAcquired:          "2022-03-15",
		Cost:                  10000,
		BusinessUsePercentage: 100,
		RecoveryPeriod:        model.RecoveryFiveYear,
	}

	tests := []struct {
		name  string
		mod   func(a model.DepreciableAsset) model.DepreciableAsset
		want  string
		year  int
	}{
		{
			name: "first recovery year",
			year: 2022,
			mod:  func(a model.DepreciableAsset) model.DepreciableAsset { return a },
			want: "2000",
		},
		{
			name: "second recovery year",
			year: 2023,
			mod:  func(a model.DepreciableAsset) model.DepreciableAsset { return a },
			want: "3200",
		},
		{
			name: "final five-year table entry",
			year: 2027,
			mod:  func(a model.DepreciableAsset) model.DepreciableAsset { return a },
			want: "576",
		},
		{
			name: "past end of recovery table",
			year: 2028,
			mod:  func(a model.DepreciableAsset) model.DepreciableAsset { return a },
			want: "0",
		},
		{
			name: "before acquisition year",
			year: 2021,
			mod:  func(a model.DepreciableAsset) model.DepreciableAsset { return a },
			want: "0",
		},
		{
			name: "partial business use",
			year: 2022,
			mod: func(a model.DepreciableAsset) model.DepreciableAsset {
				a.BusinessUsePercentage = 50
				return a
			},
			want: "1000",
		},
		{
			name: "seven-year schedule",
			year: 2022,
			mod: func(a model.DepreciableAsset) model.DepreciableAsset {
				a.RecoveryPeriod = model.RecoverySevenYear
				return a
			},
			want: "1429",
		},
		{
			name: "fully depreciated forces zero",
			year: 2022,
			mod: func(a model.DepreciableAsset) model.DepreciableAsset {
				a.IsFullyDepreciated = true
				return a
			},
			want: "0",
		},
		{
			name: "zero basis",
			year: 2022,
			mod: func(a model.DepreciableAsset) model.DepreciableAsset {
				a.Cost = 0
				return a
			},
			want: "0",
		},
		{
			name: "unparseable date",
			year: 2022,
			mod: func(a model.DepreciableAsset) model.DepreciableAsset {
				a.DateAcquired = "sometime last spring"
				return a
			},
			want: "0",
		},
		{
			name: "no schedule for unknown asset category",
			year: 2022,
			mod: func(a model.DepreciableAsset) model.DepreciableAsset {
				a.RecoveryPeriod = ""
				a.AssetCategory = "furniture_misc"
				return a
			},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deduction(tt.mod(base), tt.year)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestResolveRecoveryPeriod(t *testing.T) {
	tests := []struct {
		name   string
		asset  model.DepreciableAsset
		want   model.RecoveryPeriod
		wantOK bool
	}{
		{
			name:   "explicit period wins",
			asset:  model.DepreciableAsset{RecoveryPeriod: model.RecoverySevenYear, AssetCategory: model.AssetCategoryComputer},
			want:   model.RecoverySevenYear,
			wantOK: true,
		},
		{
			name:   "computer category defaults to five-year",
			asset:  model.DepreciableAsset{AssetCategory: model.AssetCategoryComputer},
			want:   model.RecoveryFiveYear,
			wantOK: true,
		},
		{
			name:   "equipment category defaults to seven-year",
			asset:  model.DepreciableAsset{AssetCategory: model.AssetCategoryEquipment},
			want:   model.RecoverySevenYear,
			wantOK: true,
		},
		{
			name:  "unknown category has no schedule",
			asset: model.DepreciableAsset{AssetCategory: "land"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, ok := ResolveRecoveryPeriod(tt.asset)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, period)
		})
	}
}

func TestRecompute(t *testing.T) {
	asset := model.DepreciableAsset{
		DateAcquired:            "2022-03-15",
		Cost:                    10000,
		BusinessUsePercentage:   100,
		RecoveryPeriod:          model.RecoveryFiveYear,
		CurrentYearDepreciation: 123.45,
	}

	refreshed := Recompute(asset, 2023)
	assert.InDelta(t, 3200.0, refreshed.CurrentYearDepreciation, 0.0001)
	// The input asset is untouched.
	assert.InDelta(t, 123.45, asset.CurrentYearDepreciation, 0.0001)

	// Unparseable date leaves the previous cached value in place.
	stale := asset
	stale.DateAcquired = "not a date"
	assert.InDelta(t, 123.45, Recompute(stale, 2023).CurrentYearDepreciation, 0.0001)

	// Fully depreciated forces zero regardless of other inputs.
	done := asset
	done.IsFullyDepreciated = true
	assert.Zero(t, Recompute(done, 2023).CurrentYearDepreciation)
}

func TestRecomputeAll(t *testing.T) {
	assets := []model.DepreciableAsset{
		{DateAcquired: "2022-01-01", Cost: 1000, BusinessUsePercentage: 100, RecoveryPeriod: model.RecoveryFiveYear},
		{DateAcquired: "2022-01-01", Cost: 1000, BusinessUsePercentage: 100, RecoveryPeriod: model.RecoveryFiveYear, IsFullyDepreciated: true},
	}

	result := RecomputeAll(assets, 2022)
	assert.InDelta(t, 200.0, result[0].CurrentYearDepreciation, 0.0001)
	assert.Zero(t, result[1].CurrentYearDepreciation)
	assert.Zero(t, assets[0].CurrentYearDepreciation)
}
