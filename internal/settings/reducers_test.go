package settings

import (
	"testing"

	"github.com/moondogdev/overwhelmed/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() model.Settings {
	return model.Settings{
		Categories: []model.Category{
			{ID: "work", Name: "Work"},
			{ID: "invoices", Name: "Invoices", ParentID: "work"},
			{ID: "receipts", Name: "Receipts", ParentID: "work"},
			{ID: "home", Name: "Home"},
		},
		TaxCategories: []model.TaxCategory{
			{ID: "supplies", Name: "Office Supplies", Keywords: []string{"staples"}},
		},
		Accounts: []model.Account{
			{ID: "chk", Name: "Checking"},
		},
		W2ByYear: map[string]model.W2Data{},
	}
}

func TestDeleteCategoryCascades(t *testing.T) {
	s := testSettings()
	tasks := []model.Task{
		{ID: "1", CategoryID: "work"},
		{ID: "2", CategoryID: "invoices"},
		{ID: "3", CategoryID: "receipts"},
		{ID: "4", CategoryID: "home"},
	}

	out, removed := DeleteCategory(s, "work")
	assert.ElementsMatch(t, []string{"work", "invoices", "receipts"}, removed)
	require.Len(t, out.Categories, 1)
	assert.Equal(t, "home", out.Categories[0].ID)

	// The input snapshot is untouched.
	assert.Len(t, s.Categories, 4)

	updated := UncategorizeTasks(tasks, removed)
	assert.Empty(t, updated[0].CategoryID)
	assert.Empty(t, updated[1].CategoryID)
	assert.Empty(t, updated[2].CategoryID)
	assert.Equal(t, "home", updated[3].CategoryID)
	assert.Equal(t, "work", tasks[0].CategoryID)
}

func TestReparentTasks(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", CategoryID: "old-sub"},
		{ID: "2", CategoryID: "other"},
	}

	updated := ReparentTasks(tasks, []string{"old-sub"}, "transactions")
	assert.Equal(t, "transactions", updated[0].CategoryID)
	assert.Equal(t, "other", updated[1].CategoryID)
}

func TestAddCategory(t *testing.T) {
	s := testSettings()
	out, category := AddCategory(s, "Taxes", "")
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "Taxes", category.Name)
	assert.Len(t, out.Categories, 5)
	assert.Len(t, s.Categories, 4)
}

func TestTaxCategoryCRUD(t *testing.T) {
	s := testSettings()

	out, tc := AddTaxCategory(s, "Travel", []string{"flight"})
	require.Len(t, out.TaxCategories, 2)

	tc.Keywords = append(tc.Keywords, "hotel")
	out = UpdateTaxCategory(out, tc)
	got, ok := TaxCategoryByID(out, tc.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"flight", "hotel"}, got.Keywords)

	out = DeleteTaxCategory(out, tc.ID)
	_, ok = TaxCategoryByID(out, tc.ID)
	assert.False(t, ok)
}

func TestAssetLifecycle(t *testing.T) {
	s := testSettings()

	out, asset := AddAsset(s)
	require.Len(t, out.DepreciableAssets, 1)
	assert.Equal(t, "New Asset", asset.Description)
	assert.Equal(t, model.AssetCategoryComputer, asset.AssetCategory)
	assert.InDelta(t, 100.0, asset.BusinessUsePercentage, 0.0001)

	asset.Cost = 2500
	asset.DateAcquired = "2024-06-01"
	out = UpdateAsset(out, asset)
	assert.InDelta(t, 2500.0, out.DepreciableAssets[0].Cost, 0.0001)

	out = DeleteAsset(out, asset.ID)
	assert.Empty(t, out.DepreciableAssets)
}

func TestSetW2(t *testing.T) {
	s := testSettings()
	out := SetW2(s, 2024, model.W2Data{Wages: 50000, FederalWithholding: 6000})

	assert.InDelta(t, 50000.0, out.W2ForYear(2024).Wages, 0.0001)
	assert.Zero(t, s.W2ForYear(2024).Wages)
	assert.Zero(t, out.W2ForYear(2023).Wages)
}

func TestResolveFallbacks(t *testing.T) {
	s := testSettings()

	assert.Equal(t, "Work", CategoryName(s, "work"))
	assert.Equal(t, Uncategorized, CategoryName(s, ""))
	assert.Equal(t, UnknownCategory, CategoryName(s, "ghost"))

	assert.Equal(t, "Office Supplies", TaxCategoryName(s, "supplies"))
	assert.Equal(t, Uncategorized, TaxCategoryName(s, ""))
	assert.Equal(t, UnknownCategory, TaxCategoryName(s, "ghost"))

	_, ok := AccountByID(s, "ghost")
	assert.False(t, ok)
}
