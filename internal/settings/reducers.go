package settings

import (
	"strconv"

	"github.com/moondogdev/overwhelmed/internal/model"
)

// clone copies the settings snapshot with fresh slices and map so a
// reducer can modify its return value without touching the input.
func clone(s model.Settings) model.Settings {
	out := s
	out.Categories = append([]model.Category(nil), s.Categories...)
	out.TaxCategories = append([]model.TaxCategory(nil), s.TaxCategories...)
	out.Accounts = append([]model.Account(nil), s.Accounts...)
	out.DepreciableAssets = append([]model.DepreciableAsset(nil), s.DepreciableAssets...)
	out.W2ByYear = make(map[string]model.W2Data, len(s.W2ByYear))
	for k, v := range s.W2ByYear {
		out.W2ByYear[k] = v
	}
	return out
}

// AddCategory appends a new category. A non-empty parentID creates a
// sub-category; the hierarchy never exceeds two levels, so parentID must
// name a top-level category.
func AddCategory(s model.Settings, name, parentID string) (model.Settings, model.Category) {
	category := model.Category{ID: model.NewID(), Name: name, ParentID: parentID}
	out := clone(s)
	out.Categories = append(out.Categories, category)
	return out, category
}

// RenameCategory updates a category's display name.
func RenameCategory(s model.Settings, id, name string) model.Settings {
	out := clone(s)
	for i := range out.Categories {
		if out.Categories[i].ID == id {
			out.Categories[i].Name = name
		}
	}
	return out
}

// DeleteCategory removes a category. Deleting a parent cascades to all of
// its sub-categories. Returns the new settings and the full set of removed
// category IDs so callers can fix up task references.
func DeleteCategory(s model.Settings, id string) (model.Settings, []string) {
	removed := []string{id}
	for _, c := range s.Categories {
		if c.ParentID == id {
			removed = append(removed, c.ID)
		}
	}

	removedSet := make(map[string]bool, len(removed))
	for _, rid := range removed {
		removedSet[rid] = true
	}

	out := clone(s)
	kept := out.Categories[:0]
	for _, c := range out.Categories {
		if !removedSet[c.ID] {
			kept = append(kept, c)
		}
	}
	out.Categories = kept
	return out, removed
}

// UncategorizeTasks clears the category on tasks referencing any removed
// category id, returning a new task slice.
func UncategorizeTasks(tasks []model.Task, removedIDs []string) []model.Task {
	return retargetTasks(tasks, removedIDs, "")
}

// ReparentTasks moves tasks referencing any removed category id onto a
// replacement category instead of un-categorizing them. The transaction
// auto-categorization settings use this policy, re-parenting onto the
// top-level Transactions category.
func ReparentTasks(tasks []model.Task, removedIDs []string, newCategoryID string) []model.Task {
	return retargetTasks(tasks, removedIDs, newCategoryID)
}

func retargetTasks(tasks []model.Task, removedIDs []string, newCategoryID string) []model.Task {
	removedSet := make(map[string]bool, len(removedIDs))
	for _, id := range removedIDs {
		removedSet[id] = true
	}

	result := make([]model.Task, len(tasks))
	copy(result, tasks)
	for i := range result {
		if removedSet[result[i].CategoryID] {
			result[i].CategoryID = newCategoryID
		}
	}
	return result
}

// AddTaxCategory appends a new tax category.
func AddTaxCategory(s model.Settings, name string, keywords []string) (model.Settings, model.TaxCategory) {
	taxCategory := model.TaxCategory{ID: model.NewID(), Name: name, Keywords: keywords}
	out := clone(s)
	out.TaxCategories = append(out.TaxCategories, taxCategory)
	return out, taxCategory
}

// UpdateTaxCategory replaces a tax category by id.
func UpdateTaxCategory(s model.Settings, taxCategory model.TaxCategory) model.Settings {
	out := clone(s)
	for i := range out.TaxCategories {
		if out.TaxCategories[i].ID == taxCategory.ID {
			out.TaxCategories[i] = taxCategory
		}
	}
	return out
}

// DeleteTaxCategory removes a tax category.
func DeleteTaxCategory(s model.Settings, id string) model.Settings {
	out := clone(s)
	kept := out.TaxCategories[:0]
	for _, tc := range out.TaxCategories {
		if tc.ID != id {
			kept = append(kept, tc)
		}
	}
	out.TaxCategories = kept
	return out
}

// AddAccount appends a new account.
func AddAccount(s model.Settings, name string) (model.Settings, model.Account) {
	account := model.Account{ID: model.NewID(), Name: name}
	out := clone(s)
	out.Accounts = append(out.Accounts, account)
	return out, account
}

// DeleteAccount removes an account. Task references to the deleted account
// are left dangling; aggregation ignores them.
func DeleteAccount(s model.Settings, id string) model.Settings {
	out := clone(s)
	kept := out.Accounts[:0]
	for _, a := range out.Accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	out.Accounts = kept
	return out
}

// AddAsset appends a new depreciable asset with default field values.
func AddAsset(s model.Settings) (model.Settings, model.DepreciableAsset) {
	asset := model.DepreciableAsset{
		ID:                    model.NewID(),
		Description:           "New Asset",
		AssetCategory:         model.AssetCategoryComputer,
		BusinessUsePercentage: 100,
	}
	out := clone(s)
	out.DepreciableAssets = append(out.DepreciableAssets, asset)
	return out, asset
}

// UpdateAsset replaces an asset by id.
func UpdateAsset(s model.Settings, asset model.DepreciableAsset) model.Settings {
	out := clone(s)
	for i := range out.DepreciableAssets {
		if out.DepreciableAssets[i].ID == asset.ID {
			out.DepreciableAssets[i] = asset
		}
	}
	return out
}

// DeleteAsset removes a depreciable asset.
func DeleteAsset(s model.Settings, id string) model.Settings {
	out := clone(s)
	kept := out.DepreciableAssets[:0]
	for _, a := range out.DepreciableAssets {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	out.DepreciableAssets = kept
	return out
}

// SetW2 upserts the W-2 entry for a tax year.
func SetW2(s model.Settings, year int, w2 model.W2Data) model.Settings {
	out := clone(s)
	out.W2ByYear[strconv.Itoa(year)] = w2
	return out
}
