// Package classify implements keyword-based auto-categorization of task
// records. Matching is case-insensitive substring matching; when multiple
// candidates match, the first matching candidate in slice order wins.
// Callers must preserve settings array order for reproducible results.
package classify

import (
	"strings"

	"github.com/moondogdev/overwhelmed/internal/model"
)

// Candidate is a keyword-bearing classification target.
type Candidate struct {
	ID       string
	Keywords []string
}

// ByKeyword returns the ID of the first candidate with a keyword that is a
// substring of text. Keywords are trimmed and compared case-insensitively;
// empty keywords never match. The second return is false when no candidate
// matches.
func ByKeyword(text string, candidates []Candidate) (string, bool) {
	lowered := strings.ToLower(text)

	for _, c := range candidates {
		for _, kw := range c.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if strings.Contains(lowered, kw) {
				return c.ID, true
			}
		}
	}

	return "", false
}

// TaxCategoryCandidates adapts tax categories for keyword matching,
// preserving their stored order.
func TaxCategoryCandidates(taxCategories []model.TaxCategory) []Candidate {
	candidates := make([]Candidate, 0, len(taxCategories))
	for _, tc := range taxCategories {
		candidates = append(candidates, Candidate{ID: tc.ID, Keywords: tc.Keywords})
	}
	return candidates
}

// CategoryCandidates adapts organizational categories for keyword matching.
// Categories without auto-categorization keywords are skipped.
func CategoryCandidates(categories []model.Category) []Candidate {
	candidates := make([]Candidate, 0, len(categories))
	for _, c := range categories {
		if len(c.AutoCategorizationKeywords) == 0 {
			continue
		}
		candidates = append(candidates, Candidate{ID: c.ID, Keywords: c.AutoCategorizationKeywords})
	}
	return candidates
}

// AutoTaxCategorize assigns tax categories to the selected tasks by keyword
// match. Tasks already bearing a tax category are skipped, never
// overwritten, so repeated runs are no-ops. A nil ids selection means all
// tasks. Returns a new task slice and the number of tasks updated; the
// input slice is never mutated.
func AutoTaxCategorize(tasks []model.Task, ids []string, taxCategories []model.TaxCategory) ([]model.Task, int) {
	candidates := TaxCategoryCandidates(taxCategories)
	selected := idSet(ids)

	updated := 0
	result := make([]model.Task, len(tasks))
	copy(result, tasks)

	for i := range result {
		if selected != nil && !selected[result[i].ID] {
			continue
		}
		if result[i].TaxCategoryID != "" {
			continue
		}
		if id, ok := ByKeyword(result[i].Text, candidates); ok {
			result[i].TaxCategoryID = id
			updated++
		}
	}

	return result, updated
}

// AutoCategorize assigns organizational categories to the selected tasks by
// keyword match, with the same skip-if-tagged policy as AutoTaxCategorize.
func AutoCategorize(tasks []model.Task, ids []string, categories []model.Category) ([]model.Task, int) {
	candidates := CategoryCandidates(categories)
	selected := idSet(ids)

	updated := 0
	result := make([]model.Task, len(tasks))
	copy(result, tasks)

	for i := range result {
		if selected != nil && !selected[result[i].ID] {
			continue
		}
		if result[i].CategoryID != "" {
			continue
		}
		if id, ok := ByKeyword(result[i].Text, candidates); ok {
			result[i].CategoryID = id
			updated++
		}
	}

	return result, updated
}

// AutoTagIncomeTypes tags income transactions with an income type by
// keyword match. Only tasks with a positive TransactionAmount and no
// income type are eligible. When only is empty, the three keyword sets are
// evaluated in a fixed order (w2, business, reimbursement) and the first
// match per task applies; otherwise only the named set is evaluated.
// Returns a new task slice and the number of tasks updated.
func AutoTagIncomeTypes(tasks []model.Task, ids []string, only model.IncomeType, keywords model.IncomeTypeKeywords) ([]model.Task, int) {
	sets := incomeKeywordSets(only, keywords)
	selected := idSet(ids)

	updated := 0
	result := make([]model.Task, len(tasks))
	copy(result, tasks)

	for i := range result {
		if selected != nil && !selected[result[i].ID] {
			continue
		}
		if result[i].TransactionAmount <= 0 || result[i].IncomeType != "" {
			continue
		}
		for _, set := range sets {
			if _, ok := ByKeyword(result[i].Text, []Candidate{{ID: string(set.incomeType), Keywords: set.keywords}}); ok {
				result[i].IncomeType = set.incomeType
				updated++
				break
			}
		}
	}

	return result, updated
}

type incomeKeywordSet struct {
	incomeType model.IncomeType
	keywords   []string
}

func incomeKeywordSets(only model.IncomeType, keywords model.IncomeTypeKeywords) []incomeKeywordSet {
	all := []incomeKeywordSet{
		{model.IncomeW2, keywords.W2},
		{model.IncomeBusiness, keywords.Business},
		{model.IncomeReimbursement, keywords.Reimbursement},
	}

	if only == "" {
		return all
	}
	for _, set := range all {
		if set.incomeType == only {
			return []incomeKeywordSet{set}
		}
	}
	return nil
}

func idSet(ids []string) map[string]bool {
	if ids == nil {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
