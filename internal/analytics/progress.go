package analytics

import (
	"sort"

	"github.com/lshigami/Wallabies/internal/model"
)

// SortByDateDesc returns the results ordered most-recent first. Results
// without an attempt date keep their insertion order (stable sort, no
// comparison against dated entries). The input is not mutated.
func SortByDateDesc(results []model.TestResult) []model.TestResult {
	sorted := make([]model.TestResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].AttemptDate == nil || sorted[j].AttemptDate == nil {
			return false
		}
		return sorted[i].AttemptDate.After(*sorted[j].AttemptDate)
	})
	return sorted
}

// GroupBySubject sorts results most-recent first and groups them by
// subject. The returned subject list preserves first-seen order of the
// sorted results, so callers iterate deterministically.
func GroupBySubject(results []model.TestResult) ([]string, map[string][]model.TestResult) {
	sorted := SortByDateDesc(results)

	var subjects []string
	groups := make(map[string][]model.TestResult)
	for _, t := range sorted {
		if _, ok := groups[t.Subject]; !ok {
			subjects = append(subjects, t.Subject)
		}
		groups[t.Subject] = append(groups[t.Subject], t)
	}
	return subjects, groups
}

// SubjectImprovement computes the signed percentage-point change between
// the oldest and newest attempt of a group already sorted most-recent
// first. Fewer than two attempts yields 0 — a deliberate zero default the
// dashboards rely on, not a missing-value sentinel.
func SubjectImprovement(tests []model.TestResult) float64 {
	if len(tests) < 2 {
		return 0
	}
	newest := tests[0].Percentage()
	oldest := tests[len(tests)-1].Percentage()
	return newest - oldest
}

// SubjectImprovements maps every subject in the results to its improvement.
func SubjectImprovements(results []model.TestResult) map[string]float64 {
	subjects, groups := GroupBySubject(results)
	out := make(map[string]float64, len(subjects))
	for _, s := range subjects {
		out[s] = SubjectImprovement(groups[s])
	}
	return out
}
