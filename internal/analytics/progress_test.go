package analytics

import (
	"testing"
	"time"

	"github.com/lshigami/Wallabies/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datedResult(subject string, score, total int, daysAgo int) model.TestResult {
	d := time.Now().AddDate(0, 0, -daysAgo)
	return model.TestResult{Subject: subject, Score: score, TotalPossible: total, AttemptDate: &d}
}

func TestSubjectImprovementSingleResultIsZero(t *testing.T) {
	tests := []model.TestResult{result("Math", 80, 100)}

	assert.Equal(t, 0.0, SubjectImprovement(tests))
}

func TestSubjectImprovementNewestMinusOldest(t *testing.T) {
	// Sorted most-recent first, as GroupBySubject produces.
	tests := []model.TestResult{
		result("Math", 80, 100),
		result("Math", 60, 100),
	}

	assert.Equal(t, 20.0, SubjectImprovement(tests))
}

func TestSubjectImprovementCanBeNegative(t *testing.T) {
	tests := []model.TestResult{
		result("Math", 55, 100),
		result("Math", 70, 100),
	}

	assert.Equal(t, -15.0, SubjectImprovement(tests))
}

func TestGroupBySubjectSortsMostRecentFirst(t *testing.T) {
	results := []model.TestResult{
		datedResult("Math", 60, 100, 30),
		datedResult("Math", 80, 100, 1),
		datedResult("Science", 70, 100, 10),
	}

	subjects, groups := GroupBySubject(results)

	require.Equal(t, []string{"Math", "Science"}, subjects)
	require.Len(t, groups["Math"], 2)
	assert.Equal(t, 80, groups["Math"][0].Score)
	assert.Equal(t, 60, groups["Math"][1].Score)
}

func TestGroupBySubjectUndatedResultsKeepInsertionOrder(t *testing.T) {
	results := []model.TestResult{
		result("Math", 60, 100),
		result("Math", 80, 100),
	}

	_, groups := GroupBySubject(results)

	assert.Equal(t, 60, groups["Math"][0].Score)
	assert.Equal(t, 80, groups["Math"][1].Score)
}

func TestSortByDateDescDoesNotMutateInput(t *testing.T) {
	results := []model.TestResult{
		datedResult("Math", 60, 100, 30),
		datedResult("Math", 80, 100, 1),
	}

	SortByDateDesc(results)

	assert.Equal(t, 60, results[0].Score)
}

func TestSubjectImprovements(t *testing.T) {
	results := []model.TestResult{
		datedResult("Math", 60, 100, 30),
		datedResult("Math", 80, 100, 1),
		datedResult("Science", 70, 100, 10),
	}

	improvements := SubjectImprovements(results)

	assert.Equal(t, 20.0, improvements["Math"])
	assert.Equal(t, 0.0, improvements["Science"])
}
