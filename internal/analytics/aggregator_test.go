package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lshigami/Wallabies/internal/model"
	"github.com/stretchr/testify/assert"
)

func result(subject string, score, total int) model.TestResult {
	return model.TestResult{Subject: subject, Score: score, TotalPossible: total}
}

func studentWithResults(name string, results ...model.TestResult) model.Student {
	return model.Student{Name: name, TestResults: results}
}

func TestAggregateEmptyClass(t *testing.T) {
	res := Aggregate(nil, DefaultPolicy(), Overrides{})

	assert.Equal(t, 0, res.TotalStudents)
	assert.Equal(t, 0, res.SlowLearnerPercentage)
	assert.Equal(t, 0.0, res.AverageImprovement)
	assert.Empty(t, res.MostChallengedSubjects)
	assert.Equal(t, DefaultInterventions, res.MostEffectiveInterventions)
	assert.Equal(t, DefaultTeachingApproaches, res.RecommendedTeachingApproaches)
}

func TestAggregateSingleLowScorerIsFullySlow(t *testing.T) {
	students := []model.Student{
		studentWithResults("A", result("Math", 50, 100)),
	}

	res := Aggregate(students, DefaultPolicy(), Overrides{})

	assert.Equal(t, 1, res.TotalStudents)
	assert.Equal(t, 100, res.SlowLearnerPercentage)
}

func TestAggregateSlowLearnerPolicyThreshold(t *testing.T) {
	// One low score: slow under MinLowScores=1, not under MinLowScores=2.
	students := []model.Student{
		studentWithResults("A", result("Math", 50, 100), result("Math", 90, 100)),
		studentWithResults("B", result("Math", 95, 100), result("Math", 90, 100)),
	}

	lenient := Aggregate(students, Policy{LowScorePercent: 60, MinLowScores: 1}, Overrides{})
	strict := Aggregate(students, Policy{LowScorePercent: 60, MinLowScores: 2}, Overrides{})

	assert.Equal(t, 50, lenient.SlowLearnerPercentage)
	assert.Equal(t, 0, strict.SlowLearnerPercentage)
}

func TestAggregateAverageImprovementSkipsStudentsWithoutProgress(t *testing.T) {
	students := []model.Student{
		{Name: "A", ProgressMetrics: &model.ProgressMetrics{ImprovementRate: 10}},
		{Name: "B"},
	}

	res := Aggregate(students, DefaultPolicy(), Overrides{})

	assert.Equal(t, 10.0, res.AverageImprovement)
}

func TestAggregateAverageImprovementRoundsToOneDecimal(t *testing.T) {
	students := []model.Student{
		{Name: "A", ProgressMetrics: &model.ProgressMetrics{ImprovementRate: 10}},
		{Name: "B", ProgressMetrics: &model.ProgressMetrics{ImprovementRate: 5}},
		{Name: "C", ProgressMetrics: &model.ProgressMetrics{ImprovementRate: 5}},
	}

	res := Aggregate(students, DefaultPolicy(), Overrides{})

	assert.Equal(t, 6.7, res.AverageImprovement)
}

func TestAggregateMostChallengedSubjects(t *testing.T) {
	students := []model.Student{
		studentWithResults("A",
			result("Math", 40, 100), result("Math", 50, 100),
			result("Science", 80, 100), result("Science", 90, 100),
			result("History", 60, 100), result("History", 70, 100),
			result("Art", 95, 100), result("Art", 85, 100),
		),
		// Single-attempt subject must be excluded even when it is the worst.
		studentWithResults("B", result("Latin", 5, 100)),
	}

	res := Aggregate(students, DefaultPolicy(), Overrides{})

	assert.Equal(t, []string{"Math", "History", "Science"}, res.MostChallengedSubjects)
	assert.NotContains(t, res.MostChallengedSubjects, "Latin")
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	pm := func(rate float64) *model.ProgressMetrics { return &model.ProgressMetrics{ImprovementRate: rate} }
	students := []model.Student{
		{Name: "A", TestResults: []model.TestResult{result("Math", 40, 100), result("Math", 55, 100)}, ProgressMetrics: pm(3)},
		{Name: "B", TestResults: []model.TestResult{result("Science", 90, 100), result("Science", 85, 100)}, ProgressMetrics: pm(12)},
		{Name: "C", TestResults: []model.TestResult{result("History", 65, 100), result("History", 70, 100)}},
	}
	expected := Aggregate(students, DefaultPolicy(), Overrides{})

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 10; i++ {
		shuffled := make([]model.Student, len(students))
		copy(shuffled, students)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Aggregate(shuffled, DefaultPolicy(), Overrides{})
		assert.Equal(t, expected.SlowLearnerPercentage, got.SlowLearnerPercentage)
		assert.Equal(t, expected.AverageImprovement, got.AverageImprovement)
		assert.ElementsMatch(t, expected.MostChallengedSubjects, got.MostChallengedSubjects)
	}
}

func TestAggregateCatalogOverrides(t *testing.T) {
	students := []model.Student{studentWithResults("A", result("Math", 90, 100))}
	overrides := Overrides{Interventions: []string{"One-on-one tutoring"}}

	res := Aggregate(students, DefaultPolicy(), overrides)

	assert.Equal(t, []string{"One-on-one tutoring"}, res.MostEffectiveInterventions)
	assert.Equal(t, DefaultTeachingApproaches, res.RecommendedTeachingApproaches)
}

func TestAggregateZeroTotalPossibleDoesNotPanic(t *testing.T) {
	students := []model.Student{
		studentWithResults("A", model.TestResult{Subject: "Math", Score: 10, TotalPossible: 0}),
	}

	res := Aggregate(students, DefaultPolicy(), Overrides{})

	// 0% counts as a low score under the default policy.
	assert.Equal(t, 100, res.SlowLearnerPercentage)
}
