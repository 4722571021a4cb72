// Package analytics holds the pure class-wide computations: aggregation,
// risk classification, and per-subject progress. Every function takes an
// in-memory snapshot and returns a new value; callers fetch first, compute
// after, and need no coordination between concurrent calls.
package analytics

import (
	"math"
	"sort"

	"github.com/lshigami/Wallabies/internal/model"
)

// Policy carries the tunable thresholds of the aggregation. The source data
// model had two competing definitions of a slow learner (at least one low
// score vs. more than one), so the count is an explicit knob instead of a
// constant. MinLowScores=1 reproduces the primary behavior.
type Policy struct {
	LowScorePercent float64
	MinLowScores    int
}

// DefaultPolicy returns the thresholds used when the config supplies none.
func DefaultPolicy() Policy {
	return Policy{LowScorePercent: 60, MinLowScores: 1}
}

// Static catalogs returned with the analytics. They are not derived from
// the student data; callers may override them with stored values.
var (
	DefaultInterventions = []string{
		"Concept Mapping for Visual Learners",
		"Spaced Repetition Practice",
		"Peer-Led Tutorial Groups",
		"Multimedia Learning Resources",
	}

	DefaultTeachingApproaches = []string{
		"Implement visual aids and diagrams for mathematical concepts",
		"Break complex problems into smaller, manageable steps",
		"Provide immediate feedback on practice problems",
		"Use real-world applications to demonstrate abstract concepts",
		"Create supportive learning environments that reduce math anxiety",
	}
)

// Result is the aggregator's output, prior to persistence.
type Result struct {
	TotalStudents                 int
	SlowLearnerPercentage         int
	AverageImprovement            float64
	MostChallengedSubjects        []string
	MostEffectiveInterventions    []string
	RecommendedTeachingApproaches []string
}

// Overrides replaces the static catalogs when the caller has stored copies,
// e.g. interventions the teacher recorded over time.
type Overrides struct {
	Interventions      []string
	TeachingApproaches []string
}

// Aggregate computes the class analytics from a snapshot of students.
// Deterministic and order-independent, except that subjects with equal mean
// scores keep their first-seen relative order.
func Aggregate(students []model.Student, policy Policy, overrides Overrides) Result {
	res := Result{
		TotalStudents:                 len(students),
		MostChallengedSubjects:        []string{},
		MostEffectiveInterventions:    DefaultInterventions,
		RecommendedTeachingApproaches: DefaultTeachingApproaches,
	}
	if len(overrides.Interventions) > 0 {
		res.MostEffectiveInterventions = overrides.Interventions
	}
	if len(overrides.TeachingApproaches) > 0 {
		res.RecommendedTeachingApproaches = overrides.TeachingApproaches
	}

	if len(students) == 0 {
		return res
	}

	slowLearners := 0
	for _, s := range students {
		lowScores := 0
		for _, t := range s.TestResults {
			if t.Percentage() < policy.LowScorePercent {
				lowScores++
			}
		}
		if lowScores >= policy.MinLowScores {
			slowLearners++
		}
	}
	res.SlowLearnerPercentage = int(math.Round(float64(slowLearners) / float64(len(students)) * 100))

	withProgress := 0
	totalImprovement := 0.0
	for _, s := range students {
		if s.ProgressMetrics == nil {
			continue
		}
		withProgress++
		totalImprovement += s.ProgressMetrics.ImprovementRate
	}
	if withProgress > 0 {
		res.AverageImprovement = math.Round(totalImprovement/float64(withProgress)*10) / 10
	}

	res.MostChallengedSubjects = challengedSubjects(students)
	return res
}

type subjectStat struct {
	name  string
	total float64
	count int
}

// challengedSubjects ranks subjects by mean percentage score, worst first,
// skipping subjects with fewer than two recorded attempts. Subjects are
// collected in first-seen order so that ties sort stably.
func challengedSubjects(students []model.Student) []string {
	var order []string
	stats := make(map[string]*subjectStat)

	for _, s := range students {
		for _, t := range s.TestResults {
			st, ok := stats[t.Subject]
			if !ok {
				st = &subjectStat{name: t.Subject}
				stats[t.Subject] = st
				order = append(order, t.Subject)
			}
			st.total += t.Percentage()
			st.count++
		}
	}

	var ranked []*subjectStat
	for _, name := range order {
		if st := stats[name]; st.count >= 2 {
			ranked = append(ranked, st)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].total/float64(ranked[i].count) < ranked[j].total/float64(ranked[j].count)
	})

	top := []string{}
	for i := 0; i < len(ranked) && i < 3; i++ {
		top = append(top, ranked[i].name)
	}
	return top
}
