package model

// LearningRecommendation is one AI-sourced suggestion bundle for a subject.
// It is parsed out of free-text model output and returned to the caller;
// it is not persisted.
type LearningRecommendation struct {
	Subject                string             `json:"subject"`
	LearningStyle          string             `json:"learningStyle"`
	Techniques             []string           `json:"techniques"`
	Resources              []string           `json:"resources"`
	Strengths              []string           `json:"strengths"`
	Weaknesses             []string           `json:"weaknesses"`
	RemedialApproaches     []string           `json:"remedialApproaches,omitempty"`
	ConceptualGaps         []string           `json:"conceptualGaps,omitempty"`
	EstimatedTimeToImprove int                `json:"estimatedTimeToImprove,omitempty"` // weeks
	PracticeExercises      []PracticeExercise `json:"practiceExercises,omitempty"`
}

// PracticeExercise is a suggested exercise inside a recommendation.
type PracticeExercise struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Difficulty    string `json:"difficulty"` // Easy, Medium, Hard
	TargetSkill   string `json:"targetSkill"`
	EstimatedTime int    `json:"estimatedTime"` // minutes
}

// QuizQuestion is one learning-style quiz item. Each option maps its answer
// to the learning style it indicates.
type QuizQuestion struct {
	ID       int          `json:"id"`
	Question string       `json:"question"`
	Options  []QuizOption `json:"options"`
}

type QuizOption struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}
