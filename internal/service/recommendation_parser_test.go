package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRecommendationsNoBraces(t *testing.T) {
	_, err := ExtractRecommendations("garbage text with no braces")

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "no JSON found", perr.Reason)
}

func TestExtractRecommendationsWithSurroundingText(t *testing.T) {
	recs, err := ExtractRecommendations(`prefix {"recommendations":[]} suffix`)

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestExtractRecommendationsParsesFields(t *testing.T) {
	raw := `Here is my analysis:
{
  "recommendations": [
    {
      "subject": "Math",
      "learningStyle": "Visual",
      "techniques": ["diagrams", "color coding", "flowcharts"],
      "resources": ["Khan Academy", "GeoGebra"],
      "strengths": ["algebra"],
      "weaknesses": ["geometry", "fractions"]
    }
  ]
}
Hope this helps!`

	recs, err := ExtractRecommendations(raw)

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Math", recs[0].Subject)
	assert.Equal(t, "Visual", recs[0].LearningStyle)
	assert.Len(t, recs[0].Techniques, 3)
	assert.Equal(t, []string{"geometry", "fractions"}, recs[0].Weaknesses)
}

func TestExtractRecommendationsInvalidJSON(t *testing.T) {
	_, err := ExtractRecommendations(`text {"recommendations": [unquoted]} more`)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "invalid JSON", perr.Reason)
}

func TestExtractRecommendationsMissingFieldDefaultsEmpty(t *testing.T) {
	recs, err := ExtractRecommendations(`{"note": "nothing to recommend"}`)

	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestExtractRecommendationsGreedySpanToleratesEmbeddedBraces(t *testing.T) {
	// The span runs to the LAST closing brace, so an early '}' inside a
	// string value does not truncate the object.
	raw := `{"recommendations":[{"subject":"Math","learningStyle":"Visual","techniques":["use {braces} notation"],"resources":[],"strengths":[],"weaknesses":[]}]}`

	recs, err := ExtractRecommendations(raw)

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "use {braces} notation", recs[0].Techniques[0])
}

func TestSpanHasMultipleObjects(t *testing.T) {
	multiElement := `{"recommendations":[{"subject":"Math","techniques":[]},{"subject":"Science","techniques":[]}]}`
	assert.False(t, spanHasMultipleObjects(multiElement), "nested objects are one payload")

	bracesInString := `{"recommendations":[{"subject":"Math","techniques":["use } and { notation"]}]}`
	assert.False(t, spanHasMultipleObjects(bracesInString), "braces inside strings are not structure")

	independent := `{"recommendations":[]} and also {"questions":[]}`
	assert.True(t, spanHasMultipleObjects(independent))
}

func TestExtractQuizQuestions(t *testing.T) {
	raw := `{"questions":[{"id":1,"question":"When learning something new, you prefer to...","options":[{"text":"watch a demonstration","style":"Visual"},{"text":"listen to an explanation","style":"Auditory"}]}]}`

	questions, err := ExtractQuizQuestions(raw)

	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 1, questions[0].ID)
	require.Len(t, questions[0].Options, 2)
	assert.Equal(t, "Auditory", questions[0].Options[1].Style)
}

func TestExtractQuizQuestionsMissingFieldDefaultsEmpty(t *testing.T) {
	questions, err := ExtractQuizQuestions(`{"recommendations":[]}`)

	require.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
}
