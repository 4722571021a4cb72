package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lshigami/Wallabies/internal/model"
	"github.com/rs/zerolog/log"
)

// ParseError reports a failure to extract a structured payload from the
// model's free-text response. Surfaced to the end user; never retried.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse error: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// extractJSONObject returns the span from the first '{' to the last '}' in
// the text. Deliberately not a balanced-brace extraction: the greedy span
// tolerates braces inside string values, and the model is prompted to emit
// exactly one object. When the span holds several independent top-level
// objects the extraction may have produced garbage, which is worth knowing
// about.
func extractJSONObject(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", &ParseError{Reason: "no JSON found"}
	}

	span := raw[start : end+1]
	if spanHasMultipleObjects(span) {
		log.Warn().
			Int("span_len", len(span)).
			Msg("AI response contains multiple candidate JSON objects; using greedy span")
	}
	return span, nil
}

// spanHasMultipleObjects reports whether the span closes a top-level object
// before its end, meaning the greedy extraction swallowed more than one
// independent object. Braces inside string literals are skipped so nested
// payloads do not trip the check.
func spanHasMultipleObjects(span string) bool {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(span); i++ {
		c := span[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 && i < len(span)-1 {
				return true
			}
		}
	}
	return false
}

// ExtractRecommendations parses a learning-recommendation payload out of a
// raw AI response. The payload must carry a top-level "recommendations"
// array; a well-formed object without one yields an empty list.
func ExtractRecommendations(raw string) ([]model.LearningRecommendation, error) {
	span, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Recommendations []model.LearningRecommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", Err: err}
	}
	if payload.Recommendations == nil {
		return []model.LearningRecommendation{}, nil
	}
	return payload.Recommendations, nil
}

// ExtractQuizQuestions parses a learning-style quiz payload, expecting a
// top-level "questions" array. Same extraction heuristic as the
// recommendations path.
func ExtractQuizQuestions(raw string) ([]model.QuizQuestion, error) {
	span, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Questions []model.QuizQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", Err: err}
	}
	if payload.Questions == nil {
		return []model.QuizQuestion{}, nil
	}
	return payload.Questions, nil
}
