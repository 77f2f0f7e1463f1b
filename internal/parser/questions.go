package parser

import (
	"encoding/json"
	"regexp"

	"interview-prep/internal/domain"
)

// jsonArrayPattern matches the shortest bracketed substring, across newlines.
// Nested arrays are cut at the first closing bracket.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*?\]`)

// ExtractInterviewQuestions locates the JSON array embedded in raw and decodes
// it. A malformed match is a hard failure; no repair is attempted.
func ExtractInterviewQuestions(raw string) ([]domain.InterviewQuestion, error) {
	match := jsonArrayPattern.FindString(raw)
	if match == "" {
		return nil, domain.NewNoStructuredDataError()
	}

	var questions []domain.InterviewQuestion
	if err := json.Unmarshal([]byte(match), &questions); err != nil {
		return nil, domain.NewMalformedPayloadError(err).WithContext("payload", match)
	}
	if questions == nil {
		questions = []domain.InterviewQuestion{}
	}
	return questions, nil
}
