package prompt

import (
	"regexp"
	"strings"
	"testing"

	"interview-prep/internal/domain"
	"interview-prep/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProfile = domain.JobProfile{
	JobPosition:    "Backend Engineer",
	JobDescription: "Build low-latency order books",
	JobExperience:  "4",
}

func TestPrerequisites(t *testing.T) {
	p := Prerequisites(testProfile)

	assert.Contains(t, p, "for a Backend Engineer position")
	assert.Contains(t, p, "job description: Build low-latency order books.")
	assert.Contains(t, p, "The candidate has 4 years of experience.")
	assert.Contains(t, p, "Format each prerequisite as 'Title: Description'")
	assert.NotContains(t, p, "%!")
}

func TestExplanations(t *testing.T) {
	p := Explanations(testProfile, []string{"Arrays", "Heaps", "Tries"})

	assert.Contains(t, p, "following data structure topics: Arrays, Heaps, Tries.")
	assert.Contains(t, p, "For a Backend Engineer position with 4 years of experience")
	assert.Contains(t, p, "relevant to the job description: Build low-latency order books")
	assert.Contains(t, p, "a Backend Engineer with 4 years of experience should be familiar with")
	for _, label := range []string{"Topic:", "Explanation:", "Use Cases:", "Example:", "Advanced Techniques:", "Common Pitfalls:"} {
		assert.Contains(t, p, label)
	}
	assert.NotContains(t, p, "%!")
}

// A reply that copies the requested format must parse without fallbacks.
func TestExplanations_FormatMatchesParser(t *testing.T) {
	p := Explanations(testProfile, []string{"Heaps"})

	_, block, ok := strings.Cut(p, "as follows, with a blank line between topics and each label at the start of its line:\n")
	require.True(t, ok)
	block, _, _ = strings.Cut(block, "\n\n")
	assert.NotContains(t, block, "- ")

	placeholder := regexp.MustCompile(`\{[^}]*\}`)
	reply := placeholder.ReplaceAllString(block, "Heaps")

	explanations, err := parser.ParseTopicExplanations(reply)
	require.NoError(t, err)
	require.Len(t, explanations, 1)
	assert.Equal(t, domain.TopicExplanation{
		Topic:              "Heaps",
		Explanation:        "Heaps",
		UseCases:           "Heaps",
		Example:            "Heaps",
		AdvancedTechniques: "Heaps",
		CommonPitfalls:     "Heaps",
	}, explanations[0])
}

func TestInterviewQuestions(t *testing.T) {
	p := InterviewQuestions(testProfile, 7)

	assert.Contains(t, p, "Job position: Backend Engineer, Job Description: Build low-latency order books, Years of Experience: 4")
	assert.Contains(t, p, "give us 7 Interview questions")
	assert.Contains(t, p, `"question": "Your question here"`)
	assert.Contains(t, p, `"answer": "Your answer here"`)
}

func TestInterviewQuestions_CountIsNotBounded(t *testing.T) {
	assert.Contains(t, InterviewQuestions(testProfile, 0), "give us 0 Interview questions")
	assert.Contains(t, InterviewQuestions(testProfile, -3), "give us -3 Interview questions")
}

func TestPromptsArePure(t *testing.T) {
	assert.Equal(t, Prerequisites(testProfile), Prerequisites(testProfile))
	assert.Equal(t, InterviewQuestions(testProfile, 5), InterviewQuestions(testProfile, 5))
}
