// Package prompt builds the natural-language prompts sent to the text generator.
package prompt

import (
	"fmt"
	"strings"

	"interview-prep/internal/domain"
)

const prerequisitesTemplate = `Generate prerequisites for a Data Structures interview for a %s position with the following job description: %s. The candidate has %s years of experience. Provide a list of 5-7 key prerequisites related to data structures. Format each prerequisite as 'Title: Description'. Each title can have multiple descriptions under it. Separate titles and descriptions with a newline. Do not include any asterisks or Markdown formatting in the response.`

// Prerequisites asks for blank-line separated "title + descriptions" sections.
func Prerequisites(profile domain.JobProfile) string {
	return fmt.Sprintf(prerequisitesTemplate, profile.JobPosition, profile.JobDescription, profile.JobExperience)
}

const explanationsTemplate = `For a %[1]s position with %[2]s years of experience, provide a detailed, in-depth explanation for each of the following data structure topics: %[3]s. For each topic:
    1. Provide a comprehensive explanation of the concept, its implementation, and its significance in data structures.
    2. Include specific use cases and scenarios where this data structure is particularly useful in the context of a %[1]s role.
    3. Offer a complex, real-world example that demonstrates the application of this data structure in solving a problem relevant to the job description: %[4]s
    4. Discuss any advanced techniques or optimizations related to this data structure that a %[1]s with %[2]s years of experience should be familiar with.
    5. Mention any common pitfalls or misconceptions about this data structure and how to avoid them.

    Format the response for each topic as follows, with a blank line between topics and each label at the start of its line:
    Topic: {topic name}
    Explanation: {detailed, original explanation}
    Use Cases: {specific use cases relevant to the job}
    Example: {complex, real-world example}
    Advanced Techniques: {advanced concepts and optimizations}
    Common Pitfalls: {pitfalls and how to avoid them}

    Ensure the explanations are tailored to the specific job position and experience level, avoiding generic content. Do not use any markdown formatting or special characters in the response.`

// Explanations asks for one labelled block per topic.
func Explanations(profile domain.JobProfile, topics []string) string {
	return fmt.Sprintf(explanationsTemplate,
		profile.JobPosition,
		profile.JobExperience,
		strings.Join(topics, ", "),
		profile.JobDescription,
	)
}

const interviewQuestionsTemplate = `Job position: %s, Job Description: %s, Years of Experience: %s, Depends on Job Position, Job Description and Years of Experience give us %d Interview questions related to data structures along with answers in JSON format. Each question and answer should be in the format:
    {
      "question": "Your question here",
      "answer": "Your answer here"
    }`

// InterviewQuestions asks for questionCount question/answer objects as a JSON
// array. The count is interpolated as-is.
func InterviewQuestions(profile domain.JobProfile, questionCount int) string {
	return fmt.Sprintf(interviewQuestionsTemplate,
		profile.JobPosition,
		profile.JobDescription,
		profile.JobExperience,
		questionCount,
	)
}
