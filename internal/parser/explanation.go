package parser

import (
	"strings"

	"interview-prep/internal/domain"
)

const (
	topicPrefix  = "Topic: "
	unknownTopic = "Unknown Topic"
)

// label is a field marker looked up by prefix anywhere in a section.
type label struct {
	name     string
	fallback string
}

var (
	explanationLabel        = label{"Explanation:", "No explanation provided."}
	useCasesLabel           = label{"Use Cases:", "No use cases provided."}
	exampleLabel            = label{"Example:", "No example provided."}
	advancedTechniquesLabel = label{"Advanced Techniques:", "No advanced techniques provided."}
	commonPitfallsLabel     = label{"Common Pitfalls:", "No common pitfalls provided."}
)

// ParseTopicExplanations reads one TopicExplanation per section. The topic
// comes from the first line; the remaining fields are found by label, so the
// generator may emit them in any order.
func ParseTopicExplanations(raw string) ([]domain.TopicExplanation, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, domain.NewEmptyResponseError()
	}

	sections := SplitSections(raw)
	explanations := make([]domain.TopicExplanation, 0, len(sections))
	for _, section := range sections {
		lines := strings.Split(section, "\n")
		for i := range lines {
			lines[i] = strings.TrimSpace(lines[i])
		}

		explanations = append(explanations, domain.TopicExplanation{
			Topic:              topicName(lines[0]),
			Explanation:        explanationLabel.find(lines),
			UseCases:           useCasesLabel.find(lines),
			Example:            exampleLabel.find(lines),
			AdvancedTechniques: advancedTechniquesLabel.find(lines),
			CommonPitfalls:     commonPitfallsLabel.find(lines),
		})
	}
	return explanations, nil
}

func topicName(firstLine string) string {
	name, ok := strings.CutPrefix(firstLine, topicPrefix)
	if !ok || name == "" {
		return unknownTopic
	}
	return name
}

// find returns the text after the label on the first line carrying it.
func (l label) find(lines []string) string {
	for _, line := range lines {
		rest, ok := strings.CutPrefix(line, l.name)
		if !ok {
			continue
		}
		rest = strings.TrimPrefix(rest, " ")
		if rest == "" {
			return l.fallback
		}
		return rest
	}
	return l.fallback
}
