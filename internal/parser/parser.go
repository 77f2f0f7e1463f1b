// Package parser turns the free text returned by the text generator into the
// structured records the interview flow renders and persists. Every function
// is a pure transformation of its input string.
package parser

import (
	"strings"

	"interview-prep/internal/domain"
)

const sectionSeparator = "\n\n"

// SplitSections splits raw on blank lines and drops sections that are empty
// once trimmed. Sections are returned untrimmed.
func SplitSections(raw string) []string {
	parts := strings.Split(raw, sectionSeparator)
	sections := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		sections = append(sections, p)
	}
	return sections
}

// ParsePrerequisites reads one PrerequisiteItem per section: the first line is
// the title and every following non-blank line is a description.
func ParsePrerequisites(raw string) ([]domain.PrerequisiteItem, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, domain.NewEmptyResponseError()
	}

	sections := SplitSections(raw)
	items := make([]domain.PrerequisiteItem, 0, len(sections))
	for _, section := range sections {
		lines := strings.Split(section, "\n")
		item := domain.PrerequisiteItem{
			Title:        strings.TrimSpace(lines[0]),
			Descriptions: []string{},
		}
		for _, line := range lines[1:] {
			if desc := strings.TrimSpace(line); desc != "" {
				item.Descriptions = append(item.Descriptions, desc)
			}
		}
		items = append(items, item)
	}
	return items, nil
}
