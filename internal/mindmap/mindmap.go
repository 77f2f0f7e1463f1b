package mindmap

import (
	"fmt"

	"interview-prep/internal/domain"
)

// Build converts prerequisites into the tree consumed by the diagram renderer:
// one root per title and one leaf per description. Root IDs are
// "<section>-<title>" and leaf IDs "<rootID>-<index>", so repeated
// titles still yield distinct nodes.
func Build(prerequisites []domain.PrerequisiteItem) []*domain.MindMapNode {
	nodes := make([]*domain.MindMapNode, 0, len(prerequisites))
	for s, prereq := range prerequisites {
		rootID := fmt.Sprintf("%d-%s", s, prereq.Title)
		root := &domain.MindMapNode{
			ID:       rootID,
			Label:    prereq.Title,
			Children: make([]*domain.MindMapNode, 0, len(prereq.Descriptions)),
		}
		for i, desc := range prereq.Descriptions {
			root.Children = append(root.Children, &domain.MindMapNode{
				ID:     fmt.Sprintf("%s-%d", rootID, i),
				Label:  desc,
				Parent: rootID,
			})
		}
		nodes = append(nodes, root)
	}
	return nodes
}
