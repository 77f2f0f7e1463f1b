package parser

import (
	"strings"
	"testing"

	"interview-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTopicExplanations_CanonicalOrder(t *testing.T) {
	raw := strings.Join([]string{
		"Topic: Hash Tables",
		"Explanation: Key to bucket mapping.",
		"Use Cases: Caches and indexes.",
		"Example: Session lookup by token.",
		"Advanced Techniques: Robin Hood hashing.",
		"Common Pitfalls: Poor hash functions.",
	}, "\n")

	got, err := ParseTopicExplanations(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.TopicExplanation{
		Topic:              "Hash Tables",
		Explanation:        "Key to bucket mapping.",
		UseCases:           "Caches and indexes.",
		Example:            "Session lookup by token.",
		AdvancedTechniques: "Robin Hood hashing.",
		CommonPitfalls:     "Poor hash functions.",
	}, got[0])
}

func TestParseTopicExplanations_NonCanonicalOrder(t *testing.T) {
	raw := strings.Join([]string{
		"  Topic: Heaps",
		"   Use Cases: Priority queues.",
		"Explanation: Complete binary tree with heap order.",
		"\tCommon Pitfalls: Off-by-one child indexes.",
		"Example: Top-k streaming metrics.",
		"Advanced Techniques: d-ary heaps.  ",
	}, "\n")

	got, err := ParseTopicExplanations(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Heaps", got[0].Topic)
	assert.Equal(t, "Complete binary tree with heap order.", got[0].Explanation)
	assert.Equal(t, "Priority queues.", got[0].UseCases)
	assert.Equal(t, "Top-k streaming metrics.", got[0].Example)
	assert.Equal(t, "d-ary heaps.", got[0].AdvancedTechniques)
	assert.Equal(t, "Off-by-one child indexes.", got[0].CommonPitfalls)
}

func TestParseTopicExplanations_MissingExample(t *testing.T) {
	raw := "Topic: Tries\n" +
		"Explanation: Prefix tree.\n" +
		"Use Cases: Autocomplete.\n" +
		"Advanced Techniques: Radix compression.\n" +
		"Common Pitfalls: Memory blowup."

	got, err := ParseTopicExplanations(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "No example provided.", got[0].Example)
	assert.Equal(t, "Tries", got[0].Topic)
	assert.Equal(t, "Prefix tree.", got[0].Explanation)
	assert.Equal(t, "Autocomplete.", got[0].UseCases)
	assert.Equal(t, "Radix compression.", got[0].AdvancedTechniques)
	assert.Equal(t, "Memory blowup.", got[0].CommonPitfalls)
}

func TestParseTopicExplanations_Fallbacks(t *testing.T) {
	got, err := ParseTopicExplanations("Graphs overview\nsome prose without labels")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.TopicExplanation{
		Topic:              "Unknown Topic",
		Explanation:        "No explanation provided.",
		UseCases:           "No use cases provided.",
		Example:            "No example provided.",
		AdvancedTechniques: "No advanced techniques provided.",
		CommonPitfalls:     "No common pitfalls provided.",
	}, got[0])
}

func TestParseTopicExplanations_LabelEdgeCases(t *testing.T) {
	raw := "Topic: Stacks\n" +
		"Explanation:LIFO without a space\n" +
		"Example:\n" +
		"Use Cases: first\n" +
		"Use Cases: second"

	got, err := ParseTopicExplanations(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "LIFO without a space", got[0].Explanation)
	assert.Equal(t, "No example provided.", got[0].Example, "empty label value falls back")
	assert.Equal(t, "first", got[0].UseCases, "first matching line wins")
}

func TestParseTopicExplanations_TopicPrefixOnFirstLineOnly(t *testing.T) {
	raw := "Explanation: Queue semantics.\nTopic: Queues"

	got, err := ParseTopicExplanations(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Unknown Topic", got[0].Topic)
	assert.Equal(t, "Queue semantics.", got[0].Explanation)
}

func TestParseTopicExplanations_MultipleSections(t *testing.T) {
	raw := "Topic: Arrays\nExplanation: Contiguous.\n\n\n\nTopic: Graphs\nExample: Route planning."

	got, err := ParseTopicExplanations(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Arrays", got[0].Topic)
	assert.Equal(t, "Contiguous.", got[0].Explanation)
	assert.Equal(t, "No example provided.", got[0].Example)
	assert.Equal(t, "Graphs", got[1].Topic)
	assert.Equal(t, "Route planning.", got[1].Example)
	assert.Equal(t, "No explanation provided.", got[1].Explanation)
}

func TestParseTopicExplanations_EmptyResponse(t *testing.T) {
	got, err := ParseTopicExplanations(" \n\n ")
	assert.Nil(t, got)
	assert.True(t, domain.IsCode(err, domain.CodeEmptyResponse))
}

func TestParseTopicExplanations_Idempotent(t *testing.T) {
	raw := "Topic: Sets\nUse Cases: Dedup.\n\nTopic: Maps\nCommon Pitfalls: Iteration order."
	first, err := ParseTopicExplanations(raw)
	require.NoError(t, err)
	second, err := ParseTopicExplanations(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
