package worksheet

import "github.com/nirajyt2022-source/edTech-sub001/internal/llm"

// QuestionSchema defines the JSON schema for generated worksheet
// questions.
var QuestionSchema = &llm.Schema{
	Name:        "worksheet-question",
	Description: "A single practice worksheet question with answer and hint",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner",
			},
			"format": map[string]any{
				"type":        "string",
				"enum":        []any{"mcq", "fill_blank", "word_problem"},
				"description": "How the learner answers: pick from choices, fill the blank, or solve a word problem",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer. For mcq: the text of the correct option.",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options for mcq format. Empty array otherwise.",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "A short scaffolding hint. Empty when scaffolding is off.",
			},
			"context": map[string]any{
				"type":        "string",
				"description": "Short label for the story setting used, e.g. \"fruit shop\". Empty if none.",
			},
			"error_id": map[string]any{
				"type":        "string",
				"description": "For error-detection slots: short label for the planted mistake type. Empty otherwise.",
			},
			"thinking_style": map[string]any{
				"type":        "string",
				"description": "For thinking slots: short label for the reasoning pattern. Empty otherwise.",
			},
		},
		"required":             []any{"question_text", "format", "answer", "choices", "hint", "context", "error_id", "thinking_style"},
		"additionalProperties": false,
	},
}
