package mentor

import "github.com/abhisek/pmladder/internal/llm"

// EvaluationSchema defines the JSON schema for mock interview verdicts.
var EvaluationSchema = &llm.Schema{
	Name:        "interview-evaluation",
	Description: "Structured evaluation of a finished mock product management interview",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"rating": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     10,
				"description": "Overall performance on a 1-10 scale",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "What the candidate did well, referencing their answers",
			},
			"improvements": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "Concrete areas to work on before a real interview",
			},
		},
		"required":             []any{"rating", "strengths", "improvements"},
		"additionalProperties": false,
	},
}
