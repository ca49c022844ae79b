package worksheet

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nirajyt2022-source/edTech-sub001/internal/llm"
	"github.com/nirajyt2022-source/edTech-sub001/internal/mastery"
	"github.com/nirajyt2022-source/edTech-sub001/internal/planner"
)

// GenConfig controls the slot generator.
type GenConfig struct {
	// MaxTokens is the token budget for one question.
	MaxTokens int

	// Temperature controls generator randomness (0.0-1.0).
	Temperature float64

	// MaxAttempts is the number of generation attempts per slot before
	// the fallback stub is substituted. Includes the first attempt.
	MaxAttempts int
}

// DefaultGenConfig returns the recommended generation settings.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		MaxTokens:   512,
		Temperature: 0.7,
		MaxAttempts: 2,
	}
}

// SlotGenerator produces one question per slot spec using an LLM
// provider. The provider boundary is opaque: whatever comes back is
// defensively parsed, and a malformed or empty response surfaces as an
// error so the pipeline can retry or fall back.
type SlotGenerator struct {
	provider llm.Provider
	config   GenConfig
}

// NewSlotGenerator creates a SlotGenerator.
func NewSlotGenerator(provider llm.Provider, cfg GenConfig) *SlotGenerator {
	return &SlotGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw generator response before validation.
type questionOutput struct {
	QuestionText  string   `json:"question_text"`
	Format        string   `json:"format"`
	Answer        string   `json:"answer"`
	Choices       []string `json:"choices"`
	Hint          string   `json:"hint"`
	Context       string   `json:"context"`
	ErrorID       string   `json:"error_id"`
	ThinkingStyle string   `json:"thinking_style"`
}

// Generate produces a single candidate question for the slot. The
// caller is responsible for review, retry, and fallback.
func (g *SlotGenerator) Generate(ctx context.Context, slot planner.SlotSpec, gc GenerationContext) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "slot-gen")
	return g.generate(ctx, BuildSlotInstruction(slot, gc), slot)
}

// GenerateBonus produces the extra challenge-mode question. Bonus
// questions reuse the thinking-slot directive at the reasoning bloom
// level.
func (g *SlotGenerator) GenerateBonus(ctx context.Context, gc GenerationContext) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "bonus-question")

	slot := planner.SlotSpec{Type: planner.SlotThinking, SkillTag: firstTag(gc)}
	bonusCtx := gc
	bonusCtx.BloomLevel = BloomReasoning

	q, err := g.generate(ctx, BuildSlotInstruction(slot, bonusCtx), slot)
	if err != nil {
		return nil, err
	}
	q.IsBonus = true
	return q, nil
}

func (g *SlotGenerator) generate(ctx context.Context, instruction string, slot planner.SlotSpec) (*Question, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: instruction},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse generator response: %w", err)
	}
	if strings.TrimSpace(raw.QuestionText) == "" {
		return nil, fmt.Errorf("generator returned empty question text")
	}
	if !validFormat(raw.Format) {
		return nil, fmt.Errorf("generator returned unknown format %q", raw.Format)
	}
	if raw.Format == mastery.FormatMCQ && len(raw.Choices) != 4 {
		return nil, fmt.Errorf("mcq question has %d choices, want 4", len(raw.Choices))
	}

	return &Question{
		Text:          raw.QuestionText,
		Format:        raw.Format,
		SkillTag:      slot.SkillTag,
		SlotType:      string(slot.Type),
		Answer:        raw.Answer,
		Choices:       raw.Choices,
		Hint:          raw.Hint,
		Context:       raw.Context,
		ErrorID:       raw.ErrorID,
		ThinkingStyle: raw.ThinkingStyle,
	}, nil
}

// Fallback builds the stub substituted when generation exhausted its
// attempts for a slot. Flagged so the quality gate reports it.
func Fallback(slot planner.SlotSpec, gc GenerationContext) Question {
	return Question{
		Text:       fmt.Sprintf("Practice question: write one thing you know about %s.", gc.Topic),
		Format:     mastery.FormatFillBlank,
		SkillTag:   slot.SkillTag,
		SlotType:   string(slot.Type),
		Answer:     "",
		IsFallback: true,
	}
}

func validFormat(f string) bool {
	switch f {
	case mastery.FormatMCQ, mastery.FormatFillBlank, mastery.FormatWordProblem:
		return true
	}
	return false
}

func firstTag(gc GenerationContext) string {
	if len(gc.ValidSkillTags) > 0 {
		return gc.ValidSkillTags[0]
	}
	return ""
}
