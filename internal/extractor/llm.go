package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"personal-agent/internal/model"
	"personal-agent/pkg/llmprovider"
)

// Extract asks the model for a structured intent snapshot. Any transport or
// decode failure falls through to the heuristic extractor so a turn always
// produces a snapshot.
func (e *LLM) Extract(ctx context.Context, text string, today time.Time, ov Overrides) (model.IntentPayload, error) {
	payload, err := e.extractOnce(ctx, text, today)
	if err != nil {
		e.l.Warnf(ctx, "extractor: model extraction failed, using heuristics: %v", err)
		return e.heuristic.Extract(ctx, text, today, ov)
	}

	ov.apply(&payload)
	return payload, nil
}

func (e *LLM) extractOnce(ctx context.Context, text string, today time.Time) (model.IntentPayload, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: extractionSystemPrompt}},
		},
		Messages: []llmprovider.Message{
			{
				Role: "user",
				Parts: []llmprovider.Part{
					{Text: fmt.Sprintf("Today is %s.\n\nMessage: %s", today.Format("2006-01-02"), text)},
				},
			},
		},
		MaxTokens: maxExtractionTokens,
	}

	resp, err := e.llm.GenerateContent(ctx, req)
	if err != nil {
		return model.IntentPayload{}, err
	}

	if len(resp.Content.Parts) == 0 {
		return model.IntentPayload{}, fmt.Errorf("empty extraction response")
	}

	raw := stripCodeFences(resp.Content.Parts[0].Text)

	var out llmExtraction
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return model.IntentPayload{}, fmt.Errorf("decode extraction response: %w", err)
	}

	return normalize(out), nil
}

// normalize maps the raw model output onto the recognized vocabulary,
// dropping anything outside it.
func normalize(out llmExtraction) model.IntentPayload {
	payload := model.IntentPayload{
		Intent:      model.ParseIntent(out.Intent),
		Entities:    model.EntityBag{},
		Constraints: model.ConstraintBag{},
	}

	for _, key := range model.RecognizedEntityKeys {
		if value, ok := out.Entities[key]; ok && strings.TrimSpace(value) != "" {
			payload.Entities[key] = strings.TrimSpace(value)
		}
	}

	if v, ok := out.Constraints[model.ConstraintSourcePreference]; ok {
		switch v {
		case model.SourceNotes, model.SourceFiles, model.SourceEither:
			payload.Constraints[model.ConstraintSourcePreference] = v
		}
	}
	if v, ok := out.Constraints[model.ConstraintSafety]; ok && v != "" {
		payload.Constraints[model.ConstraintSafety] = v
	}

	return payload
}

// stripCodeFences removes markdown code blocks if present (```json ... ```)
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}
