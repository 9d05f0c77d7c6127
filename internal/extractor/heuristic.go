package extractor

import (
	"context"
	"regexp"
	"strings"
	"time"

	"personal-agent/internal/model"
)

var (
	topicAfterAbout = regexp.MustCompile(`\babout\s+(?:the\s+|my\s+)?(.+)$`)
	locationAfterIn = regexp.MustCompile(`\bin\s+([A-Za-z][A-Za-z .'-]*?)(?:\s+(?:today|tomorrow|tonight|on\b.*))?$`)
	recipientTo     = regexp.MustCompile(`\b(?:email|mail|write to|draft (?:an? )?(?:email|message)? ?to?)\s+([A-Za-z][A-Za-z .'-]*?)(?:\s+about\b.*)?$`)
	remindTask      = regexp.MustCompile(`\bremind me to\s+(.+?)(?:\s+(?:by|on)\s+.+)?$`)
	dueDateTail     = regexp.MustCompile(`\b(?:by|on|due)\s+(.+)$`)
)

// Extract implements the deterministic keyword extractor. The returned error
// is always nil; the signature matches the Extractor contract.
func (e *Heuristic) Extract(_ context.Context, text string, _ time.Time, ov Overrides) (model.IntentPayload, error) {
	payload := model.IntentPayload{
		Intent:      model.IntentUnknown,
		Entities:    model.EntityBag{},
		Constraints: model.ConstraintBag{},
	}

	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		ov.apply(&payload)
		return payload, nil
	}

	switch {
	case strings.Contains(lower, "my notes") || strings.Contains(lower, "in notes") || strings.Contains(lower, "from notes"):
		payload.Constraints[model.ConstraintSourcePreference] = model.SourceNotes
	case strings.Contains(lower, "my files") || strings.Contains(lower, "my documents") || strings.Contains(lower, "in files"):
		payload.Constraints[model.ConstraintSourcePreference] = model.SourceFiles
	}

	switch {
	case strings.Contains(lower, "summarize") || strings.Contains(lower, "summary"):
		payload.Intent = model.IntentSummarize
		e.fillTopic(&payload, lower)
	case strings.Contains(lower, "weather") || strings.Contains(lower, "forecast"):
		payload.Intent = model.IntentWeather
		e.fillWeather(&payload, lower)
	case strings.Contains(lower, "remind") || strings.Contains(lower, "todo") || strings.Contains(lower, "to-do"):
		payload.Intent = model.IntentRemind
		e.fillReminder(&payload, lower)
	case strings.Contains(lower, "email") || strings.Contains(lower, "draft") || strings.Contains(lower, "write to"):
		payload.Intent = model.IntentDraft
		e.fillDraft(&payload, lower)
	case strings.Contains(lower, "find") || strings.Contains(lower, "search") || strings.Contains(lower, "look for") || strings.Contains(lower, "look up"):
		payload.Intent = model.IntentFind
		e.fillQuery(&payload, lower)
	}

	ov.apply(&payload)
	return payload, nil
}

func (e *Heuristic) fillTopic(p *model.IntentPayload, lower string) {
	if m := topicAfterAbout.FindStringSubmatch(lower); m != nil {
		p.Entities[model.EntityTopic] = strings.TrimSpace(m[1])
	}
}

func (e *Heuristic) fillQuery(p *model.IntentPayload, lower string) {
	if m := topicAfterAbout.FindStringSubmatch(lower); m != nil {
		p.Entities[model.EntityTopic] = strings.TrimSpace(m[1])
		return
	}
	for _, verb := range []string{"look for ", "look up ", "search for ", "search ", "find "} {
		if idx := strings.Index(lower, verb); idx >= 0 {
			rest := strings.TrimSpace(lower[idx+len(verb):])
			rest = strings.TrimPrefix(rest, "the ")
			rest = strings.TrimPrefix(rest, "my ")
			for _, tail := range []string{" in my files", " in my documents", " in my notes", " in files", " in notes"} {
				rest = strings.TrimSuffix(rest, tail)
			}
			if rest != "" {
				p.Entities[model.EntityQuery] = rest
			}
			return
		}
	}
}

func (e *Heuristic) fillWeather(p *model.IntentPayload, lower string) {
	if m := locationAfterIn.FindStringSubmatch(lower); m != nil {
		p.Entities[model.EntityLocation] = strings.TrimSpace(m[1])
	}
	switch {
	case strings.Contains(lower, "tomorrow"):
		p.Entities[model.EntityDate] = "tomorrow"
	case strings.Contains(lower, "today") || strings.Contains(lower, "tonight"):
		p.Entities[model.EntityDate] = "today"
	}
}

func (e *Heuristic) fillDraft(p *model.IntentPayload, lower string) {
	if m := recipientTo.FindStringSubmatch(lower); m != nil {
		p.Entities[model.EntityRecipient] = strings.TrimSpace(m[1])
	}
	e.fillTopic(p, lower)
}

func (e *Heuristic) fillReminder(p *model.IntentPayload, lower string) {
	if m := remindTask.FindStringSubmatch(lower); m != nil {
		p.Entities[model.EntityTopic] = strings.TrimSpace(m[1])
	}
	if m := dueDateTail.FindStringSubmatch(lower); m != nil {
		p.Entities[model.EntityDate] = strings.TrimSpace(m[1])
	} else {
		switch {
		case strings.Contains(lower, "tomorrow"):
			p.Entities[model.EntityDate] = "tomorrow"
		case strings.Contains(lower, "next week"):
			p.Entities[model.EntityDate] = "next week"
		}
	}
}
