package http

import (
	"time"

	"personal-agent/internal/assistant"
	"personal-agent/internal/extractor"
	"personal-agent/internal/model"
)

// --- Request DTOs ---

type overridesReq struct {
	Topic     string `json:"topic"     binding:"omitempty,max=255"`
	Query     string `json:"query"     binding:"omitempty,max=255"`
	Date      string `json:"date"      binding:"omitempty,max=64"`
	Location  string `json:"location"  binding:"omitempty,max=255"`
	Recipient string `json:"recipient" binding:"omitempty,max=255"`
	Source    string `json:"source"    binding:"omitempty,oneof=notes files either"`
}

func (r overridesReq) toOverrides() extractor.Overrides {
	return extractor.Overrides{
		Topic:     r.Topic,
		Query:     r.Query,
		Date:      r.Date,
		Location:  r.Location,
		Recipient: r.Recipient,
		Source:    r.Source,
	}
}

type routeReq struct {
	Text      string       `json:"text" binding:"required,min=1,max=4000"`
	Overrides overridesReq `json:"overrides"`
}

func (r routeReq) toInput() assistant.RouteInput {
	return assistant.RouteInput{
		Text:      r.Text,
		Overrides: r.Overrides.toOverrides(),
	}
}

type chatReq struct {
	Text      string       `json:"text" binding:"required,min=1,max=4000"`
	MaxTurns  int          `json:"max_turns" binding:"omitempty,min=1,max=20"`
	Overrides overridesReq `json:"overrides"`
}

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{
		Text:      r.Text,
		MaxTurns:  r.MaxTurns,
		Overrides: r.Overrides.toOverrides(),
	}
}

type runReq struct {
	Text     string `json:"text" binding:"required,min=1,max=4000"`
	MaxTurns int    `json:"max_turns" binding:"omitempty,min=1,max=20"`
}

func (r runReq) toInput() assistant.RunInput {
	return assistant.RunInput{
		Text:     r.Text,
		MaxTurns: r.MaxTurns,
	}
}

// --- Response DTOs ---

type decisionResp struct {
	Kind      string    `json:"kind"`
	Tool      string    `json:"tool,omitempty"`
	Args      []argResp `json:"args,omitempty"`
	Missing   string    `json:"missing,omitempty"`
	Question  string    `json:"question,omitempty"`
	Canonical string    `json:"canonical"`
}

type argResp struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func newDecisionResp(d model.RoutingDecision) decisionResp {
	args := make([]argResp, len(d.Args))
	for i, arg := range d.Args {
		args[i] = argResp{Name: arg.Name, Value: arg.Value}
	}
	return decisionResp{
		Kind:      string(d.Kind),
		Tool:      d.Tool,
		Args:      args,
		Missing:   d.Missing,
		Question:  d.Question,
		Canonical: d.Canonical(),
	}
}

type routeResp struct {
	Intent      string            `json:"intent"`
	Entities    map[string]string `json:"entities"`
	Constraints map[string]string `json:"constraints"`
	Decision    decisionResp      `json:"decision"`
	Backend     string            `json:"backend"`
}

func (h *handler) newRouteResp(out assistant.RouteOutput) routeResp {
	return routeResp{
		Intent:      string(out.Intent),
		Entities:    out.Entities,
		Constraints: out.Constraints,
		Decision:    newDecisionResp(out.Decision),
		Backend:     out.Backend,
	}
}

type eventResp struct {
	RunID      string                 `json:"run_id"`
	Turn       int                    `json:"turn"`
	Type       string                 `json:"type"`
	Timestamp  time.Time              `json:"timestamp"`
	Tool       string                 `json:"tool,omitempty"`
	Args       map[string]interface{} `json:"args,omitempty"`
	Success    bool                   `json:"success"`
	Output     string                 `json:"output,omitempty"`
	Tier       string                 `json:"tier,omitempty"`
	Answer     string                 `json:"answer,omitempty"`
	IsQuestion bool                   `json:"is_question,omitempty"`
	Code       string                 `json:"code,omitempty"`
	Message    string                 `json:"message,omitempty"`
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		RunID:      ev.RunID,
		Turn:       ev.Turn,
		Type:       string(ev.Type),
		Timestamp:  ev.Timestamp,
		Tool:       ev.Tool,
		Args:       ev.Args,
		Success:    ev.Success,
		Output:     ev.Output,
		Tier:       ev.Tier,
		Answer:     ev.Answer,
		IsQuestion: ev.IsQuestion,
		Code:       string(ev.Code),
		Message:    ev.Message,
	}
}

type chatResp struct {
	Answer     string      `json:"answer"`
	IsQuestion bool        `json:"is_question"`
	Mode       string      `json:"mode"`
	Tool       string      `json:"tool,omitempty"`
	Tier       string      `json:"tier,omitempty"`
	Events     []eventResp `json:"events,omitempty"`
}

func (h *handler) newChatResp(out assistant.ChatOutput) chatResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return chatResp{
		Answer:     out.Answer,
		IsQuestion: out.IsQuestion,
		Mode:       out.Mode,
		Tool:       out.Tool,
		Tier:       out.Tier,
		Events:     events,
	}
}

type runResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newRunResp(events []model.Event) runResp {
	out := make([]eventResp, len(events))
	for i, ev := range events {
		out[i] = newEventResp(ev)
	}
	return runResp{Events: out}
}
