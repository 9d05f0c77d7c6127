package llmprovider

import (
	"context"

	"personal-agent/pkg/gemini"
)

// GeminiAdapter exposes pkg/gemini as a Provider. The normalized and
// Gemini message shapes are near-isomorphic, so conversion is mechanical.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) Name() string {
	return "gemini"
}

func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: toGeminiContent(req.SystemInstruction),
		Messages:          toGeminiContents(req.Messages),
		Tools:             toGeminiTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      fromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage.InputTokens = resp.Usage.InputTokens
		out.Usage.OutputTokens = resp.Usage.OutputTokens
		out.Usage.TotalTokens = resp.Usage.TotalTokens
	}
	return out, nil
}

func toGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func toGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *toGeminiContent(&msgs[i])
	}
	return contents
}

func toGeminiTools(tools []Tool) []gemini.Tool {
	out := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		out[i] = gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return out
}

func fromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return Message{Role: content.Role, Parts: parts}
}
