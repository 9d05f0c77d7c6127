package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"personal-agent/pkg/deepseek"
)

// DeepSeekAdapter exposes pkg/deepseek as a Provider. The OpenAI-style
// chat format carries one payload per message, so only the first part of
// each normalized message is mapped.
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

func (a *DeepSeekAdapter) Model() string {
	return deepseek.DefaultModel
}

func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Messages: toDeepSeekMessages(req.Messages),
	}

	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		system := deepseek.Message{
			Role:    "system",
			Content: req.SystemInstruction.Parts[0].Text,
		}
		dsReq.Messages = append([]deepseek.Message{system}, dsReq.Messages...)
	}

	if len(req.Tools) > 0 {
		dsReq.Tools = toDeepSeekTools(req.Tools)
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek: %w", err)
	}
	return a.fromDeepSeekResponse(resp), nil
}

func toDeepSeekMessages(msgs []Message) []deepseek.Message {
	out := make([]deepseek.Message, 0, len(msgs))
	for _, msg := range msgs {
		dsMsg := deepseek.Message{Role: msg.Role}
		if len(msg.Parts) == 0 {
			out = append(out, dsMsg)
			continue
		}

		switch part := msg.Parts[0]; {
		case part.FunctionCall != nil:
			args, _ := json.Marshal(part.FunctionCall.Args)
			dsMsg.ToolCalls = []deepseek.ToolCall{{
				ID:   "call_" + part.FunctionCall.Name,
				Type: "function",
				Function: deepseek.FunctionCall{
					Name:      part.FunctionCall.Name,
					Arguments: string(args),
				},
			}}

		case part.FunctionResponse != nil:
			result, _ := json.Marshal(part.FunctionResponse.Response)
			dsMsg.Role = "tool"
			dsMsg.ToolCallID = "call_" + part.FunctionResponse.Name
			dsMsg.Name = part.FunctionResponse.Name
			dsMsg.Content = string(result)

		default:
			dsMsg.Content = part.Text
		}
		out = append(out, dsMsg)
	}
	return out
}

func toDeepSeekTools(tools []Tool) []deepseek.Tool {
	out := make([]deepseek.Tool, len(tools))
	for i, t := range tools {
		out[i] = deepseek.Tool{
			Type: "function",
			Function: deepseek.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return out
}

func (a *DeepSeekAdapter) fromDeepSeekResponse(resp *deepseek.Response) *Response {
	out := &Response{
		Content:      Message{Role: "assistant", Parts: []Part{}},
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return out
	}

	msg := resp.Choices[0].Message
	if msg.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: msg.Content})
	}
	if len(msg.ToolCalls) > 0 {
		tc := msg.ToolCalls[0]
		var args map[string]interface{}
		json.Unmarshal([]byte(tc.Function.Arguments), &args)
		out.Content.Parts = append(out.Content.Parts, Part{
			FunctionCall: &FunctionCall{
				Name: tc.Function.Name,
				Args: args,
			},
		})
	}
	return out
}
