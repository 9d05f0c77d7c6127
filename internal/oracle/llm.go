package oracle

import (
	"context"
	"fmt"
	"strings"

	"personal-agent/internal/agent"
	"personal-agent/pkg/llmprovider"
	"personal-agent/pkg/log"
)

// LLM is the model-backed oracle. It exposes the tool registry plus the
// synthetic ask_user function and decodes exactly one action per turn.
type LLM struct {
	llm      *llmprovider.Manager
	registry *agent.ToolRegistry
	l        log.Logger
}

var _ Oracle = (*LLM)(nil)

// NewLLM creates the model-backed oracle.
func NewLLM(llm *llmprovider.Manager, registry *agent.ToolRegistry, l log.Logger) *LLM {
	return &LLM{llm: llm, registry: registry, l: l}
}

// Name implements Oracle.
func (o *LLM) Name() string { return "llm" }

// Decide asks the model for the next action.
func (o *LLM) Decide(ctx context.Context, req Request) (Action, error) {
	resp, err := o.llm.GenerateContent(ctx, o.buildRequest(req))
	if err != nil {
		return Action{}, fmt.Errorf("oracle generation failed: %w", err)
	}

	action, err := decodeAction(resp)
	if err != nil {
		return Action{}, err
	}

	action.Tier = resp.ProviderName
	return action, nil
}

// buildRequest replays the run so far as a function-calling conversation.
func (o *LLM) buildRequest(req Request) *llmprovider.Request {
	messages := make([]llmprovider.Message, 0, 2*len(req.History)+2*len(req.Steps)+1)
	for _, ex := range req.History {
		messages = append(messages,
			llmprovider.Message{Role: "user", Parts: []llmprovider.Part{{Text: ex.User}}},
			llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: ex.Answer}}},
		)
	}
	messages = append(messages, llmprovider.Message{Role: "user", Parts: []llmprovider.Part{{Text: req.Text}}})

	for _, step := range req.Steps {
		messages = append(messages, llmprovider.Message{
			Role: "assistant",
			Parts: []llmprovider.Part{{
				FunctionCall: &llmprovider.FunctionCall{Name: step.Tool, Args: step.Args},
			}},
		})

		var result interface{} = step.Result
		if step.Err != "" {
			result = map[string]string{"error": step.Err}
		}
		messages = append(messages, llmprovider.Message{
			Role: "function",
			Parts: []llmprovider.Part{{
				FunctionResponse: &llmprovider.FunctionResponse{Name: step.Tool, Response: result},
			}},
		})
	}

	tools := o.registry.ToFunctionDefinitions()
	tools = append(tools, llmprovider.Tool{
		Name:        askUserTool,
		Description: "Ask the user one clarifying question and wait for the reply.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "The question to ask",
				},
			},
			"required": []string{"question"},
		},
	})

	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: systemPrompt}},
		},
		Messages: messages,
		Tools:    tools,
	}
}

// decodeAction maps a model response to exactly one action.
func decodeAction(resp *llmprovider.Response) (Action, error) {
	if len(resp.Content.Parts) == 0 {
		return Action{}, fmt.Errorf("%w: empty response", ErrDecode)
	}

	part := resp.Content.Parts[0]

	if part.FunctionCall != nil {
		if part.FunctionCall.Name == askUserTool {
			question, _ := part.FunctionCall.Args["question"].(string)
			if question == "" {
				return Action{}, fmt.Errorf("%w: ask_user without question", ErrDecode)
			}
			return Action{Kind: ActionAskUser, Question: question}, nil
		}
		return Action{
			Kind: ActionToolCall,
			Tool: part.FunctionCall.Name,
			Args: part.FunctionCall.Args,
		}, nil
	}

	answer := strings.TrimSpace(part.Text)
	if answer == "" {
		return Action{}, fmt.Errorf("%w: no function call and no text", ErrDecode)
	}
	return Action{Kind: ActionFinish, Answer: answer}, nil
}
