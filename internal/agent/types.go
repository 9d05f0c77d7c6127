package agent

import (
	"context"

	"personal-agent/internal/model"
	"personal-agent/pkg/llmprovider"
	"personal-agent/pkg/log"
)

// Tool represents an agent tool that can be called by the oracle.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for the oracle).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with given parameters.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// Result is a tool execution outcome plus the fallback tier that produced it.
type Result struct {
	Output interface{}
	Tier   string
}

// ToolRegistry manages available tools.
type ToolRegistry struct {
	tools map[string]Tool
	order []string
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(tool Tool) {
	if _, ok := r.tools[tool.Name()]; !ok {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools in registration order.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Execute runs the named tool, resolving the fallback tier it answered from.
func (r *ToolRegistry) Execute(ctx context.Context, name string, params map[string]interface{}) (Result, error) {
	tool, ok := r.tools[name]
	if !ok {
		return Result{}, ErrToolNotFound
	}

	if tiered, ok := tool.(*Tiered); ok {
		return tiered.ExecuteTiered(ctx, params)
	}

	out, err := tool.Execute(ctx, params)
	if err != nil {
		return Result{}, err
	}
	return Result{Output: out, Tier: model.TierPrimary}, nil
}

// ToFunctionDefinitions converts tools to LLM function calling format.
func (r *ToolRegistry) ToFunctionDefinitions() []llmprovider.Tool {
	tools := make([]llmprovider.Tool, 0, len(r.tools))
	for _, name := range r.order {
		tool := r.tools[name]
		tools = append(tools, llmprovider.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return tools
}

// Tiered wraps a tool with fallback implementations. Tiers run in order and
// the first success wins; the terminal tier should be a stub that cannot
// fail, so a degraded tool still answers.
type Tiered struct {
	tiers []Tool
	l     log.Logger
}

var _ Tool = (*Tiered)(nil)

// NewTiered creates a tiered tool. All tiers must share a name and schema;
// the first tier's metadata is what the oracle sees.
func NewTiered(l log.Logger, tiers ...Tool) *Tiered {
	return &Tiered{tiers: tiers, l: l}
}

func (t *Tiered) Name() string                       { return t.tiers[0].Name() }
func (t *Tiered) Description() string                { return t.tiers[0].Description() }
func (t *Tiered) Parameters() map[string]interface{} { return t.tiers[0].Parameters() }

// Execute implements Tool; the tier label is dropped.
func (t *Tiered) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	res, err := t.ExecuteTiered(ctx, params)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

// ExecuteTiered runs tiers in order and reports which one answered.
func (t *Tiered) ExecuteTiered(ctx context.Context, params map[string]interface{}) (Result, error) {
	var lastErr error
	for i, tier := range t.tiers {
		out, err := tier.Execute(ctx, params)
		if err == nil {
			return Result{Output: out, Tier: tierLabel(tier, i)}, nil
		}
		t.l.Warnf(ctx, "tool %s tier %d failed, falling back: %v", t.Name(), i, err)
		lastErr = err
	}
	return Result{}, lastErr
}

// tierLabeler lets a tool override its positional tier label. Canned stub
// tiers implement it so degraded answers are recognizable downstream.
type tierLabeler interface {
	TierLabel() string
}

func tierLabel(tool Tool, position int) string {
	if labeled, ok := tool.(tierLabeler); ok {
		if label := labeled.TierLabel(); label != "" {
			return label
		}
	}
	if position == 0 {
		return model.TierPrimary
	}
	return model.TierSecondary
}
