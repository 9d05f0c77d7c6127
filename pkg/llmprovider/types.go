package llmprovider

// Request is a provider-agnostic generation request. Adapters translate
// it into each provider's wire format.
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
}

// Message is one turn of a conversation.
type Message struct {
	Role  string // "user", "assistant", "system"
	Parts []Part
}

// Part is a message fragment: text, an outgoing function call, or the
// result of one.
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// Tool declares a function the model may call.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{} // JSON Schema
}

// FunctionCall is the model asking for a function to be executed.
type FunctionCall struct {
	Name string
	Args map[string]interface{}
}

// FunctionResponse carries a function result back to the model.
type FunctionResponse struct {
	Name     string
	Response interface{}
}

// Response is a normalized generation response. ProviderName records
// which tier actually answered.
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption for one generation.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
