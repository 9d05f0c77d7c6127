package model

// Tool names known to the router and the agent registry.
const (
	ToolSearchNotes = "search_notes"
	ToolSearchFiles = "search_files"
	ToolGetWeather  = "get_weather"
	ToolDraftEmail  = "draft_email"
	ToolCreateTodo  = "create_todo"
)

// Capability is a static fact: a tool name and the capability class it
// provides. Routing rules do not consult capabilities today; they exist
// for declaration and as the hook point for policy checks.
type Capability struct {
	Tool string `json:"tool"`
	Tag  string `json:"tag"` // e.g. "search(notes)", "info(weather)"
}

// DefaultCapabilities declares the built-in tool set.
func DefaultCapabilities() []Capability {
	return []Capability{
		{Tool: ToolSearchNotes, Tag: "search(notes)"},
		{Tool: ToolSearchFiles, Tag: "search(files)"},
		{Tool: ToolGetWeather, Tag: "info(weather)"},
		{Tool: ToolDraftEmail, Tag: "compose(email)"},
		{Tool: ToolCreateTodo, Tag: "create(todo)"},
	}
}
