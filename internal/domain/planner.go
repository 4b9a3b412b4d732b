package domain

type MessageRole string

const (
	DefaultPlannerModel string      = "gpt-4o-mini"
	RoleSystem          MessageRole = "system"
	RoleUser            MessageRole = "user"
)

type ChatMessage struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// ChatPlugin enables a provider-side tool (web search) for the request.
type ChatPlugin struct {
	ID string `json:"id"`
}

type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Plugins  []ChatPlugin  `json:"plugins,omitempty"`
}

// ChatResponse matches the root JSON object of an OpenAI-style
// chat-completions reply.
type ChatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Model   string   `json:"model"`
	Usage   Usage    `json:"usage"`
	Created int64    `json:"created"`
	Choices []Choice `json:"choices"`
}

// Usage — token accounting.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Choice — one reply variant (normally a single one, index=0).
type Choice struct {
	Index        int             `json:"index"`
	Message      MessageResponse `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

// MessageResponse — the assistant reply body itself.
type MessageResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
