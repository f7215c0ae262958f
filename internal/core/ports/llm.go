package ports

import "context"

// Chat roles on the completion wire format.
const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one entry of a chat-completion request.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatParams are the sampling parameters for a single completion call.
// A zero Model falls back to the client's configured default.
type ChatParams struct {
	Model       string
	Temperature float64
	MaxTokens   int
	TopP        float64
	Stop        []string
}

// LLMClient is a thin adapter over a chat-completion service. It returns the
// assistant text of the first choice, or an error on any transport or API
// failure.
type LLMClient interface {
	Chat(ctx context.Context, messages []ChatMessage, params ChatParams) (string, error)
}

// Embedder converts a batch of texts into fixed-dimension vectors. All
// vectors share the same dimensionality for the process lifetime.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
