package sdk

import "context"

// Embedder converts text to vector embeddings. Implementations must produce
// vectors of a fixed dimensionality for the lifetime of the instance.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// EmbeddingResult carries the embedding vector and token counts.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// Generator phrases a chat response from a composed prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
