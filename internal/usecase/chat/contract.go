package chat

import (
	"context"

	"github.com/zentrail/parkchat/internal/domain"
)

// Retriever finds the parks most relevant to a query.
type Retriever interface {
	Retrieve(ctx context.Context, query, parkCode string, k int) ([]domain.ScoredPark, error)
}

// Generator produces a natural-language response from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
