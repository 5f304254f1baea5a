package retrieval

import (
	"context"

	"github.com/zentrail/parkchat/internal/domain"
)

// Repository defines the storage contract for park retrieval.
type Repository interface {
	GetByCode(ctx context.Context, code string) (domain.Park, error)
	All(ctx context.Context) ([]domain.Park, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
