package health

import "context"

// DBPinger checks document store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// EmbeddingChecker checks embedding provider availability.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}

// CorpusSizer reports how many parks are loaded in the retrieval corpus.
type CorpusSizer interface {
	CorpusSize() int
}
