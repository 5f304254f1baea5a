package retrieval

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/zentrail/parkchat/internal/domain"
)

// entry is one park in the in-memory corpus: the park plus the embedding of
// its rendered text.
type entry struct {
	park   domain.Park
	vector []float32
}

// Service retrieves the parks most relevant to a query. The corpus of park
// embeddings is loaded once via LoadCorpus and held in memory; queries only
// embed the query text and rank against the loaded vectors.
type Service struct {
	repo       Repository
	docEmbed   Embedder
	queryEmbed Embedder

	defaultTopK int
	logger      *zap.Logger

	mu     sync.RWMutex
	corpus []entry
}

// New creates a retrieval service. Documents and queries can use differently
// instructed embedders as long as both produce the same dimensionality.
// defaultTopK is used when a caller passes k <= 0.
func New(repo Repository, docEmbed, queryEmbed Embedder, defaultTopK int, logger *zap.Logger) *Service {
	if defaultTopK <= 0 {
		defaultTopK = 3
	}
	return &Service{
		repo:        repo,
		docEmbed:    docEmbed,
		queryEmbed:  queryEmbed,
		defaultTopK: defaultTopK,
		logger:      logger,
	}
}

// LoadCorpus reads every park from the repository, embeds its rendered text,
// and replaces the in-memory corpus. Must succeed before Retrieve can return
// semantic results.
func (s *Service) LoadCorpus(ctx context.Context) error {
	parks, err := s.repo.All(ctx)
	if err != nil {
		return fmt.Errorf("load parks: %w", err)
	}

	corpus := make([]entry, 0, len(parks))
	for i := range parks {
		text := domain.ParkText(parks[i])

		result, err := s.docEmbed.Embed(ctx, text)
		if err != nil {
			return fmt.Errorf("embed park %q: %w", parks[i].Code(), err)
		}

		corpus = append(corpus, entry{park: parks[i], vector: result.Embedding})
	}

	s.mu.Lock()
	s.corpus = corpus
	s.mu.Unlock()

	s.logger.Info("Park corpus loaded", zap.Int("parks", len(corpus)))
	return nil
}

// CorpusSize returns the number of parks currently in the corpus.
func (s *Service) CorpusSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.corpus)
}

// Retrieve returns up to k parks relevant to the query, ranked by similarity.
//
// When parkCode is non-empty the embedding path is bypassed entirely: the park
// is looked up by code and returned alone with score 1.0. An unknown code
// yields an empty result, not an error.
func (s *Service) Retrieve(ctx context.Context, query, parkCode string, k int) ([]domain.ScoredPark, error) {
	if k <= 0 {
		k = s.defaultTopK
	}

	if parkCode != "" {
		return s.retrieveExact(ctx, parkCode)
	}

	return s.retrieveSemantic(ctx, query, k)
}

func (s *Service) retrieveExact(ctx context.Context, parkCode string) ([]domain.ScoredPark, error) {
	p, err := s.repo.GetByCode(ctx, parkCode)
	if err != nil {
		if errors.Is(err, domain.ErrParkNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get park %q: %w", parkCode, err)
	}

	return []domain.ScoredPark{domain.NewScoredPark(p, 1.0)}, nil
}

func (s *Service) retrieveSemantic(ctx context.Context, query string, k int) ([]domain.ScoredPark, error) {
	result, err := s.queryEmbed.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	s.mu.RLock()
	candidates := make([]domain.Candidate, len(s.corpus))
	for i, e := range s.corpus {
		candidates[i] = domain.Candidate{Park: e.park, Vector: e.vector}
	}
	s.mu.RUnlock()

	ranked, err := domain.TopK(result.Embedding, candidates, k)
	if err != nil {
		return nil, fmt.Errorf("rank parks: %w", err)
	}
	return ranked, nil
}
