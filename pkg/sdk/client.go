// Package sdk provides an embedded Go client for the parkchat retrieval
// pipeline: it talks to the park store directly, without going through the
// HTTP API. Useful for ingestion jobs and batch tooling that already run
// next to the database.
//
//	client, _ := sdk.New(ctx,
//	    sdk.WithRedis([]string{"localhost:6379"}, ""),
//	    sdk.WithEmbedder(embedder),
//	    sdk.WithGenerator(generator),
//	)
//	defer client.Close()
//
//	result, _ := client.Chat(ctx, "where can I see glaciers?", "")
package sdk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zentrail/parkchat/internal/db"
	dbRedis "github.com/zentrail/parkchat/internal/db/redis"
	"github.com/zentrail/parkchat/internal/domain"
	parkrepo "github.com/zentrail/parkchat/internal/repository/park"
	chatuc "github.com/zentrail/parkchat/internal/usecase/chat"
	retrievaluc "github.com/zentrail/parkchat/internal/usecase/retrieval"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal seams for tests.
type retrieverUseCase interface {
	LoadCorpus(ctx context.Context) error
	Retrieve(ctx context.Context, query, parkCode string, k int) ([]domain.ScoredPark, error)
}

type chatUseCase interface {
	Respond(ctx context.Context, query, parkCode string) (domain.ChatResult, error)
}

type parkRepository interface {
	GetByCode(ctx context.Context, code string) (domain.Park, error)
	All(ctx context.Context) ([]domain.Park, error)
	Upsert(ctx context.Context, p *domain.Park) (bool, error)
}

// Client is the parkchat SDK entry point.
type Client struct {
	store     db.Store
	parks     parkRepository
	retriever retrieverUseCase
	chat      chatUseCase
}

// New creates a Client and connects to the database. The provided context is
// used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		genTimeout: 15 * time.Second,
		logger:     zap.NewNop(),
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("parkchat: database address required (use WithRedis)")
	}
	if cfg.queryEmbedder == nil {
		return nil, errors.New("parkchat: embedder required (use WithEmbedder)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("parkchat: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("parkchat: database not ready: %w", err)
	}

	parks := parkrepo.New(store)
	retriever := retrievaluc.New(parks,
		&embedderAdapter{inner: cfg.docEmbedder},
		&embedderAdapter{inner: cfg.queryEmbedder},
		cfg.topK, cfg.logger)

	c := &Client{
		store:     store,
		parks:     parks,
		retriever: retriever,
	}
	if cfg.generator != nil {
		c.chat = chatuc.New(retriever, &generatorAdapter{inner: cfg.generator}, cfg.genTimeout, cfg.logger)
	}
	return c, nil
}

// LoadCorpus embeds every stored park into the in-memory retrieval corpus.
// Call it once after New (and again after bulk ingestion).
func (c *Client) LoadCorpus(ctx context.Context) error {
	return c.retriever.LoadCorpus(ctx)
}

// Retrieve returns up to k parks relevant to the query. parkCode pins the
// result to one park; k <= 0 uses the configured default.
func (c *Client) Retrieve(ctx context.Context, query, parkCode string, k int) ([]ScoredPark, error) {
	ranked, err := c.retriever.Retrieve(ctx, query, parkCode, k)
	if err != nil {
		return nil, err
	}
	return scoredFromDomain(ranked), nil
}

// Chat answers a user query through the full retrieve-and-generate pipeline.
// Requires WithGenerator.
func (c *Client) Chat(ctx context.Context, query, parkCode string) (ChatResult, error) {
	if c.chat == nil {
		return ChatResult{}, errors.New("parkchat: generator not configured (use WithGenerator)")
	}
	result, err := c.chat.Respond(ctx, query, parkCode)
	if err != nil {
		return ChatResult{}, err
	}
	return chatResultFromDomain(result), nil
}

// GetPark fetches a single park by code.
func (c *Client) GetPark(ctx context.Context, code string) (Park, error) {
	p, err := c.parks.GetByCode(ctx, code)
	if err != nil {
		return Park{}, err
	}
	return parkFromDomain(p), nil
}

// UpsertPark writes a park document. Returns true if the park was created.
// The in-memory corpus is not updated until the next LoadCorpus.
func (c *Client) UpsertPark(ctx context.Context, p Park) (bool, error) {
	dp, err := p.toDomain()
	if err != nil {
		return false, fmt.Errorf("parkchat: invalid park: %w", err)
	}
	return c.parks.Upsert(ctx, &dp)
}

// Close releases the database connection.
func (c *Client) Close() {
	c.store.Close()
}

// embedderAdapter wraps the public Embedder to satisfy internal domain.Embedder.
type embedderAdapter struct {
	inner Embedder
}

func (a *embedderAdapter) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	result, err := a.inner.Embed(ctx, text)
	if err != nil {
		return domain.EmbeddingResult{}, fmt.Errorf("embed: %w", err)
	}
	return domain.EmbeddingResult{
		Embedding:    result.Embedding,
		PromptTokens: result.PromptTokens,
		TotalTokens:  result.TotalTokens,
	}, nil
}

// generatorAdapter wraps the public Generator to satisfy internal domain.Generator.
type generatorAdapter struct {
	inner Generator
}

func (a *generatorAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	return a.inner.Generate(ctx, prompt)
}
