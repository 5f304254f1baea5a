package sdk

import (
	"time"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	password string

	docEmbedder   Embedder
	queryEmbedder Embedder
	generator     Generator

	topK       int
	genTimeout time.Duration
	logger     *zap.Logger
}

// WithRedis connects to the given Redis addresses.
func WithRedis(addrs []string, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = addrs
		c.password = password
	})
}

// WithEmbedder sets the embedder used for both park documents and queries.
func WithEmbedder(e Embedder) Option {
	return optionFunc(func(c *clientConfig) {
		c.docEmbedder = e
		c.queryEmbedder = e
	})
}

// WithEmbedders sets separately instructed document and query embedders.
func WithEmbedders(doc, query Embedder) Option {
	return optionFunc(func(c *clientConfig) {
		c.docEmbedder = doc
		c.queryEmbedder = query
	})
}

// WithGenerator sets the response generator. Without one, Chat is unavailable
// but Retrieve still works.
func WithGenerator(g Generator) Option {
	return optionFunc(func(c *clientConfig) { c.generator = g })
}

// WithTopK sets the default number of parks retrieved per query.
func WithTopK(k int) Option {
	return optionFunc(func(c *clientConfig) { c.topK = k })
}

// WithGenerationTimeout bounds each generation call.
func WithGenerationTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) { c.genTimeout = d })
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) { c.logger = l })
}
