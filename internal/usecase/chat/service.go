package chat

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zentrail/parkchat/internal/domain"
	"github.com/zentrail/parkchat/internal/metrics"
)

// Service orchestrates a chat turn: retrieve relevant parks, build the
// ranger-persona prompt, generate a response. Generation failures degrade to a
// fixed fallback, never to an error.
type Service struct {
	retriever Retriever
	generator Generator

	genTimeout time.Duration
	logger     *zap.Logger
}

// New creates a chat service. genTimeout bounds each generation call.
func New(retriever Retriever, generator Generator, genTimeout time.Duration, logger *zap.Logger) *Service {
	if genTimeout <= 0 {
		genTimeout = 15 * time.Second
	}
	return &Service{
		retriever:  retriever,
		generator:  generator,
		genTimeout: genTimeout,
		logger:     logger,
	}
}

// Respond answers a user query, optionally pinned to one park by code.
//
// Retrieval errors propagate to the caller. An empty retrieval result
// short-circuits to ResponseNotFound without touching the generator.
func (s *Service) Respond(ctx context.Context, query, parkCode string) (domain.ChatResult, error) {
	ranked, err := s.retriever.Retrieve(ctx, query, parkCode, 0)
	if err != nil {
		return domain.ChatResult{}, fmt.Errorf("retrieve parks: %w", err)
	}

	if len(ranked) == 0 {
		return domain.ChatResult{Response: ResponseNotFound}, nil
	}

	parks := make([]domain.Park, 0, len(ranked))
	summaries := make([]domain.ParkSummary, 0, len(ranked))
	for _, r := range ranked {
		parks = append(parks, r.Park())
		summaries = append(summaries, r.Park().Summary())
	}

	var prompt string
	if parkCode != "" {
		prompt = singleParkPrompt(query, parks[0])
	} else {
		prompt = generalPrompt(query, parks)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	response, err := s.generator.Generate(genCtx, prompt)
	if err != nil {
		s.logger.Warn("Generation failed, using fallback response",
			zap.String("park_code", parkCode), zap.Error(err))
		metrics.GenerationFallbacksTotal.Inc()
		response = ResponseFallback
	}

	return domain.ChatResult{Response: response, Parks: summaries}, nil
}
