package domain

import "context"

// Generator forwards a composed prompt to a generative model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatResult is the outcome of a single chat exchange: the generated (or
// fallback) response plus the parks it was grounded in.
type ChatResult struct {
	Response string
	Parks    []ParkSummary
}
