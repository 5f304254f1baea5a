package domain

import (
	"fmt"
	"sort"
)

// Candidate pairs a park with its precomputed document embedding.
type Candidate struct {
	Park   Park
	Vector []float32
}

// ScoredPark is a park with its relevance score.
type ScoredPark struct {
	park  Park
	score float64
}

// NewScoredPark creates a scored retrieval hit.
func NewScoredPark(park Park, score float64) ScoredPark {
	return ScoredPark{park: park, score: score}
}

// Park returns the scored park.
func (s ScoredPark) Park() Park { return s.park }

// Score returns the cosine similarity score.
func (s ScoredPark) Score() float64 { return s.score }

// TopK scores every candidate against the query vector and returns the k best
// by descending similarity. Ties keep the original candidate order (stable
// sort). Returns at most min(k, len(candidates)) results.
//
// Full O(n) scan per query. Fine for the corpus size at hand (hundreds of
// parks); an ANN index would slot in behind the same contract if that changes.
func TopK(query []float32, candidates []Candidate, k int) ([]ScoredPark, error) {
	if k <= 0 || len(candidates) == 0 {
		return nil, nil
	}

	scored := make([]ScoredPark, 0, len(candidates))
	for i, c := range candidates {
		score, err := Cosine(query, c.Vector)
		if err != nil {
			return nil, fmt.Errorf("score candidate %d (%s): %w", i, c.Park.Code(), err)
		}
		scored = append(scored, NewScoredPark(c.Park, score))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}
