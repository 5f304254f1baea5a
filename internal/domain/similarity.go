package domain

import "math"

// Cosine computes cosine similarity between two vectors: dot(a,b) / (|a|*|b|).
// Result is in [-1, 1]. Returns ErrVectorDimMismatch when lengths differ.
// If either vector has zero norm the similarity is defined as 0.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrVectorDimMismatch
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
