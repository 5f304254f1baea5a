package domain

import (
	"errors"
	"testing"
)

func testPark(t *testing.T, code string) Park {
	t.Helper()
	p, err := NewPark(code, "Park "+code, "desc", "CA", "National Park", "", nil, nil)
	if err != nil {
		t.Fatalf("NewPark(%s): %v", code, err)
	}
	return p
}

func TestTopK_SortedDescending(t *testing.T) {
	query := []float32{1, 0}
	candidates := []Candidate{
		{Park: testPark(t, "low"), Vector: []float32{0, 1}},
		{Park: testPark(t, "high"), Vector: []float32{1, 0}},
		{Park: testPark(t, "mid"), Vector: []float32{1, 1}},
	}

	results, err := TopK(query, candidates, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score() > results[i-1].Score() {
			t.Errorf("results not sorted descending: [%d]=%f > [%d]=%f",
				i, results[i].Score(), i-1, results[i-1].Score())
		}
	}
	if results[0].Park().Code() != "high" {
		t.Errorf("expected 'high' first, got %s", results[0].Park().Code())
	}
	if results[2].Park().Code() != "low" {
		t.Errorf("expected 'low' last, got %s", results[2].Park().Code())
	}
}

func TestTopK_NeverMoreThanAvailable(t *testing.T) {
	query := []float32{1, 0}
	candidates := []Candidate{
		{Park: testPark(t, "a"), Vector: []float32{1, 0}},
		{Park: testPark(t, "b"), Vector: []float32{0, 1}},
	}

	results, err := TopK(query, candidates, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results (all available), got %d", len(results))
	}
}

func TestTopK_TruncatesToK(t *testing.T) {
	query := []float32{1, 0}
	candidates := []Candidate{
		{Park: testPark(t, "a"), Vector: []float32{1, 0}},
		{Park: testPark(t, "b"), Vector: []float32{1, 1}},
		{Park: testPark(t, "c"), Vector: []float32{0, 1}},
	}

	results, err := TopK(query, candidates, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

func TestTopK_StableOnTies(t *testing.T) {
	query := []float32{1, 0}
	// Identical vectors, identical scores: input order must be preserved.
	vec := []float32{1, 1}
	candidates := []Candidate{
		{Park: testPark(t, "first"), Vector: vec},
		{Park: testPark(t, "second"), Vector: vec},
		{Park: testPark(t, "third"), Vector: vec},
	}

	results, err := TopK(query, candidates, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if results[i].Park().Code() != w {
			t.Errorf("tie order broken at %d: expected %s, got %s", i, w, results[i].Park().Code())
		}
	}
}

func TestTopK_ZeroK(t *testing.T) {
	candidates := []Candidate{
		{Park: testPark(t, "a"), Vector: []float32{1}},
	}
	results, err := TopK([]float32{1}, candidates, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results for k=0, got %d", len(results))
	}
}

func TestTopK_EmptyCandidates(t *testing.T) {
	results, err := TopK([]float32{1}, nil, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestTopK_DimensionMismatch(t *testing.T) {
	candidates := []Candidate{
		{Park: testPark(t, "a"), Vector: []float32{1, 2, 3}},
	}
	_, err := TopK([]float32{1, 2}, candidates, 3)
	if err == nil {
		t.Fatal("expected error for mismatched dimensions")
	}
	if !errors.Is(err, ErrVectorDimMismatch) {
		t.Errorf("expected ErrVectorDimMismatch, got %v", err)
	}
}
