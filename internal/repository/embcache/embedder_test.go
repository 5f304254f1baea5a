package embcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/zentrail/parkchat/internal/db"
	"github.com/zentrail/parkchat/internal/domain"
)

type mockKV struct {
	data     map[string][]byte
	lastTTL  time.Duration
	getErr   error
	setErr   error
	setCalls int
	ttlCalls int
}

func newMockKV() *mockKV {
	return &mockKV{data: map[string][]byte{}}
}

func (m *mockKV) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockKV) Set(_ context.Context, key string, value []byte) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *mockKV) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.ttlCalls++
	m.lastTTL = ttl
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

type mockEmbedder struct {
	vec   []float32
	err   error
	calls int
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	m.calls++
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Embedding: m.vec, TotalTokens: 7}, nil
}

func TestEmbed_MissThenHit(t *testing.T) {
	kv := newMockKV()
	inner := &mockEmbedder{vec: []float32{0.1, 0.2, 0.3}}
	c := New(inner, kv, 0, nil, zap.NewNop())

	first, err := c.Embed(context.Background(), "some park text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 inner call, got %d", inner.calls)
	}
	if first.TotalTokens != 7 {
		t.Errorf("miss should report inner token usage, got %d", first.TotalTokens)
	}

	second, err := c.Embed(context.Background(), "some park text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("expected cache hit, inner called %d times", inner.calls)
	}
	if second.TotalTokens != 0 {
		t.Errorf("cache hit should report zero tokens, got %d", second.TotalTokens)
	}
	if len(second.Embedding) != 3 || second.Embedding[0] != 0.1 {
		t.Errorf("cached vector mismatch: %v", second.Embedding)
	}
}

func TestEmbed_DistinctTextsDistinctKeys(t *testing.T) {
	kv := newMockKV()
	inner := &mockEmbedder{vec: []float32{1}}
	c := New(inner, kv, 0, nil, zap.NewNop())

	_, _ = c.Embed(context.Background(), "text a")
	_, _ = c.Embed(context.Background(), "text b")

	if inner.calls != 2 {
		t.Errorf("expected 2 inner calls for distinct texts, got %d", inner.calls)
	}
	if len(kv.data) != 2 {
		t.Errorf("expected 2 cache entries, got %d", len(kv.data))
	}
}

func TestEmbed_TTLUsedWhenConfigured(t *testing.T) {
	kv := newMockKV()
	inner := &mockEmbedder{vec: []float32{1}}
	c := New(inner, kv, 24*time.Hour, nil, zap.NewNop())

	_, _ = c.Embed(context.Background(), "text")

	if kv.ttlCalls != 1 || kv.setCalls != 0 {
		t.Errorf("expected SetWithTTL, got ttlCalls=%d setCalls=%d", kv.ttlCalls, kv.setCalls)
	}
	if kv.lastTTL != 24*time.Hour {
		t.Errorf("unexpected ttl %v", kv.lastTTL)
	}
}

func TestEmbed_StoreFailureFallsThrough(t *testing.T) {
	kv := newMockKV()
	kv.getErr = errors.New("connection refused")
	kv.setErr = errors.New("connection refused")
	inner := &mockEmbedder{vec: []float32{1}}
	c := New(inner, kv, 0, nil, zap.NewNop())

	res, err := c.Embed(context.Background(), "text")
	if err != nil {
		t.Fatalf("cache failure must not fail the embed: %v", err)
	}
	if len(res.Embedding) != 1 {
		t.Errorf("expected inner embedding, got %v", res.Embedding)
	}
}

func TestEmbed_InnerErrorPropagates(t *testing.T) {
	kv := newMockKV()
	inner := &mockEmbedder{err: domain.ErrEmbeddingProviderError}
	c := New(inner, kv, 0, nil, zap.NewNop())

	_, err := c.Embed(context.Background(), "text")
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Errorf("expected provider error, got %v", err)
	}
}

func TestVectorRoundTrip(t *testing.T) {
	in := []float32{0.25, -1.5, 3.14159, 0}
	out, err := bytesToVector(vectorToCacheBytes(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("length mismatch: %d vs %d", len(out), len(in))
	}
	for i := range in {
		if in[i] != out[i] {
			t.Errorf("element %d: %f != %f", i, in[i], out[i])
		}
	}
}

func TestBytesToVector_InvalidLength(t *testing.T) {
	if _, err := bytesToVector([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for data not multiple of 4")
	}
}

type mockCheckedEmbedder struct {
	mockEmbedder
	healthErr error
}

func (m *mockCheckedEmbedder) HealthCheck(_ context.Context) error { return m.healthErr }

func TestHealthCheck_ForwardsProviderFailure(t *testing.T) {
	inner := &mockCheckedEmbedder{healthErr: errors.New("provider unreachable")}
	c := New(inner, newMockKV(), 0, nil, zap.NewNop())

	if err := c.HealthCheck(context.Background()); !errors.Is(err, inner.healthErr) {
		t.Errorf("expected provider failure to surface, got %v", err)
	}
}

func TestHealthCheck_ForwardsThroughInstructionDecorator(t *testing.T) {
	inner := &mockCheckedEmbedder{healthErr: errors.New("provider unreachable")}
	chain := domain.NewInstructionEmbedder(
		New(inner, newMockKV(), 0, nil, zap.NewNop()), "query: ")

	if err := chain.HealthCheck(context.Background()); !errors.Is(err, inner.healthErr) {
		t.Errorf("expected provider failure through full chain, got %v", err)
	}
}

func TestHealthCheck_NoopWhenInnerUnchecked(t *testing.T) {
	c := New(&mockEmbedder{vec: []float32{1}}, newMockKV(), 0, nil, zap.NewNop())

	if err := c.HealthCheck(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
