package park

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/zentrail/parkchat/internal/db"
	"github.com/zentrail/parkchat/internal/domain"
)

var keyPrefix = domain.KeyPrefix + "park:"

// store is the consumer interface for park documents (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements park document access over RedisJSON.
type Repo struct {
	store store
}

// New creates a park repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// GetByCode returns the park with the given code.
// Returns domain.ErrParkNotFound when no such park exists.
func (r *Repo) GetByCode(ctx context.Context, code string) (domain.Park, error) {
	key := parkKey(code)
	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.Park{}, domain.ErrParkNotFound
		}
		return domain.Park{}, fmt.Errorf("json.get %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}
	return parseJSONGetResult(code, raw)
}

// All returns every stored park. Used for the bulk corpus load at startup.
func (r *Repo) All(ctx context.Context) ([]domain.Park, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan parks: %w: %w", domain.ErrStoreUnavailable, err)
	}

	parks := make([]domain.Park, 0, len(keys))
	for _, key := range keys {
		raw, err := r.store.JSONGet(ctx, key, "$")
		if err != nil {
			if errors.Is(err, db.ErrKeyNotFound) {
				// Key expired between SCAN and JSON.GET
				continue
			}
			return nil, fmt.Errorf("json.get %s: %w: %w", key, domain.ErrStoreUnavailable, err)
		}
		p, err := parseJSONGetResult(extractCode(key), raw)
		if err != nil {
			return nil, err
		}
		parks = append(parks, p)
	}

	return parks, nil
}

// Upsert creates or updates a park document. Returns true if created.
func (r *Repo) Upsert(ctx context.Context, p *domain.Park) (bool, error) {
	key := parkKey(p.Code())
	data, err := json.Marshal(docFromDomain(p))
	if err != nil {
		return false, fmt.Errorf("marshal park: %w", err)
	}

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}

	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return false, fmt.Errorf("json.set %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}

	return !exists, nil
}

// parseJSONGetResult unwraps the array JSON.GET returns for the "$" path.
func parseJSONGetResult(code string, raw []byte) (domain.Park, error) {
	var docs []parkDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return domain.Park{}, fmt.Errorf("unmarshal park %s: %w", code, err)
	}
	if len(docs) == 0 {
		return domain.Park{}, domain.ErrParkNotFound
	}
	doc := docs[0]
	if doc.ParkCode == "" {
		doc.ParkCode = code
	}
	return doc.toDomain(), nil
}

func parkKey(code string) string {
	return keyPrefix + strings.ToLower(code)
}

func extractCode(key string) string {
	return strings.TrimPrefix(key, keyPrefix)
}
