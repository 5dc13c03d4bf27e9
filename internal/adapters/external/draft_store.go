package external

import (
	"context"
	"time"

	"coolassistant.app/internal/ports"
	"coolassistant.app/pkg/errors"
)

const (
	draftKeyPrefix  = "draft:"
	draftLockPrefix = "draft-lock:"
	draftLockTTL    = 30 * time.Second
)

// DraftStoreAdapter keeps survey drafts in the cache with a sliding TTL
type DraftStoreAdapter struct {
	cache *JSONCacheAdapter
	ttl   time.Duration
}

func NewDraftStoreAdapter(provider ports.CacheProvider, ttl time.Duration) (*DraftStoreAdapter, error) {
	if provider == nil {
		return nil, errors.NewConfigurationError("draft store needs a cache provider", nil)
	}
	if ttl <= 0 {
		return nil, errors.NewConfigurationError("draft TTL must be positive", nil)
	}
	return &DraftStoreAdapter{cache: NewJSONCacheAdapter(provider), ttl: ttl}, nil
}

func (s *DraftStoreAdapter) Get(ctx context.Context, id string) (*ports.DraftData, error) {
	if id == "" {
		return nil, errors.NewValidationError("draft id cannot be empty")
	}

	var draft ports.DraftData
	if err := s.cache.GetJSON(ctx, draftKeyPrefix+id, &draft); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("draft not found or expired")
		}
		return nil, err
	}
	return &draft, nil
}

// Save writes the draft and restarts its expiry
func (s *DraftStoreAdapter) Save(ctx context.Context, draft *ports.DraftData) error {
	if draft == nil || draft.ID == "" {
		return errors.NewValidationError("draft id cannot be empty")
	}
	return s.cache.SetJSON(ctx, draftKeyPrefix+draft.ID, draft, s.ttl)
}

func (s *DraftStoreAdapter) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("draft id cannot be empty")
	}
	return s.cache.provider.Delete(ctx, draftKeyPrefix+id)
}

func (s *DraftStoreAdapter) Lock(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, errors.NewValidationError("draft id cannot be empty")
	}
	return s.cache.provider.SetNX(ctx, draftLockPrefix+id, []byte("1"), draftLockTTL)
}

func (s *DraftStoreAdapter) Unlock(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("draft id cannot be empty")
	}
	return s.cache.provider.Delete(ctx, draftLockPrefix+id)
}
