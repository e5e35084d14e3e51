// Package store provides PostgreSQL-backed persistence for the strategy
// service, with Redis caching on the hot read paths.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "strategy-api/internal/common/errors"
	"strategy-api/internal/common/logger"
	"strategy-api/internal/models"
)

// SiteContextStore reads tenant site contexts. Lookups go through a Redis
// read-through cache because the same context is hit on every pipeline run.
type SiteContextStore struct {
	db     *sql.DB
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewSiteContextStore creates a store. The redis client may be nil, in
// which case caching is disabled.
func NewSiteContextStore(db *sql.DB, redisClient *redis.Client, ttl time.Duration, log logger.Logger) *SiteContextStore {
	return &SiteContextStore{
		db:     db,
		redis:  redisClient,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "site-context-store"}),
	}
}

func siteContextCacheKey(id int64) string {
	return fmt.Sprintf("sitecontext:%d", id)
}

// Get returns the site context with the given id, or (nil, nil) when no
// such row exists.
func (s *SiteContextStore) Get(ctx context.Context, id int64) (*models.SiteContext, error) {
	if s.redis != nil {
		if val, err := s.redis.Get(ctx, siteContextCacheKey(id)).Result(); err == nil {
			var cached models.SiteContext
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var (
		site            models.SiteContext
		contextSnapshot []byte
		toneProfile     []byte
		audienceProfile []byte
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, context_snapshot, tone_profile, audience_profile
		FROM cms_site_context
		WHERE id = $1`, id).Scan(
		&site.ID, &site.UserID,
		&contextSnapshot, &toneProfile, &audienceProfile,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewQueryExecutionFailedError("fetch_site_context", err)
	}

	// Profile columns hold tenant-edited JSON. Malformed documents degrade
	// to empty profiles rather than failing the whole pipeline run.
	decodeProfile(contextSnapshot, &site.ContextSnapshot)
	decodeProfile(toneProfile, &site.ToneProfile)
	decodeProfile(audienceProfile, &site.AudienceProfile)

	s.cache(ctx, &site)
	return &site, nil
}

func (s *SiteContextStore) cache(ctx context.Context, site *models.SiteContext) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(site)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, siteContextCacheKey(site.ID), data, s.ttl).Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to cache site context", nil)
	}
}

// Invalidate drops the cached copy of a site context. Context mutations
// arrive from another service, so callers invalidate on notification.
func (s *SiteContextStore) Invalidate(ctx context.Context, id int64) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Del(ctx, siteContextCacheKey(id)).Err()
}

func decodeProfile(raw []byte, target interface{}) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, target)
}
