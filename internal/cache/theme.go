// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"bakeshop/internal/models"
)

const (
	// themeKeyPrefix is the Valkey key prefix for every theme cache entry.
	themeKeyPrefix = "themes:"

	// genKey holds the list generation. Invalidate bumps it so a list
	// fetched before a write lands under a key nobody reads again.
	genKey = themeKeyPrefix + "gen"

	// listKeyPrefix prefixes the JSON-encoded theme list of each generation.
	listKeyPrefix = themeKeyPrefix + "list:"

	// DefaultThemeTTL is how long a cached theme list stays valid.
	DefaultThemeTTL = 5 * time.Minute

	// fillTimeout bounds a shared source fetch. It is detached from the
	// caller that started it so other waiters are not failed by its cancel.
	fillTimeout = 10 * time.Second
)

func listKey(gen int64) string {
	return listKeyPrefix + strconv.FormatInt(gen, 10)
}

// Lister is the read side of the theme store.
type Lister interface {
	List(ctx context.Context) ([]models.Theme, error)
}

// ThemeCache serves the theme list from Valkey and falls back to the
// source lister on a miss. Concurrent misses share one source call. A nil
// client turns the cache into a pass-through.
type ThemeCache struct {
	client *redis.Client
	source Lister
	ttl    time.Duration
	group  singleflight.Group
}

// NewThemeCache creates a theme cache in front of source.
func NewThemeCache(client *redis.Client, source Lister, ttl time.Duration) *ThemeCache {
	if ttl <= 0 {
		ttl = DefaultThemeTTL
	}
	return &ThemeCache{client: client, source: source, ttl: ttl}
}

// List returns the theme list. Cache failures are logged and never
// surfaced; only source errors are returned.
func (tc *ThemeCache) List(ctx context.Context) ([]models.Theme, error) {
	if tc.client == nil {
		return tc.source.List(ctx)
	}

	gen, err := tc.generation(ctx)
	if err != nil {
		slog.Warn("theme cache generation error", "error", err)
		return tc.source.List(ctx)
	}
	key := listKey(gen)

	if themes, ok := tc.get(ctx, key); ok {
		return themes, nil
	}

	v, err, shared := tc.group.Do(key, func() (any, error) {
		fillCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fillTimeout)
		defer cancel()

		themes, err := tc.source.List(fillCtx)
		if err != nil {
			return nil, err
		}
		tc.set(fillCtx, key, themes)
		return themes, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		slog.Debug("theme cache miss shared", "key", key)
	}
	return v.([]models.Theme), nil
}

// generation returns the current list generation, 0 before the first
// invalidation.
func (tc *ThemeCache) generation(ctx context.Context) (int64, error) {
	gen, err := tc.client.Get(ctx, genKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return gen, err
}

func (tc *ThemeCache) get(ctx context.Context, key string) ([]models.Theme, bool) {
	val, err := tc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("theme cache get error", "key", key, "error", err)
		return nil, false
	}

	var themes []models.Theme
	if err := json.Unmarshal(val, &themes); err != nil {
		slog.Warn("theme cache decode error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("theme cache hit", "key", key, "count", len(themes))
	return themes, true
}

func (tc *ThemeCache) set(ctx context.Context, key string, themes []models.Theme) {
	val, err := json.Marshal(themes)
	if err != nil {
		slog.Warn("theme cache encode error", "error", err)
		return
	}
	if err := tc.client.Set(ctx, key, val, tc.ttl).Err(); err != nil {
		slog.Warn("theme cache set error", "key", key, "error", err)
	}
}

// Invalidate bumps the list generation, then removes the lists of older
// generations by scanning for their prefix. Editor writes call it after
// each successful persist.
func (tc *ThemeCache) Invalidate(ctx context.Context) {
	if tc.client == nil {
		return
	}

	// Without a new generation every list is stale, the current one too.
	var current string
	gen, err := tc.client.Incr(ctx, genKey).Result()
	if err != nil {
		slog.Warn("theme cache generation bump error", "error", err)
	} else {
		current = listKey(gen)
	}

	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := tc.client.Scan(ctx, cursor, listKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("theme cache scan error", "error", err)
			return
		}
		stale := keys[:0]
		for _, k := range keys {
			if k != current {
				stale = append(stale, k)
			}
		}
		if len(stale) > 0 {
			if err := tc.client.Del(ctx, stale...).Err(); err != nil {
				slog.Warn("theme cache bulk delete error", "error", err)
			}
			deleted += len(stale)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	slog.Debug("theme cache invalidated", "generation", gen, "deleted", deleted)
}
