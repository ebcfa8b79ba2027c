package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/amirphl/super-niche-selector/utils"
	"github.com/redis/go-redis/v9"
)

// CachedDirectory keeps directory lists in Redis. A nil client makes it a pass-through.
// Cache failures are logged and never fail the lookup.
type CachedDirectory struct {
	next   Directory
	rc     *redis.Client
	prefix string
	ttl    time.Duration
}

func NewCachedDirectory(next Directory, rc *redis.Client, prefix string, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{
		next:   next,
		rc:     rc,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (d *CachedDirectory) Countries(ctx context.Context) ([]string, error) {
	return d.cached(ctx, utils.DirectoryCountriesCacheKey, d.next.Countries)
}

func (d *CachedDirectory) Languages(ctx context.Context) ([]string, error) {
	return d.cached(ctx, utils.DirectoryLanguagesCacheKey, d.next.Languages)
}

func (d *CachedDirectory) cached(ctx context.Context, key string, load func(context.Context) ([]string, error)) ([]string, error) {
	if d.rc == nil {
		return load(ctx)
	}

	cacheKey := d.prefix + key
	if bs, err := d.rc.Get(ctx, cacheKey).Bytes(); err == nil && len(bs) > 0 {
		var out []string
		if err := json.Unmarshal(bs, &out); err == nil {
			log.Printf(`{"level":"debug","msg":"directory cache hit","key":%q,"entries":%d}`, cacheKey, len(out))
			return out, nil
		}
		log.Printf(`{"level":"warn","msg":"discarding malformed directory cache entry","key":%q}`, cacheKey)
	} else if err != nil && err != redis.Nil {
		log.Printf(`{"level":"warn","msg":"directory cache read failed","key":%q,"error":%q}`, cacheKey, err.Error())
	}

	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if bs, err := json.Marshal(out); err == nil {
		if err := d.rc.Set(ctx, cacheKey, bs, d.ttl).Err(); err != nil {
			log.Printf(`{"level":"warn","msg":"directory cache write failed","key":%q,"error":%q}`, cacheKey, err.Error())
		}
	}
	return out, nil
}
