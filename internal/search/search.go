// Package search implements the property search and filter engine with an
// optional result cache.
package search

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"yokeair/pkg/domain"
	"yokeair/pkg/logger"
	"yokeair/pkg/serrors"
	"yokeair/pkg/storage"

	"go.uber.org/zap"
)

const (
	// MaxLimit caps the number of results of a single search.
	MaxLimit = 200

	cacheNamespace = "search"
)

type engine struct {
	storage storage.Storage
	// cache is nil when result caching is disabled.
	cache Cache
}

// Filter validates q and converts it into the storage predicate set. Lists
// are trimmed, deduplicated and sorted so equivalent queries produce equal
// filters.
func Filter(q Query) (storage.PropertyFilter, error) {
	var v serrors.Validator
	v.Check(q.MinPrice == nil || *q.MinPrice >= 0, "minPrice", "must not be negative")
	v.Check(q.MaxPrice == nil || *q.MaxPrice >= 0, "maxPrice", "must not be negative")
	v.Check(q.MinPrice == nil || q.MaxPrice == nil || *q.MinPrice <= *q.MaxPrice,
		"minPrice", "must not exceed maxPrice")
	v.Check(q.Bedrooms == nil || *q.Bedrooms >= 0, "bedrooms", "must not be negative")
	v.Check(q.Bathrooms == nil || *q.Bathrooms >= 0, "bathrooms", "must not be negative")
	v.Check(q.Status == "" || q.Status.Valid(), "status", "unknown status %q", q.Status)
	v.Check(q.Limit <= MaxLimit, "limit", "must not exceed %d", MaxLimit)
	if err := v.Err(); err != nil {
		return storage.PropertyFilter{}, err
	}

	limit := q.Limit
	if limit == 0 {
		limit = MaxLimit
	}

	return storage.PropertyFilter{
		Boroughs:      normalizeStrings(q.Boroughs),
		Neighborhoods: normalizeStrings(q.Neighborhoods),
		MinPrice:      q.MinPrice,
		MaxPrice:      q.MaxPrice,
		Bedrooms:      q.Bedrooms,
		Bathrooms:     q.Bathrooms,
		AmenityIDs:    normalizeIDs(q.Amenities),
		FeatureIDs:    normalizeIDs(q.Features),
		Text:          strings.TrimSpace(q.Text),
		Status:        q.Status,
		Limit:         limit,
	}, nil
}

func normalizeStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}

func normalizeIDs(in []domain.TagID) []domain.TagID {
	out := slices.Clone(in)
	slices.SortFunc(out, func(a, b domain.TagID) int { return strings.Compare(a.String(), b.String()) })

	return slices.Compact(out)
}

// cacheKey derives a stable key from a normalized filter.
func cacheKey(gen int64, filter storage.PropertyFilter) (string, error) {
	b, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("could not encode filter: %w", err)
	}
	sum := md5.Sum(b)

	return fmt.Sprintf("%s:%d:%s", cacheNamespace, gen, hex.EncodeToString(sum[:])), nil
}

// Search runs q against the store. Cache failures are logged and the query
// falls through to the database.
func (e engine) Search(ctx context.Context, q Query) ([]domain.Property, error) {
	filter, err := Filter(q)
	if err != nil {
		return nil, err
	}

	var key string
	if e.cache != nil {
		key, err = e.lookupKey(ctx, filter)
		if err != nil {
			logger.Warn(ctx, "search cache unavailable", zap.Error(err))
		} else {
			var cached []domain.Property
			found, err := e.cache.Get(ctx, key, &cached)
			if err != nil {
				logger.Warn(ctx, "could not read search cache", zap.Error(err))
			} else if found {
				return cached, nil
			}
		}
	}

	found, err := e.storage.SearchProperties(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not search properties: %w", err)
	}
	res, err := e.storage.Hydrate(ctx, found...)
	if err != nil {
		return nil, fmt.Errorf("could not hydrate properties: %w", err)
	}
	if res == nil {
		res = []domain.Property{}
	}

	if key != "" {
		if err := e.cache.Set(ctx, key, res); err != nil {
			logger.Warn(ctx, "could not write search cache", zap.Error(err))
		}
	}

	return res, nil
}

func (e engine) lookupKey(ctx context.Context, filter storage.PropertyFilter) (string, error) {
	gen, err := e.cache.Generation(ctx, cacheNamespace)
	if err != nil {
		return "", err
	}

	return cacheKey(gen, filter)
}

// Invalidate orphans every cached result by bumping the cache generation.
func (e engine) Invalidate(ctx context.Context) {
	if e.cache == nil {
		return
	}
	if _, err := e.cache.Bump(ctx, cacheNamespace); err != nil {
		logger.Warn(ctx, "could not invalidate search cache", zap.Error(err))
	}
}

// New creates a search Engine. A nil cache disables result caching.
func New(storage storage.Storage, cache Cache) Engine {
	return &engine{storage: storage, cache: cache}
}
