package cache

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// DefaultTTL applies when a cache is built without an explicit TTL.
const DefaultTTL = 10 * time.Minute

// ChartCache stores rendered PNG images by key.
type ChartCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, png []byte) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// ChartKey builds a cache key scoped to one dashboard session, e.g.
// "chart:<session>:meter:70".
func ChartKey(sessionID, kind string, parts ...interface{}) string {
	var b strings.Builder
	fmt.Fprintf(&b, "chart:%s:%s", sessionID, kind)
	for _, p := range parts {
		fmt.Fprintf(&b, ":%v", p)
	}
	return b.String()
}

// ChartService renders charts through a cache. Cache failures are logged
// and the chart is rendered anyway.
type ChartService struct {
	cache ChartCache
}

func NewChartService(cache ChartCache) *ChartService {
	if cache == nil {
		panic("chart cache is required")
	}
	return &ChartService{cache: cache}
}

// GetOrRender returns the cached image for key, calling render on a miss.
// The second result reports a cache hit.
func (s *ChartService) GetOrRender(ctx context.Context, key string, render func() ([]byte, error)) ([]byte, bool, error) {
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("chart cache read failed for %s: %v", key, err)
	} else if ok {
		return data, true, nil
	}

	data, err = render()
	if err != nil {
		return nil, false, err
	}

	if err := s.cache.Set(ctx, key, data); err != nil {
		log.Printf("chart cache write failed for %s: %v", key, err)
	}
	return data, false, nil
}

func (s *ChartService) HealthCheck(ctx context.Context) error {
	return s.cache.HealthCheck(ctx)
}
