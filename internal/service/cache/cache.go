// Package cache provides byte-oriented caching for upstream payloads,
// either in-process or backed by Redis.
package cache

import "time"

// BytesCache stores raw payloads with a TTL.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
