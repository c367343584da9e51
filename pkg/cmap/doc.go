// Package cmap provides a string-keyed concurrent map for Numera.
//
// Keys are spread over a power-of-two number of shards by their murmur3
// hash; each shard has its own RWMutex. The HTTP rate limiter keeps one
// token bucket per client address in a Map.
//
// Usage:
//
//	m := cmap.New[*rate.Limiter]()
//	lim := m.GetOrCompute(ip, func() *rate.Limiter { return rate.NewLimiter(10, 10) })
package cmap
