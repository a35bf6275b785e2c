// Package cache provides a small generic LRU cache.
//
//	masks := cache.New[key, *Mask](64)
//	masks.Set(k, m)
//	m, ok := masks.Get(k)
//
// A Cache is safe for concurrent use and must not be copied after
// creation.
package cache
