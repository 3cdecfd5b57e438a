// Package cache provides a generic, size-bounded LRU cache.
//
//	c := cache.New[string, int](100)
//	c.Put("key", 42)
//	value, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after
// creation.
package cache
