package memo

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v3"
)

// Memoize returns a function computing the same as f, but caching every result.
// f is called at most once per argument, even for concurrent calls with the same
// argument. f must not call the memoized function recursively, as the cache is locked
// for f's argument while f computes.
func Memoize[K comparable, V any](f func(K) V) func(K) V {
	cache := xsync.NewMapOf[K, V]()
	return func(key K) V {
		v, loaded := cache.LoadOrCompute(key, func() V {
			return f(key)
		})
		if !loaded {
			tracer().Debugf("memo: computed value for %v", key)
		}
		return v
	}
}

// MemoizeLRU returns a function computing the same as f, caching the results for the
// size most recently used arguments. size has to be positive.
//
// Concurrent calls with the same, uncached argument may call f more than once.
func MemoizeLRU[K comparable, V any](size int, f func(K) V) (func(K) V, error) {
	cache, err := lru.New[K, V](size)
	if err != nil {
		return nil, errors.Wrapf(err, "memo: cannot create cache of size %d", size)
	}
	return func(key K) V {
		if v, ok := cache.Get(key); ok {
			return v
		}
		v := f(key)
		if evicted := cache.Add(key, v); evicted {
			tracer().Debugf("memo: cache full, evicted oldest value")
		}
		return v
	}, nil
}
