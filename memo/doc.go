/*
Package memo memoizes functions.

Memoize wraps a function of a comparable argument with an unbounded cache, computing
every result at most once:

	fib := memo.Memoize(slowFib)
	fib(40)   // computed
	fib(40)   // cached

MemoizeLRU bounds the cache, evicting the least recently used results.

Memoized functions are safe for concurrent use. The wrapped function has to be pure,
otherwise results depend on the order of calls.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package memo

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.memo'.
func tracer() tracing.Trace {
	return tracing.Select("fp.memo")
}
