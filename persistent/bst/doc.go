/*
Package bst implements a persistent (immutable) binary search tree with amortized,
global re-balancing.

Every “modification” of a tree creates a new incarnation, sharing all sub-trees which are
not on the path from the root to the modified node:

	tree := bst.Immutable[int]()
	t1 := tree.Insert(5).Insert(12)
	t2 := t1.Remove(5)       // t1 is unchanged

Trees do not re-balance on every insertion. Instead, after an insertion the tree checks
whether

	height > factor × ⌊log₂(size)⌋

with a default factor of 100, and if so, rebuilds itself completely (see Balance). Long runs of
ordered insertions therefore produce a chain-like tree, until the threshold is crossed.
Remove and Merge never re-balance; clients doing a lot of those should call Balance
themselves.

Immutable trees are inherently safe for concurrent reading.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.bst'.
func tracer() tracing.Trace {
	return tracing.Select("fp.bst")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(msg)
	}
}
