/*
Package persistent holds immutable persistent data structures: data structures which can
be “modified” efficiently by creating new incarnations, leaving the original unchanged.

Persistent immutable data-structures offer structural sharing, which means that if two
data structures are mostly copies of each other, most of the memory they take up will be
shared between them. Sub-packages:

	list   a cons-based singly-linked list
	bst    an ordered binary search tree with amortized, global re-balancing

Immutable data structures are inherently safe for concurrent reading.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
