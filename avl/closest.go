// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Closest - the node whose key is nearest to the wanted key
// returns nil only when the tree is empty
//
// Nearness is the magnitude of the distance function supplied at
// creation, or of the comparison function when no distance was
// given.  An ordering-only comparator reports every miss at the
// same distance, so in that case the result is simply the first
// node visited on the search path; see the package comment.
func (tree *Tree[K, V]) Closest(key K) *Node[K, V] {
	dist := tree.dist
	if nil == dist {
		dist = DistanceFunc[K](tree.cmp)
	}

	var closest *Node[K, V]
	p := tree.root
	for nil != p {
		if nil == closest || abs(dist(key, p.key)) < abs(dist(key, closest.key)) {
			closest = p
		}

		switch c := tree.cmp(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default: // exact match
			return p
		}
	}
	return closest
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
