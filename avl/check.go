// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"os"
)

// Check - verify the cached heights, the balance factors and the
// strict key ordering over the whole tree
func (tree *Tree[K, V]) Check() bool {
	if _, ok := checkHeights(tree.root); !ok {
		return false
	}

	// keys must be strictly increasing inorder
	entries := tree.Inorder()
	for i := 1; i < len(entries); i += 1 {
		if tree.cmp(entries[i-1].Key, entries[i].Key) >= 0 {
			fmt.Fprintf(os.Stderr, "order fail between: %v and: %v\n", entries[i-1].Key, entries[i].Key)
			return false
		}
	}
	return true
}

// internal: consistency checker, returns the recomputed height
func checkHeights[K any, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		fmt.Fprintf(os.Stderr, "height fail at node: %v   actual: %d  expected: %d\n", p.key, p.height, h)
		return 0, false
	}
	if bf := rh - lh; bf < -1 || bf > 1 {
		fmt.Fprintf(os.Stderr, "balance fail at node: %v   factor: %d\n", p.key, bf)
		return 0, false
	}
	return h, true
}
