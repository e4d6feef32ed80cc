// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove a specific key from the tree
// returns true if a node was removed, false if the key was absent
func (tree *Tree[K, V]) Delete(key K) bool {
	root, removed := delete(tree.cmp, key, tree.root)
	tree.root = root
	return removed
}

// internal delete routine
// returns the node occupying this position after rebalancing
func delete[K any, V any](cmp CompareFunc[K], key K, p *Node[K, V]) (*Node[K, V], bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch c := cmp(key, p.key); {
	case c < 0:
		p.left, removed = delete(cmp, key, p.left)
	case c > 0:
		p.right, removed = delete(cmp, key, p.right)
	default: // found: delete p
		if nil == p.left {
			// zero or one child: splice the remainder into place
			return p.right, true
		} else if nil == p.right {
			return p.left, true
		}
		// two children: take over the key and value of the in-order
		// predecessor, then delete the predecessor from the left
		// subtree; that node has at most one child so the recursion
		// terminates one level down
		pred := p.left.last()
		p.key = pred.key
		p.value = pred.value
		p.left, _ = delete(cmp, pred.key, p.left)
		removed = true
	}

	p.setHeight()
	return p.rebalance(), removed
}
