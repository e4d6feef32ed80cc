// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
// returns true if a node was added, false if the key was already
// present; an existing node keeps its stored value untouched
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	root, added := insert(tree.cmp, key, value, tree.root)
	tree.root = root
	return added
}

// internal routine for insert
// returns the node occupying this position after rebalancing
func insert[K any, V any](cmp CompareFunc[K], key K, value V, p *Node[K, V]) (*Node[K, V], bool) {
	if nil == p { // insert new node
		return newNode(key, value), true
	}

	added := false
	switch c := cmp(key, p.key); {
	case c < 0:
		p.left, added = insert(cmp, key, value, p.left)
	case c > 0:
		p.right, added = insert(cmp, key, value, p.right)
	default: // key already present: first write wins
		return p, false
	}

	p.setHeight()
	return p.rebalance(), added
}
