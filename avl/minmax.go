// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/fault"
)

// First - return the node with the lowest key value
// fails with fault.ErrEmptyTree on an empty tree
func (tree *Tree[K, V]) First() (*Node[K, V], error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	return tree.root.first(), nil
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
// fails with fault.ErrEmptyTree on an empty tree
func (tree *Tree[K, V]) Last() (*Node[K, V], error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	return tree.root.last(), nil
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	for nil != p.right {
		p = p.right
	}
	return p
}
