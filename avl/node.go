// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
// each node owns its two subtrees outright, there is no parent link
type Node[K any, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // 1 + max height of the subtrees
}

// allocate a new leaf node
func newNode[K any, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		value:  value,
		height: 1,
	}
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// SetValue - overwrite the value of a node in place
// this is the only way to change a stored value, since insert
// will not touch an existing node
func (p *Node[K, V]) SetValue(value V) {
	p.value = value
}

// internal: height of a possibly absent subtree
func (p *Node[K, V]) h() int {
	if nil == p {
		return 0
	}
	return p.height
}

// internal: refresh the cached height from the children
func (p *Node[K, V]) setHeight() {
	lh := p.left.h()
	rh := p.right.h()
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// internal: right height minus left height
func (p *Node[K, V]) balanceFactor() int {
	if nil == p {
		return 0
	}
	return p.right.h() - p.left.h()
}
