// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CompareFunc - three-way comparison for keys
// negative: a < b  zero: a == b  positive: a > b
type CompareFunc[K any] func(a K, b K) int

// DistanceFunc - signed distance between two keys, only consulted by
// Closest; the magnitude must be meaningful to compare
type DistanceFunc[K any] func(a K, b K) int

// Tree - type to hold the root node of a tree
type Tree[K any, V any] struct {
	root *Node[K, V]
	cmp  CompareFunc[K]
	dist DistanceFunc[K] // nil: fall back to cmp magnitude
}

// New - create an initially empty tree ordered by cmp
func New[K any, V any](cmp CompareFunc[K]) *Tree[K, V] {
	return &Tree[K, V]{
		root: nil,
		cmp:  cmp,
	}
}

// NewWithDistance - create an empty tree with a separate distance
// function for Closest
func NewWithDistance[K any, V any](cmp CompareFunc[K], dist DistanceFunc[K]) *Tree[K, V] {
	return &Tree[K, V]{
		root: nil,
		cmp:  cmp,
		dist: dist,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Height - number of levels in the tree
func (tree *Tree[K, V]) Height() int {
	return tree.root.h()
}

// Count - number of nodes currently in the tree
// counted by a full traversal, the value is not cached
func (tree *Tree[K, V]) Count() int {
	return count(tree.root)
}

func count[K any, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return 1 + count(p.left) + count(p.right)
}

// Clear - discard all nodes, leaving an empty tree
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
}
