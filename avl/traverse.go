// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Entry - one key-value pair produced by a traversal
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// Preorder - all entries, each node before its subtrees
func (tree *Tree[K, V]) Preorder() []Entry[K, V] {
	return preorder(tree.root, nil)
}

func preorder[K any, V any](p *Node[K, V], list []Entry[K, V]) []Entry[K, V] {
	if nil == p {
		return list
	}
	list = append(list, Entry[K, V]{Key: p.key, Value: p.value})
	list = preorder(p.left, list)
	return preorder(p.right, list)
}

// Inorder - all entries in ascending key order
func (tree *Tree[K, V]) Inorder() []Entry[K, V] {
	return inorder(tree.root, nil)
}

func inorder[K any, V any](p *Node[K, V], list []Entry[K, V]) []Entry[K, V] {
	if nil == p {
		return list
	}
	list = inorder(p.left, list)
	list = append(list, Entry[K, V]{Key: p.key, Value: p.value})
	return inorder(p.right, list)
}

// Postorder - all entries, each node after its subtrees
func (tree *Tree[K, V]) Postorder() []Entry[K, V] {
	return postorder(tree.root, nil)
}

func postorder[K any, V any](p *Node[K, V], list []Entry[K, V]) []Entry[K, V] {
	if nil == p {
		return list
	}
	list = postorder(p.left, list)
	list = postorder(p.right, list)
	return append(list, Entry[K, V]{Key: p.key, Value: p.value})
}
