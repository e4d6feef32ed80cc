// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific key
// returns nil if the key is not present; absence is not an error
func (tree *Tree[K, V]) Search(key K) *Node[K, V] {
	return search(tree.cmp, key, tree.root)
}

func search[K any, V any](cmp CompareFunc[K], key K, p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}

	switch c := cmp(key, p.key); {
	case c < 0:
		return search(cmp, key, p.left)
	case c > 0:
		return search(cmp, key, p.right)
	default:
		return p
	}
}
