// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single rotation to the left
// the right child becomes the root of this subtree
func (p *Node[K, V]) rotateLeft() *Node[K, V] {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	p.setHeight()
	p1.setHeight()

	return p1
}

// single rotation to the right
// the left child becomes the root of this subtree
func (p *Node[K, V]) rotateRight() *Node[K, V] {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	p.setHeight()
	p1.setHeight()

	return p1
}

// restore the balance invariant at p after one insert or delete
// lower in the subtree, returning the node that now occupies this
// position; the caller re-links its own child slot with the result
//
// the child balance factor tie-breaks (>= 0 and <= 0) select the
// single rotation when the child is level, matching the canonical
// AVL rotation choice
func (p *Node[K, V]) rebalance() *Node[K, V] {
	switch p.balanceFactor() {
	case 2: // right heavy
		if p.right.balanceFactor() >= 0 {
			return p.rotateLeft()
		}
		// double RL rotation
		p.right = p.right.rotateRight()
		return p.rotateLeft()

	case -2: // left heavy
		if p.left.balanceFactor() <= 0 {
			return p.rotateRight()
		}
		// double LR rotation
		p.left = p.left.rotateLeft()
		return p.rotateRight()

	default:
		return p
	}
}
