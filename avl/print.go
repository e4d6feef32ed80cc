// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree
// returns the maximum depth of the tree
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return printTree(tree.root, w, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[K any, V any](p *Node[K, V], w io.Writer, prefix string, br branch, printData bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(p.right, w, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		fmt.Fprintf(w, "%v → %v h:%d %+2d\n", p.key, p.value, p.height, p.balanceFactor())
	} else {
		fmt.Fprintf(w, "%v\n", p.key)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(p.left, w, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
