// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/avl"
	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/book"
)

// Title - ordered index from title to catalogue position
type Title struct {
	tree *avl.Tree[string, int]
}

// NewTitle - index a catalogue by title
// a duplicated title keeps its first position, later records with
// the same title are ignored
func NewTitle(books []book.Book) *Title {
	log := logger.New("index")

	tree := avl.NewWithDistance[string, int](strings.Compare, titleDistance)
	duplicates := 0
	for i, b := range books {
		if !tree.Insert(b.Title, i) {
			duplicates += 1
		}
	}

	log.Infof("titles: %d  duplicates: %d  height: %d", tree.Count(), duplicates, tree.Height())
	return &Title{tree: tree}
}

// Lookup - exact title match
func (ix *Title) Lookup(title string) (int, bool) {
	node := ix.tree.Search(title)
	if nil == node {
		return 0, false
	}
	return node.Value(), true
}

// LookupClosest - nearest indexed title for a title that may not be
// present; false only when the index is empty
func (ix *Title) LookupClosest(title string) (string, int, bool) {
	node := ix.tree.Closest(title)
	if nil == node {
		return "", 0, false
	}
	return node.Key(), node.Value(), true
}

// Min - alphabetically first indexed title
func (ix *Title) Min() (string, int, error) {
	node, err := ix.tree.First()
	if err != nil {
		return "", 0, err
	}
	return node.Key(), node.Value(), nil
}

// Max - alphabetically last indexed title
func (ix *Title) Max() (string, int, error) {
	node, err := ix.tree.Last()
	if err != nil {
		return "", 0, err
	}
	return node.Key(), node.Value(), nil
}

// Count - number of indexed titles
func (ix *Title) Count() int {
	return ix.tree.Count()
}

// Height - number of levels in the underlying tree
func (ix *Title) Height() int {
	return ix.tree.Height()
}

// Titles - all indexed titles in ascending order
func (ix *Title) Titles() []string {
	entries := ix.tree.Inorder()
	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Key
	}
	return titles
}

// Print - ASCII rendering of the underlying tree
func (ix *Title) Print(w io.Writer) int {
	return ix.tree.Print(w, false)
}

// titleDistance - shared-suffix independent distance for the
// closest-title fallback: the total number of bytes outside the
// common prefix of the two titles, signed by their ordering, so a
// longer shared prefix means a nearer title
func titleDistance(a string, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n += 1
	}
	d := len(a) + len(b) - 2*n
	if a < b {
		return -d
	}
	return d
}
