// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/avl"
	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/book"
)

// Genre - ordered index from genre to the catalogue positions
// carrying that genre
type Genre struct {
	tree *avl.Tree[string, []int]
}

// NewGenre - group a catalogue by genre
func NewGenre(books []book.Book) *Genre {
	log := logger.New("index")

	tree := avl.New[string, []int](strings.Compare)
	for i, b := range books {
		if node := tree.Search(b.Genre); nil != node {
			// genre already present: extend its positions in place
			node.SetValue(append(node.Value(), i))
		} else {
			tree.Insert(b.Genre, []int{i})
		}
	}

	log.Infof("genres: %d  records: %d", tree.Count(), len(books))
	return &Genre{tree: tree}
}

// Genres - all genres in ascending order
func (ix *Genre) Genres() []string {
	entries := ix.tree.Inorder()
	genres := make([]string, len(entries))
	for i, e := range entries {
		genres[i] = e.Key
	}
	return genres
}

// Books - catalogue positions for one genre
func (ix *Genre) Books(genre string) ([]int, bool) {
	node := ix.tree.Search(genre)
	if nil == node {
		return nil, false
	}
	return node.Value(), true
}

// Count - number of distinct genres
func (ix *Genre) Count() int {
	return ix.tree.Count()
}
