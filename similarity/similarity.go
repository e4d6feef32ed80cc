// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package similarity - pairwise scoring of catalogue records
//
// The score is a sum of fixed weights, one per matching attribute.
// Two records relate when the score reaches Threshold.
package similarity

import (
	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/book"
)

// attribute weights
const (
	AuthorWeight          = 0.3
	GenreWeight           = 0.3
	PublicationDateWeight = 0.3
)

// Threshold - minimum score for two records to count as related
// one matching attribute is enough
const Threshold = 0.3

// Score - similarity of two catalogue records
func Score(a book.Book, b book.Book) float64 {
	score := 0.0
	if a.Author == b.Author {
		score += AuthorWeight
	}
	if a.Genre == b.Genre {
		score += GenreWeight
	}
	if a.PublicationDate == b.PublicationDate {
		score += PublicationDateWeight
	}
	return score
}
