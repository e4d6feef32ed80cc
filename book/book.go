// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package book - catalogue records and their loader
//
// A catalogue is a plain text file with one record per line, nine
// comma separated fields.  A malformed line stops the load with an
// error naming the line; it never produces a partial record.
package book

import (
	"fmt"
)

// Book - a single catalogue record
type Book struct {
	ID              int
	Title           string
	Author          string
	Genre           string
	AverageRating   float64
	NumPages        int
	RatingsCount    int
	PublicationDate string
	Publisher       string
}

// String - the full display block for one record
func (b Book) String() string {
	return fmt.Sprintf(
		"id: %d\n"+
			"title: %s\n"+
			"author: %s\n"+
			"genre: %s\n"+
			"average rating: %g\n"+
			"pages: %d\n"+
			"ratings: %d\n"+
			"publication date: %s\n"+
			"publisher: %s\n",
		b.ID, b.Title, b.Author, b.Genre, b.AverageRating,
		b.NumPages, b.RatingsCount, b.PublicationDate, b.Publisher)
}
