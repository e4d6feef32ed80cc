// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package book

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/fault"
)

// field positions of one catalogue record
const (
	fieldID = iota
	fieldTitle
	fieldAuthor
	fieldGenre
	fieldAverageRating
	fieldNumPages
	fieldRatingsCount
	fieldPublicationDate
	fieldPublisher

	fieldCount
)

// LoadFile - read all catalogue records from a file
func LoadFile(filename string) ([]Book, error) {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%q: %w", filename, fault.ErrNotFoundCatalogue)
		}
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Load - read all catalogue records from a stream
//
// a line that does not parse fails the whole load with an error
// naming the line number; nothing is returned in that case
func Load(r io.Reader) ([]Book, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // field count is checked below for a better error

	books := []Book{}
	lineNumber := 0

	for {
		lineNumber += 1
		fields, err := cr.Read()
		if io.EOF == err {
			return books, nil
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		if len(fields) != fieldCount {
			return nil, fmt.Errorf("line %d: %d fields: %w", lineNumber, len(fields), fault.ErrInvalidFieldCount)
		}

		b := Book{
			Title:           fields[fieldTitle],
			Author:          fields[fieldAuthor],
			Genre:           fields[fieldGenre],
			PublicationDate: fields[fieldPublicationDate],
			Publisher:       fields[fieldPublisher],
		}

		b.ID, err = strconv.Atoi(fields[fieldID])
		if err != nil {
			return nil, fmt.Errorf("line %d: id %q: %w", lineNumber, fields[fieldID], fault.ErrInvalidNumericField)
		}
		b.AverageRating, err = strconv.ParseFloat(fields[fieldAverageRating], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: average rating %q: %w", lineNumber, fields[fieldAverageRating], fault.ErrInvalidNumericField)
		}
		b.NumPages, err = strconv.Atoi(fields[fieldNumPages])
		if err != nil {
			return nil, fmt.Errorf("line %d: pages %q: %w", lineNumber, fields[fieldNumPages], fault.ErrInvalidNumericField)
		}
		b.RatingsCount, err = strconv.Atoi(fields[fieldRatingsCount])
		if err != nil {
			return nil, fmt.Errorf("line %d: ratings count %q: %w", lineNumber, fields[fieldRatingsCount], fault.ErrInvalidNumericField)
		}

		books = append(books, b)
	}
}
