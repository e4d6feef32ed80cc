// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runGenres(c *cli.Context) error {

	m := c.App.Metadata["catalogue"].(*catalogue)
	w := c.App.Writer

	genre := c.Args().First()
	if "" == genre {
		// no argument: list every genre with its book count
		for _, name := range m.genres.Genres() {
			positions, _ := m.genres.Books(name)
			fmt.Fprintf(w, "%-30s  %d\n", name, len(positions))
		}
		return nil
	}

	positions, ok := m.genres.Books(genre)
	if !ok {
		fmt.Fprintf(w, "no such genre: %s\n", genre)
		return nil
	}

	fmt.Fprintf(w, "books in genre: %s\n", genre)
	for _, pos := range positions {
		fmt.Fprintf(w, "  %s\n", m.books[pos].Title)
	}
	return nil
}
