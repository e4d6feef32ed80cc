// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["catalogue"].(*catalogue)
	w := c.App.Writer

	fmt.Fprintf(w, "records:   %d\n", len(m.books))
	fmt.Fprintf(w, "titles:    %d  (tree height: %d)\n", m.titles.Count(), m.titles.Height())
	fmt.Fprintf(w, "genres:    %d\n", m.genres.Count())
	fmt.Fprintf(w, "linked:    %d titles  %d edges\n", m.related.Vertices(), m.related.Edges())

	first, _, err := m.titles.Min()
	if err != nil {
		return err
	}
	last, _, err := m.titles.Max()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "first:     %s\n", first)
	fmt.Fprintf(w, "last:      %s\n", last)

	return nil
}
