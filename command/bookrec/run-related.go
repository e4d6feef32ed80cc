// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/fault"
)

func runRelated(c *cli.Context) error {

	m := c.App.Metadata["catalogue"].(*catalogue)
	w := c.App.Writer

	title := c.Args().First()
	if "" == title {
		return fmt.Errorf("related: a TITLE argument is required")
	}

	if _, ok := m.titles.Lookup(title); !ok {
		return fmt.Errorf("related: %q: %w", title, fault.ErrNotFoundTitle)
	}

	neighbours := m.related.Neighbours(title)
	if 0 == len(neighbours) {
		fmt.Fprintf(w, "no related books for: %s\n", title)
		return nil
	}

	fmt.Fprintf(w, "books related to: %s\n", title)
	for _, edge := range neighbours {
		fmt.Fprintf(w, "  %-60s  weight: %g\n", edge.Title, edge.Weight)
	}
	return nil
}
