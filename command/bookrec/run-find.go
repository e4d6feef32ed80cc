// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/fault"
)

func runFind(c *cli.Context) error {

	m := c.App.Metadata["catalogue"].(*catalogue)
	w := c.App.Writer

	title := c.Args().First()
	if "" == title {
		return fmt.Errorf("find: a TITLE argument is required")
	}

	if pos, ok := m.titles.Lookup(title); ok {
		fmt.Fprintf(w, "position: %d\n%s", pos, m.books[pos])
		return nil
	}

	// not present: show the closest indexed title instead
	closest, pos, ok := m.titles.LookupClosest(title)
	if !ok {
		return fmt.Errorf("find: %w", fault.ErrEmptyTree)
	}
	m.log.Infof("find: %q not found, closest: %q", title, closest)

	fmt.Fprintf(w, "not in catalogue: %s\n", title)
	fmt.Fprintf(w, "closest indexed title: %s\n", closest)
	fmt.Fprintf(w, "position: %d\n%s", pos, m.books[pos])
	return nil
}
