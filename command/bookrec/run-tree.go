// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runTree(c *cli.Context) error {

	m := c.App.Metadata["catalogue"].(*catalogue)

	depth := m.titles.Print(c.App.Writer)
	fmt.Fprintf(c.App.Writer, "depth: %d\n", depth)
	return nil
}
