// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/book"
	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/graph"
	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/index"
	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/similarity"
)

// everything the commands share, built once per run
type catalogue struct {
	books   []book.Book
	titles  *index.Title
	genres  *index.Genre
	related *graph.Graph
	log     *logger.L
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "bookrec"
	app.Usage = "query a book catalogue for titles, genres and related books"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " also log to the console",
		},
		cli.StringFlag{
			Name:  "catalogue, c",
			Value: "libro_final.csv",
			Usage: " catalogue `FILE` of book records",
		},
		cli.StringFlag{
			Name:  "log-directory, d",
			Value: ".",
			Usage: " `DIRECTORY` for the log file",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "catalogue statistics",
			Action: runInfo,
		},
		{
			Name:      "find",
			Usage:     "find a book by title, falling back to the closest indexed title",
			ArgsUsage: "TITLE",
			Action:    runFind,
		},
		{
			Name:      "related",
			Usage:     "books related to a title by attribute similarity",
			ArgsUsage: "TITLE",
			Action:    runRelated,
		},
		{
			Name:      "genres",
			Usage:     "list all genres, or the books of one genre",
			ArgsUsage: "[GENRE]",
			Action:    runGenres,
		},
		{
			Name:   "tree",
			Usage:  "display the title index tree",
			Action: runTree,
		},
	}

	// load the catalogue and build the indexes for every command
	app.Before = func(c *cli.Context) error {
		logging := logger.Configuration{
			Directory: c.GlobalString("log-directory"),
			File:      "bookrec.log",
			Size:      1048576,
			Count:     10,
			Console:   c.GlobalBool("verbose"),
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		}
		if err := logger.Initialise(logging); err != nil {
			return fmt.Errorf("logger setup failed: %w", err)
		}

		log := logger.New("main")
		log.Infof("version: %s", version)

		filename := c.GlobalString("catalogue")
		books, err := book.LoadFile(filename)
		if err != nil {
			return err
		}
		log.Infof("catalogue: %q  records: %d", filename, len(books))

		c.App.Metadata["catalogue"] = &catalogue{
			books:   books,
			titles:  index.NewTitle(books),
			genres:  index.NewGenre(books),
			related: graph.Build(books, similarity.Threshold),
			log:     log,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
