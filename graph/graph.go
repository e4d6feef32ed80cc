// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package graph - weighted undirected graph of related titles
//
// An adjacency list keyed by title.  The graph never touches the
// ordered index; it is built directly from the loaded records.
package graph

import (
	"github.com/bitmark-inc/logger"

	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/book"
	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/similarity"
)

// Edge - a neighbouring title and the weight of the link
type Edge struct {
	Title  string
	Weight float64
}

// Graph - weighted undirected adjacency list
type Graph struct {
	adjacency map[string][]Edge
	edgeCount int
}

// New - create an empty graph
func New() *Graph {
	return &Graph{
		adjacency: make(map[string][]Edge),
	}
}

// AddEdge - link two titles in both directions
func (g *Graph) AddEdge(a string, b string, weight float64) {
	g.adjacency[a] = append(g.adjacency[a], Edge{Title: b, Weight: weight})
	g.adjacency[b] = append(g.adjacency[b], Edge{Title: a, Weight: weight})
	g.edgeCount += 1
}

// Neighbours - titles adjacent to a title
// nil when the title has no links or is not in the graph
func (g *Graph) Neighbours(title string) []Edge {
	return g.adjacency[title]
}

// Vertices - number of titles with at least one link
func (g *Graph) Vertices() int {
	return len(g.adjacency)
}

// Edges - number of undirected links
func (g *Graph) Edges() int {
	return g.edgeCount
}

// Build - pairwise-score all records and link every pair whose
// similarity reaches the threshold
func Build(books []book.Book, threshold float64) *Graph {
	log := logger.New("graph")

	g := New()
	for i := 0; i < len(books); i += 1 {
		for j := i + 1; j < len(books); j += 1 {
			w := similarity.Score(books[i], books[j])
			if w >= threshold {
				g.AddEdge(books[i].Title, books[j].Title, w)
			}
		}
	}

	log.Infof("linked: %d titles  edges: %d  threshold: %g", g.Vertices(), g.Edges(), threshold)
	return g
}
