// Package resolve matches import expressions, i.e. wildcard patterns over
// pairs of module names, against a directed import graph, and supports
// reversible removal of the concrete edges those expressions denote. Popped
// edges come back as self-describing detail records, so re-adding exactly
// what was popped restores the graph to its prior state.
//
// Every operation takes the graph as an explicit argument; the package holds
// no graph state of its own. Operations are synchronous and perform no
// locking, matching the single-threaded ownership model of the graph.
package resolve

import "github.com/Sumatoshi-tech/archlint/pkg/imports"

// Graph is the import graph the resolver operates on. *importgraph.Graph
// satisfies it; any graph exposing module names, per-edge detail records and
// edge add/remove works.
type Graph interface {
	// Modules returns every module name currently in the graph.
	Modules() []string

	// ImportDetails returns all detail records on the edge from importer to
	// imported, or an empty slice if no such edge exists.
	ImportDetails(importer, imported string) []imports.DetailRecord

	// AddImport records one physical import occurrence from importer to
	// imported.
	AddImport(importer, imported string, lineNumber int, lineContents string)

	// RemoveImport removes the whole logical edge from importer to imported,
	// reporting whether it existed.
	RemoveImport(importer, imported string) bool
}
