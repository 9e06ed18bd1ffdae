// Package importgraph provides an in-memory directed import graph. Nodes are
// dotted module names; each ordered pair of modules has at most one logical
// edge, which aggregates one detail record per physical import occurrence.
// An edge with zero detail records does not exist.
package importgraph

import (
	"sort"

	"github.com/Sumatoshi-tech/archlint/pkg/imports"
)

// edgeKey identifies a logical edge by its interned endpoint IDs.
type edgeKey struct {
	importer int
	imported int
}

// Graph is a directed import graph with per-edge detail records. It is built
// and mutated by a single caller for the duration of one analysis pass; it
// performs no locking and is not safe for concurrent mutation. Callers
// needing parallel evaluation should work on independent copies (see Copy).
type Graph struct {
	symbols *symbolTable
	edges   map[edgeKey][]imports.DetailRecord
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		symbols: newSymbolTable(),
		edges:   make(map[edgeKey][]imports.DetailRecord),
	}
}

// AddModule registers a module as a node. Returns false if the module is
// already present.
func (g *Graph) AddModule(name string) bool {
	if _, exists := g.symbols.lookup(name); exists {
		return false
	}

	g.symbols.intern(name)

	return true
}

// ContainsModule reports whether the module is a node of the graph.
func (g *Graph) ContainsModule(name string) bool {
	_, exists := g.symbols.lookup(name)

	return exists
}

// Modules returns all module names in the graph, sorted.
func (g *Graph) Modules() []string {
	names := make([]string, g.symbols.len())
	copy(names, g.symbols.idToStr)

	sort.Strings(names)

	return names
}

// AddImport records one physical import occurrence from importer to imported.
// Both endpoint modules are registered as nodes if absent. Repeated calls for
// the same pair accumulate detail records on the same logical edge.
func (g *Graph) AddImport(importer, imported string, lineNumber int, lineContents string) {
	key := edgeKey{
		importer: g.symbols.intern(importer),
		imported: g.symbols.intern(imported),
	}

	g.edges[key] = append(g.edges[key], imports.DetailRecord{
		Importer:     importer,
		Imported:     imported,
		LineNumber:   lineNumber,
		LineContents: lineContents,
	})
}

// RemoveImport removes the whole logical edge from importer to imported,
// including every detail record. The endpoint nodes remain. Returns false if
// no such edge exists.
func (g *Graph) RemoveImport(importer, imported string) bool {
	key, ok := g.edgeKeyFor(importer, imported)
	if !ok {
		return false
	}

	if _, exists := g.edges[key]; !exists {
		return false
	}

	delete(g.edges, key)

	return true
}

// ImportDetails returns a copy of every detail record on the edge from
// importer to imported, or nil if no such edge exists.
func (g *Graph) ImportDetails(importer, imported string) []imports.DetailRecord {
	key, ok := g.edgeKeyFor(importer, imported)
	if !ok {
		return nil
	}

	records, exists := g.edges[key]
	if !exists {
		return nil
	}

	out := make([]imports.DetailRecord, len(records))
	copy(out, records)

	return out
}

// DirectImportExists reports whether the graph has an edge from importer to
// imported.
func (g *Graph) DirectImportExists(importer, imported string) bool {
	key, ok := g.edgeKeyFor(importer, imported)
	if !ok {
		return false
	}

	_, exists := g.edges[key]

	return exists
}

// CountImports returns the total number of detail records in the graph, i.e.
// physical import occurrences rather than logical edges.
func (g *Graph) CountImports() int {
	total := 0
	for _, records := range g.edges {
		total += len(records)
	}

	return total
}

// FindChildren returns the modules directly imported by the given module,
// sorted.
func (g *Graph) FindChildren(name string) []string {
	id, exists := g.symbols.lookup(name)
	if !exists {
		return nil
	}

	var children []string

	for key := range g.edges {
		if key.importer == id {
			children = append(children, g.symbols.resolve(key.imported))
		}
	}

	sort.Strings(children)

	return children
}

// FindParents returns the modules that directly import the given module,
// sorted.
func (g *Graph) FindParents(name string) []string {
	id, exists := g.symbols.lookup(name)
	if !exists {
		return nil
	}

	var parents []string

	for key := range g.edges {
		if key.imported == id {
			parents = append(parents, g.symbols.resolve(key.importer))
		}
	}

	sort.Strings(parents)

	return parents
}

// Copy returns an independent deep copy of the graph. Mutating the copy never
// affects the original, so parallel analyses can each take their own copy.
func (g *Graph) Copy() *Graph {
	clone := &Graph{
		symbols: g.symbols.copy(),
		edges:   make(map[edgeKey][]imports.DetailRecord, len(g.edges)),
	}

	for key, records := range g.edges {
		cloned := make([]imports.DetailRecord, len(records))
		copy(cloned, records)
		clone.edges[key] = cloned
	}

	return clone
}

// edgeKeyFor resolves both endpoints without interning unknown names, so
// lookups never grow the node set.
func (g *Graph) edgeKeyFor(importer, imported string) (edgeKey, bool) {
	importerID, ok := g.symbols.lookup(importer)
	if !ok {
		return edgeKey{}, false
	}

	importedID, ok := g.symbols.lookup(imported)
	if !ok {
		return edgeKey{}, false
	}

	return edgeKey{importer: importerID, imported: importedID}, true
}
