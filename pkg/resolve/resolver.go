package resolve

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Sumatoshi-tech/archlint/pkg/imports"
)

// ErrUnmatchedExpression reports an import expression that matched no edge in
// the graph. A literal expression whose single pair has no edge fails the
// same way as a wildcarded one with no matches.
var ErrUnmatchedExpression = errors.New("import expression matched nothing in the graph")

// Resolve expands both sides of the expression and returns one DirectImport
// per detail record found across the cross product of the expansions.
// Duplicate records collapse; two distinct source lines between the same pair
// both survive. The result is sorted for deterministic output.
//
// Returns ErrUnmatchedExpression if no pair in the cross product has an edge.
func Resolve(g Graph, expression imports.ImportExpression) ([]imports.DirectImport, error) {
	found := make(map[imports.DirectImport]struct{})
	matched := false

	importers := ExpandPattern(g, expression.Importer)
	importeds := ExpandPattern(g, expression.Imported)

	for importer := range importers {
		for imported := range importeds {
			details := g.ImportDetails(importer.Name(), imported.Name())
			if len(details) == 0 {
				continue
			}

			matched = true

			for _, record := range details {
				found[imports.DirectImport{
					Importer:     imports.NewModule(record.Importer),
					Imported:     imports.NewModule(record.Imported),
					LineNumber:   record.LineNumber,
					LineContents: record.LineContents,
				}] = struct{}{}
			}
		}
	}

	if !matched {
		return nil, fmt.Errorf("%w: %s", ErrUnmatchedExpression, expression)
	}

	return sortedImports(found), nil
}

// sortedImports flattens a set of imports into a deterministically ordered
// slice.
func sortedImports(set map[imports.DirectImport]struct{}) []imports.DirectImport {
	out := make([]imports.DirectImport, 0, len(set))
	for directImport := range set {
		out = append(out, directImport)
	}

	sort.Slice(out, func(i, j int) bool {
		left, right := out[i], out[j]

		if left.Importer != right.Importer {
			return left.Importer.Name() < right.Importer.Name()
		}

		if left.Imported != right.Imported {
			return left.Imported.Name() < right.Imported.Name()
		}

		if left.LineNumber != right.LineNumber {
			return left.LineNumber < right.LineNumber
		}

		return left.LineContents < right.LineContents
	})

	return out
}
