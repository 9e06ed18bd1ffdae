package resolve

import (
	"sort"

	"github.com/Sumatoshi-tech/archlint/pkg/imports"
)

// ResolveAll resolves every expression and returns the deduplicated union of
// the results. The first expression that matches nothing fails the whole
// batch with ErrUnmatchedExpression; no partial result is returned.
func ResolveAll(g Graph, expressions []imports.ImportExpression) ([]imports.DirectImport, error) {
	found := make(map[imports.DirectImport]struct{})

	for _, expression := range expressions {
		resolved, err := Resolve(g, expression)
		if err != nil {
			return nil, err
		}

		for _, directImport := range resolved {
			found[directImport] = struct{}{}
		}
	}

	return sortedImports(found), nil
}

// ResolvePartial resolves every expression independently, converting
// unmatched expressions into data instead of failing: it returns the union of
// all resolved imports plus the expressions that matched nothing. Both slices
// are deduplicated and sorted. Never returns an error, so a stale expression
// can be reported as a warning without aborting an analysis run.
func ResolvePartial(
	g Graph, expressions []imports.ImportExpression,
) ([]imports.DirectImport, []imports.ImportExpression) {
	found := make(map[imports.DirectImport]struct{})
	unmatched := make(map[imports.ImportExpression]struct{})

	for _, expression := range expressions {
		resolved, err := Resolve(g, expression)
		if err != nil {
			unmatched[expression] = struct{}{}

			continue
		}

		for _, directImport := range resolved {
			found[directImport] = struct{}{}
		}
	}

	return sortedImports(found), sortedExpressions(unmatched)
}

func sortedExpressions(set map[imports.ImportExpression]struct{}) []imports.ImportExpression {
	out := make([]imports.ImportExpression, 0, len(set))
	for expression := range set {
		out = append(out, expression)
	}

	sort.Slice(out, func(i, j int) bool {
		left, right := out[i], out[j]

		if left.Importer != right.Importer {
			return left.Importer.Expression() < right.Importer.Expression()
		}

		return left.Imported.Expression() < right.Imported.Expression()
	})

	return out
}
