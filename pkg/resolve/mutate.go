package resolve

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Sumatoshi-tech/archlint/pkg/imports"
)

// ErrMissingImport reports an attempt to remove an edge that is not in the
// graph. It indicates a caller/graph-state inconsistency, such as a double
// removal, and is never recovered internally.
var ErrMissingImport = errors.New("import not present in the graph")

// ErrInvalidDetailRecord reports a malformed detail record passed to
// AddImports: an empty endpoint, a non-positive line number, or blank line
// contents.
var ErrInvalidDetailRecord = errors.New("invalid detail record")

// DedupeForRemoval strips provenance from each import and collapses
// duplicates onto unique (importer, imported) pairs. The result is sorted by
// importer then imported name; removal of one pair never affects another, so
// the ordering only keeps removal deterministic and auditable.
func DedupeForRemoval(directImports []imports.DirectImport) []imports.DirectImport {
	unique := make(map[imports.DirectImport]struct{}, len(directImports))
	for _, directImport := range directImports {
		unique[directImport.WithoutProvenance()] = struct{}{}
	}

	out := make([]imports.DirectImport, 0, len(unique))
	for directImport := range unique {
		out = append(out, directImport)
	}

	sort.Slice(out, func(i, j int) bool {
		left, right := out[i], out[j]

		if left.Importer != right.Importer {
			return left.Importer.Name() < right.Importer.Name()
		}

		return left.Imported.Name() < right.Imported.Name()
	})

	return out
}

// PopImports removes the supplied imports from the graph at logical-edge
// granularity and returns every detail record that was removed, in
// pair-processing order. The returned records are exactly what AddImports
// needs to restore the graph.
//
// Returns ErrMissingImport if any deduped pair has no edge in the graph.
func PopImports(g Graph, directImports []imports.DirectImport) ([]imports.DetailRecord, error) {
	var removed []imports.DetailRecord

	for _, pair := range DedupeForRemoval(directImports) {
		details := g.ImportDetails(pair.Importer.Name(), pair.Imported.Name())
		if len(details) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingImport, pair)
		}

		g.RemoveImport(pair.Importer.Name(), pair.Imported.Name())

		removed = append(removed, details...)
	}

	return removed, nil
}

// AddImports adds the supplied detail records to the graph, one edge
// occurrence per record. It is the reverse of PopImports: adding exactly the
// records a pop returned leaves the graph as it was before the pop.
//
// Each record is validated before it is added; a malformed record fails with
// ErrInvalidDetailRecord.
func AddImports(g Graph, records []imports.DetailRecord) error {
	for _, record := range records {
		if err := validateDetailRecord(record); err != nil {
			return err
		}

		g.AddImport(record.Importer, record.Imported, record.LineNumber, record.LineContents)
	}

	return nil
}

// PopImportExpressions strictly resolves the expressions, then pops every
// resolved import. Fails with whichever error the failing step produced.
func PopImportExpressions(
	g Graph, expressions []imports.ImportExpression,
) ([]imports.DetailRecord, error) {
	resolved, err := ResolveAll(g, expressions)
	if err != nil {
		return nil, err
	}

	return PopImports(g, resolved)
}

func validateDetailRecord(record imports.DetailRecord) error {
	switch {
	case record.Importer == "":
		return fmt.Errorf("%w: empty importer", ErrInvalidDetailRecord)
	case record.Imported == "":
		return fmt.Errorf("%w: empty imported", ErrInvalidDetailRecord)
	case record.LineNumber <= 0:
		return fmt.Errorf("%w: line number %d is not positive", ErrInvalidDetailRecord, record.LineNumber)
	case strings.TrimSpace(record.LineContents) == "":
		return fmt.Errorf("%w: blank line contents", ErrInvalidDetailRecord)
	}

	return nil
}
