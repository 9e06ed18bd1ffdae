package imports

import "fmt"

// DetailRecord is the per-occurrence metadata of one physical import: the
// edge endpoints plus the source line it came from. Records are
// self-describing so that a list popped from a graph is all that is needed
// to restore it.
type DetailRecord struct {
	Importer     string
	Imported     string
	LineNumber   int
	LineContents string
}

// DirectImport is a directed edge from Importer to Imported, optionally
// carrying line-level provenance. Two DirectImports denote the same logical
// edge if their endpoints match; they are distinct records if the provenance
// differs.
type DirectImport struct {
	Importer     Module
	Imported     Module
	LineNumber   int
	LineContents string
}

// WithoutProvenance returns the import reduced to its endpoints, dropping
// line metadata. Used to collapse duplicate records onto their logical edge.
func (d DirectImport) WithoutProvenance() DirectImport {
	return DirectImport{Importer: d.Importer, Imported: d.Imported}
}

// String renders the import, including the line number when present.
func (d DirectImport) String() string {
	if d.LineNumber > 0 {
		return fmt.Sprintf("%s -> %s (l. %d)", d.Importer, d.Imported, d.LineNumber)
	}

	return fmt.Sprintf("%s -> %s", d.Importer, d.Imported)
}

// ImportExpression is a pair of module patterns denoting a set of concrete
// direct imports: every graph edge whose importer matches Importer and whose
// imported matches Imported.
type ImportExpression struct {
	Importer ModulePattern
	Imported ModulePattern
}

// HasWildcard reports whether either side of the expression contains a
// wildcard segment.
func (e ImportExpression) HasWildcard() bool {
	return e.Importer.HasWildcard() || e.Imported.HasWildcard()
}

// String renders the expression as "importer -> imported".
func (e ImportExpression) String() string {
	return fmt.Sprintf("%s -> %s", e.Importer, e.Imported)
}
