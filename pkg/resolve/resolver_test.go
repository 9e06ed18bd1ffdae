package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/archlint/pkg/importgraph"
	"github.com/Sumatoshi-tech/archlint/pkg/imports"
	"github.com/Sumatoshi-tech/archlint/pkg/resolve"
)

// expression is a test helper building an ImportExpression from two pattern
// strings.
func expression(importer, imported string) imports.ImportExpression {
	return imports.ImportExpression{
		Importer: imports.NewModulePattern(importer),
		Imported: imports.NewModulePattern(imported),
	}
}

func TestResolveLiteralExpression(t *testing.T) {
	t.Parallel()

	graph := importgraph.NewGraph()
	graph.AddImport("blue", "green", 1, "import green")

	resolved, err := resolve.Resolve(graph, expression("blue", "green"))
	require.NoError(t, err)

	assert.Equal(t, []imports.DirectImport{
		{
			Importer:     imports.NewModule("blue"),
			Imported:     imports.NewModule("green"),
			LineNumber:   1,
			LineContents: "import green",
		},
	}, resolved)
}

func TestResolveLiteralNonExistentEdgeFails(t *testing.T) {
	t.Parallel()

	graph := importgraph.NewGraph()
	graph.AddModule("x")
	graph.AddModule("y")

	// Both nodes exist, but there is no edge between them.
	_, err := resolve.Resolve(graph, expression("x", "y"))

	require.ErrorIs(t, err, resolve.ErrUnmatchedExpression)
	assert.Contains(t, err.Error(), "x -> y")
}

func TestResolveCrossProductUnion(t *testing.T) {
	t.Parallel()

	graph := importgraph.NewGraph()
	graph.AddImport("a", "c", 1, "import c")
	graph.AddImport("b", "d", 2, "import d")
	graph.AddModule("p.a")
	graph.AddModule("p.b")
	graph.AddModule("q.c")
	graph.AddModule("q.d")
	graph.AddImport("p.a", "q.c", 1, "import q.c")
	graph.AddImport("p.b", "q.d", 2, "import q.d")

	// The importer pattern matches {p.a, p.b}, the imported pattern matches
	// {q.c, q.d}. Only two of the four pairs have edges; the empty pairs
	// contribute nothing and do not cause failure.
	resolved, err := resolve.Resolve(graph, expression("p.*", "q.*"))
	require.NoError(t, err)

	assert.Equal(t, []imports.DirectImport{
		{
			Importer:     imports.NewModule("p.a"),
			Imported:     imports.NewModule("q.c"),
			LineNumber:   1,
			LineContents: "import q.c",
		},
		{
			Importer:     imports.NewModule("p.b"),
			Imported:     imports.NewModule("q.d"),
			LineNumber:   2,
			LineContents: "import q.d",
		},
	}, resolved)
}

func TestResolveKeepsDistinctRecordsOnSameEdge(t *testing.T) {
	t.Parallel()

	graph := importgraph.NewGraph()
	graph.AddImport("blue", "green", 1, "from blue import green.one")
	graph.AddImport("blue", "green", 3, "from blue import green.two")

	resolved, err := resolve.Resolve(graph, expression("blue", "green"))
	require.NoError(t, err)

	// Two distinct source lines between the same pair both survive.
	require.Len(t, resolved, 2)
	assert.Equal(t, 1, resolved[0].LineNumber)
	assert.Equal(t, 3, resolved[1].LineNumber)
}

func TestResolveWildcardNoMatchFails(t *testing.T) {
	t.Parallel()

	graph := importgraph.NewGraph()
	graph.AddImport("a.b", "c.d", 1, "import c.d")

	_, err := resolve.Resolve(graph, expression("z.*", "c.d"))

	require.ErrorIs(t, err, resolve.ErrUnmatchedExpression)
}

func TestResolveDeterministicOrder(t *testing.T) {
	t.Parallel()

	graph := importgraph.NewGraph()
	graph.AddImport("m.b", "n.x", 7, "import n.x")
	graph.AddImport("m.a", "n.x", 2, "import n.x")
	graph.AddImport("m.a", "n.x", 1, "import n.x as x")

	resolved, err := resolve.Resolve(graph, expression("m.*", "n.x"))
	require.NoError(t, err)

	require.Len(t, resolved, 3)
	assert.Equal(t, "m.a -> n.x (l. 1)", resolved[0].String())
	assert.Equal(t, "m.a -> n.x (l. 2)", resolved[1].String())
	assert.Equal(t, "m.b -> n.x (l. 7)", resolved[2].String())
}
