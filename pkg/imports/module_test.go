package imports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/archlint/pkg/imports"
)

func TestModuleEqualityByName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, imports.NewModule("a.b.c"), imports.NewModule("a.b.c"))
	assert.NotEqual(t, imports.NewModule("a.b.c"), imports.NewModule("a.b.C"))
}

func TestModuleRoot(t *testing.T) {
	t.Parallel()

	assert.Equal(t, imports.NewModule("mypackage"), imports.NewModule("mypackage.foo.bar").Root())
	assert.Equal(t, imports.NewModule("mypackage"), imports.NewModule("mypackage").Root())
}

func TestModuleIsDescendantOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		module   string
		ancestor string
		want     bool
	}{
		{name: "direct child", module: "a.b", ancestor: "a", want: true},
		{name: "grandchild", module: "a.b.c", ancestor: "a", want: true},
		{name: "self", module: "a.b", ancestor: "a.b", want: false},
		{name: "sibling", module: "a.b", ancestor: "a.c", want: false},
		{name: "shared prefix without dot", module: "ab.c", ancestor: "a", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := imports.NewModule(tt.module).IsDescendantOf(imports.NewModule(tt.ancestor))
			assert.Equal(t, tt.want, got)
		})
	}
}
