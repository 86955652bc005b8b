package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/splitview/geometry"
)

func TestDefaultLayout(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	root := cfg.Root
	assert.Equal(t, geometry.Vertical, root.Axis())
	require.Len(t, root.Children, 2)
	for _, row := range root.Children {
		assert.True(t, row.IsSplit())
		assert.Equal(t, geometry.Horizontal, row.Axis())
		assert.Len(t, row.Children, 3)
		for _, pane := range row.Children {
			assert.False(t, pane.IsSplit())
			assert.NotEmpty(t, pane.Title)
		}
	}
}

func TestValidate(t *testing.T) {
	pane := Node{Title: "a"}

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"missing root", Config{}, "no root"},
		{"single pane", Config{Root: &pane}, ""},
		{"bad orientation", Config{Root: &Node{Orientation: "diagonal", Children: []Node{pane}}}, "unknown orientation"},
		{"negative min", Config{Root: &Node{MinSize: -1, Children: []Node{pane}}}, "min_size"},
		{"empty split", Config{Root: &Node{Orientation: "vertical"}}, "no children"},
		{
			"nested error path",
			Config{Root: &Node{Children: []Node{pane, {Orientation: "x", Children: []Node{pane}}}}},
			"root.children[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMissingRootIsSentinel(t *testing.T) {
	assert.ErrorIs(t, Config{}.Validate(), ErrEmptyLayout)
}
