package scene_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sketch/cmd/sketch/internal/scene"
	"github.com/go-drift/sketch/pkg/geometry"
	sketchtest "github.com/go-drift/sketch/pkg/testing"
)

const styles = `
card:
  cornerRadius: 6
  backgroundColor: "#336699"
`

const sample = `
size: [320, 240]
templates: styles.yaml
objects:
  - kind: control
    name: card
    frame: [20, 20, 200, 120]
    template: card
    style:
      zPosition: 2
      shadowOpacity: 0.5
    children:
      - kind: polygon
        name: badge
        frame: [10, 10, 40, 40]
        sides: 5
  - kind: text
    name: title
    text: Hi
    fontSize: 24
    frame: [5, 5, 0, 0]
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles.yaml"), []byte(styles), 0o644))
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuild(t *testing.T) {
	s, err := scene.Load(writeScene(t, sample))
	require.NoError(t, err)
	b, err := s.Build()
	require.NoError(t, err)

	assert.Equal(t, geometry.Sz(320, 240), b.Size)
	assert.Len(t, b.Root.Children(), 2)

	card := b.Named["card"]
	require.NotNil(t, card)
	assert.Equal(t, 6.0, card.CornerRadius())
	assert.Equal(t, "#336699", card.BackgroundColor().String())
	assert.Equal(t, 2.0, card.ZPosition())
	assert.Equal(t, 0.5, card.ShadowOpacity())

	badge := b.Named["badge"]
	require.NotNil(t, badge)
	assert.Same(t, card, badge.Parent())
	assert.Equal(t, "shape", badge.Kind())

	title := b.Named["title"]
	require.NotNil(t, title)
	assert.Equal(t, geometry.Pt(5, 5), title.Origin())
	assert.Greater(t, title.Width(), 0.0)
}

func TestBuildRenders(t *testing.T) {
	s, err := scene.Load(writeScene(t, sample))
	require.NoError(t, err)
	b, err := s.Build()
	require.NoError(t, err)

	ops := sketchtest.OpNames(sketchtest.Record(b.Root, b.Size))
	assert.Contains(t, ops, "drawShadow")
	assert.Contains(t, ops, "drawPath")
	assert.Equal(t, "save", ops[0])
	assert.Equal(t, "restore", ops[len(ops)-1])
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		scene string
	}{
		{"no size", "objects: []\n"},
		{"unknown kind", "size: [10, 10]\nobjects:\n  - kind: spline\n    frame: [0, 0, 1, 1]\n"},
		{"bad frame", "size: [10, 10]\nobjects:\n  - kind: control\n    frame: [0, 0]\n"},
		{"unknown template", "size: [10, 10]\ntemplates: styles.yaml\nobjects:\n  - frame: [0, 0, 1, 1]\n    template: nope\n"},
		{"unknown property", "size: [10, 10]\nobjects:\n  - frame: [0, 0, 1, 1]\n    style:\n      sparkle: 1\n"},
		{"wrong type", "size: [10, 10]\nobjects:\n  - frame: [0, 0, 1, 1]\n    style:\n      alpha: [1, 2]\n"},
		{"duplicate name", "size: [10, 10]\nobjects:\n  - {name: a, frame: [0, 0, 1, 1]}\n  - {name: a, frame: [0, 0, 1, 1]}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := scene.Load(writeScene(t, tt.scene))
			if err == nil {
				_, err = s.Build()
			}
			assert.Error(t, err)
		})
	}
}
