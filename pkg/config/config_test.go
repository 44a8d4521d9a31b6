package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sketch/pkg/animation"
	"github.com/go-drift/sketch/pkg/config"
	"github.com/go-drift/sketch/pkg/control"
	"github.com/go-drift/sketch/pkg/errors"
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/template"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, cfg.Source)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, animation.DefaultPolicy(), cfg.Policy())
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sketch.yaml", `
log:
  level: debug
  verbose: true
animation:
  duration: 250ms
  delay: 10ms
  options: easeOut|allowInteraction
templates: styles/default.yaml
`)

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "sketch.yaml"), cfg.Source)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Verbose)
	assert.Equal(t, filepath.Join(dir, "styles", "default.yaml"), cfg.Templates)

	p := cfg.Policy()
	assert.Equal(t, 250*time.Millisecond, p.Duration())
	assert.Equal(t, 10*time.Millisecond, p.Delay())
	assert.Equal(t, animation.NewOptions(animation.CurveEaseOut, animation.AllowInteraction), p.Options())
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sketch.toml", `
templates = "/abs/styles.toml"

[log]
level = "warn"
format = "json"

[animation]
duration = "1s"
options = "linear"
`)

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/abs/styles.toml", cfg.Templates)
	assert.Equal(t, time.Second, cfg.Policy().Duration())
	assert.True(t, cfg.Policy().Options().Has(animation.CurveLinear))
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sketch.yaml", "log:\n  level: debug\nanimation:\n  duration: 250ms\n")
	t.Setenv("SKETCH_LOG_LEVEL", "error")
	t.Setenv("SKETCH_ANIMATION_DURATION", "2s")
	t.Setenv("SKETCH_ANIMATION_OPTIONS", "repeat,autoreverse")

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 2*time.Second, cfg.Policy().Duration())
	assert.Equal(t, animation.NewOptions(animation.Repeat, animation.Autoreverse), cfg.Policy().Options())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"level", "log:\n  level: loud\n"},
		{"format", "log:\n  format: xml\n"},
		{"duration", "animation:\n  duration: soon\n"},
		{"options", "animation:\n  options: bounce\n"},
		{"syntax", "log: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "sketch.yaml", tt.content)
			_, err := config.Load(dir)
			assert.Error(t, err)
		})
	}
}

func TestApply(t *testing.T) {
	prevPolicy := animation.DefaultPolicy()
	prevHandler := errors.SetHandler(nil)
	t.Cleanup(func() {
		animation.SetDefaultPolicy(prevPolicy)
		errors.SetHandler(prevHandler)
		template.ResetDefault(control.KindControl)
	})

	dir := t.TempDir()
	writeFile(t, dir, "styles.yaml", "control:\n  cornerRadius: 8\n")
	writeFile(t, dir, "sketch.yaml", "log:\n  level: debug\n  format: json\nanimation:\n  duration: 300ms\ntemplates: styles.yaml\n")

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	var logs bytes.Buffer
	kinds, err := cfg.Apply(&logs)
	require.NoError(t, err)
	assert.Equal(t, []string{control.KindControl}, kinds)

	c := control.New(geometry.RectXYWH(0, 0, 10, 10))
	assert.Equal(t, 8.0, c.CornerRadius())
	assert.Equal(t, 300*time.Millisecond, c.AnimationDuration())

	errors.Reportf("config.test", errors.KindTemplate, "fill", "skipped")
	assert.Contains(t, logs.String(), `"kind":"template"`)
	assert.Contains(t, logs.String(), `"property":"fill"`)
}

func TestApplyMissingTemplates(t *testing.T) {
	prevPolicy := animation.DefaultPolicy()
	prevHandler := errors.SetHandler(nil)
	t.Cleanup(func() {
		animation.SetDefaultPolicy(prevPolicy)
		errors.SetHandler(prevHandler)
	})

	cfg := config.Defaults()
	cfg.Templates = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := cfg.Apply(&bytes.Buffer{})
	assert.Error(t, err)
}

func TestProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/demo\n\ngo 1.24\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := config.FindProjectRootFrom(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	path, err := config.ModulePath(got)
	require.NoError(t, err)
	assert.Equal(t, "example.com/demo", path)

	_, err = config.ModulePath(nested)
	assert.Error(t, err)
}
