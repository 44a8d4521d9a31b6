package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/sketch/pkg/animation"
	"github.com/go-drift/sketch/pkg/errors"
)

// run executes the CLI with output captured, restoring the process-wide
// state that loading a project installs.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	prevOut := stdout
	prevPolicy := animation.DefaultPolicy()
	prevHandler := errors.SetHandler(nil)
	errors.SetHandler(prevHandler)
	stdout = &buf
	t.Cleanup(func() {
		stdout = prevOut
		animation.SetDefaultPolicy(prevPolicy)
		errors.SetHandler(prevHandler)
	})
	err := Execute(args)
	return buf.String(), err
}

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files["go.mod"] = "module example.com/demo\n\ngo 1.24\n"
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestExecuteHelpAndVersion(t *testing.T) {
	out, err := run(t)
	if err != nil || !strings.Contains(out, "Commands:") {
		t.Errorf("no args: err=%v out=%q", err, out)
	}
	for _, name := range []string{"status", "template", "render"} {
		if !strings.Contains(out, name) {
			t.Errorf("help does not list %q", name)
		}
	}

	out, _ = run(t, "--version")
	if !strings.HasPrefix(out, "Sketch CLI version "+Version) {
		t.Errorf("version output = %q", out)
	}

	if _, err := run(t, "paint"); err == nil {
		t.Error("expected error for unknown command")
	}
	if _, err := run(t, "status", "--dir"); err == nil {
		t.Error("expected error for --dir without a value")
	}
}

func TestStatus(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"sketch.yaml": "animation:\n  duration: 250ms\n  options: easeOut\n",
		".env":        "SKETCH_LOG_LEVEL=warn\n",
	})
	t.Cleanup(func() { os.Unsetenv("SKETCH_LOG_LEVEL") })

	out, err := run(t, "--dir", dir, "status")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Module:  example.com/demo",
		"Config:  " + filepath.Join(dir, "sketch.yaml"),
		"level:     warn",
		"duration:  250ms",
		"options:   easeOut",
		"shape",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}
}

func TestTemplateCommands(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"styles.yaml": "card:\n  cornerRadius: 6\n  shadowOffset: [1, 2]\n",
	})

	out, err := run(t, "--dir="+dir, "template", "default", "control")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "control:\n") || !strings.Contains(out, "shadowRadius: 3") {
		t.Errorf("default control template:\n%s", out)
	}

	out, err = run(t, "--dir", dir, "template", "show", filepath.Join(dir, "styles.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "card:\n    cornerRadius: 6\n    shadowOffset: [1, 2]\n"; out != want {
		t.Errorf("show = %q, want %q", out, want)
	}

	out, err = run(t, "--dir", dir, "template", "kinds")
	if err != nil || !strings.Contains(out, "canvas\ncontrol\n") {
		t.Errorf("kinds: err=%v out=%q", err, out)
	}

	if _, err := run(t, "--dir", dir, "template", "default", "spline"); err == nil {
		t.Error("expected error for a kind without a default")
	}
	if _, err := run(t, "--dir", dir, "template"); err == nil {
		t.Error("expected error without a subcommand")
	}
}

func TestRender(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"scene.yaml": "size: [100, 100]\nobjects:\n  - frame: [10, 10, 20, 20]\n    style:\n      backgroundColor: red\n",
	})

	out, err := run(t, "--dir", dir, "render", filepath.Join(dir, "scene.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{
		"save",
		"translate dx=0 dy=0",
		"drawRRect rect=[0 0 100 100] radius=0 color=#FFFFFF style=fill strokeWidth=0",
		"save",
		"translate dx=10 dy=10",
		"drawRRect rect=[0 0 20 20] radius=0 color=#FF0000 style=fill strokeWidth=0",
		"restore",
		"restore",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("render output:\n%s\nwant:\n%s", out, strings.Join(want, "\n"))
	}

	out, err = run(t, "--dir", dir, "render", filepath.Join(dir, "scene.yaml"), "--yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "- op: save\n") {
		t.Errorf("yaml output:\n%s", out)
	}
}
