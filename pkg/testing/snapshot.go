package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/graphics"
)

// TestingT is the subset of *testing.T used by this package, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Cleanup(func())
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Renderer is anything that can draw itself into a canvas.
type Renderer interface {
	RenderInContext(canvas graphics.Canvas)
}

// Snapshot is the text form of a recorded display list: one line per op.
type Snapshot struct {
	Lines []string
}

// Record renders r into a fresh display list of the given size.
func Record(r Renderer, size geometry.Size) *graphics.DisplayList {
	var rec graphics.PictureRecorder
	r.RenderInContext(rec.BeginRecording(size))
	return rec.EndRecording()
}

// RecordSnapshot renders r and returns its snapshot.
func RecordSnapshot(r Renderer, size geometry.Size) *Snapshot {
	return SnapshotOf(Record(r, size))
}

// SnapshotOf converts a display list to a snapshot.
func SnapshotOf(dl *graphics.DisplayList) *Snapshot {
	ops := dl.Ops()
	s := &Snapshot{Lines: make([]string, len(ops))}
	for i, op := range ops {
		s.Lines[i] = op.String()
	}
	return s
}

// OpNames returns just the op names, in order.
func OpNames(dl *graphics.DisplayList) []string {
	ops := dl.Ops()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Op
	}
	return names
}

// String joins the lines with newlines, with a trailing newline.
func (s *Snapshot) String() string {
	if len(s.Lines) == 0 {
		return ""
	}
	return strings.Join(s.Lines, "\n") + "\n"
}

// MatchesFile compares this snapshot against a golden file.
// If SKETCH_UPDATE_SNAPSHOTS=1 is set, writes the snapshot instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("SKETCH_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: SKETCH_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := unifiedDiff(string(data), s.String()); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: SKETCH_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s.String()), 0o644)
}

// Diff returns a line diff from other to s, or "" when they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	return unifiedDiff(other.String(), s.String())
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	if expected == actual {
		return ""
	}
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
