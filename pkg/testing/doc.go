// Package testing provides deterministic test doubles for sketch controls.
//
// # Time
//
// Install a fake clock and step animations frame by frame:
//
//	clock := sketchtest.UseFakeClock(t)
//	c.SetAnimationDuration(time.Second)
//	c.SetAlpha(0)
//	clock.Step(time.Second)
//
// # Gestures
//
// A FakeSurface plays the host platform: it records attached recognizers
// and lets the test emit samples through them:
//
//	surface := sketchtest.NewFakeSurface()
//	c.SetSurface(surface)
//	surface.Tap(geometry.Pt(10, 10))
//
// # Errors
//
// CaptureErrors swaps the global error handler for a recorder:
//
//	rec := sketchtest.CaptureErrors(t)
//	c.SetMask(c)
//	rec.RequireKind(t, errors.KindMask)
//
// # Snapshots
//
// Record what a control draws and compare it with a golden file:
//
//	sketchtest.RecordSnapshot(c, size).MatchesFile(t, "testdata/box.snapshot")
//
// Update snapshots with:
//
//	SKETCH_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import sketchtest "github.com/go-drift/sketch/pkg/testing"
package testing
