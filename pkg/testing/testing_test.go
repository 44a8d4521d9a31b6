package testing

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/sketch/pkg/animation"
	"github.com/go-drift/sketch/pkg/errors"
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/gestures"
	"github.com/go-drift/sketch/pkg/graphics"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	if elapsed := clk.Now().Sub(start); elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestUseFakeClock_DrivesTickers(t *testing.T) {
	clk := UseFakeClock(t)
	if !animation.Now().Equal(clk.Now()) {
		t.Fatal("animation clock not installed")
	}

	var last time.Duration
	ticker := animation.NewTicker(func(elapsed time.Duration) { last = elapsed })
	ticker.Start()
	defer ticker.Stop()

	clk.StepFrames(3, 16*time.Millisecond)
	if last != 48*time.Millisecond {
		t.Errorf("elapsed = %v, want 48ms", last)
	}
}

func TestFakeSurface_AttachDetach(t *testing.T) {
	s := NewFakeSurface()
	var got []gestures.Raw
	rec := s.Attach(gestures.RecognizeTap, func(raw gestures.Raw) { got = append(got, raw) })

	if !s.Tap(geometry.Pt(3, 4)) {
		t.Fatal("tap should reach the attached recognizer")
	}
	if len(got) != 1 || got[0].Location != geometry.Pt(3, 4) {
		t.Errorf("delivered %v", got)
	}

	rec.Detach()
	if s.Attached(gestures.RecognizeTap) != 0 || s.DetachCount(gestures.RecognizeTap) != 1 {
		t.Error("recognizer still attached after Detach")
	}
	if s.Tap(geometry.Pt(0, 0)) {
		t.Error("tap delivered with nothing attached")
	}
}

func TestFakeSurface_LongPressPhases(t *testing.T) {
	s := NewFakeSurface()
	var states []gestures.State
	s.Attach(gestures.RecognizeLongPress, func(raw gestures.Raw) { states = append(states, raw.State) })

	s.LongPress(geometry.Pt(1, 1))
	want := []gestures.State{gestures.StateBegan, gestures.StateChanged, gestures.StateEnded}
	if len(states) != len(want) {
		t.Fatalf("states = %v", states)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("state[%d] = %v, want %v", i, states[i], want[i])
		}
	}
}

func TestCaptureErrors(t *testing.T) {
	rec := CaptureErrors(t)
	errors.Reportf("test", errors.KindMask, "mask", "rejected")
	errors.ReportPanic(&errors.PanicError{Op: "test", Value: "boom"})

	if err := rec.RequireKind(t, errors.KindMask); err.Property != "mask" {
		t.Errorf("property = %q", err.Property)
	}
	if len(rec.Panics()) != 1 {
		t.Errorf("panics = %v", rec.Panics())
	}
	rec.Reset()
	if len(rec.Errors()) != 0 {
		t.Error("Reset should clear errors")
	}
}

type boxRenderer struct{ color graphics.Color }

func (b boxRenderer) RenderInContext(canvas graphics.Canvas) {
	canvas.Save()
	canvas.DrawRRect(geometry.RectXYWH(0, 0, 10, 10), 2, graphics.Paint{Color: b.color})
	canvas.Restore()
}

func TestSnapshot_MatchesFile(t *testing.T) {
	snap := RecordSnapshot(boxRenderer{graphics.ColorRed}, geometry.Sz(10, 10))
	if got := snap.Lines[0]; got != "save" {
		t.Errorf("first line = %q", got)
	}

	path := filepath.Join(t.TempDir(), "box.snapshot")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != snap.String() {
		t.Errorf("file = %q", data)
	}
	snap.MatchesFile(t, path)

	other := RecordSnapshot(boxRenderer{graphics.ColorBlue}, geometry.Sz(10, 10))
	if other.Diff(snap) == "" {
		t.Error("different colors should produce a diff")
	}
}

func TestOpNames(t *testing.T) {
	dl := Record(boxRenderer{graphics.ColorRed}, geometry.Sz(10, 10))
	names := OpNames(dl)
	want := []string{"save", "drawRRect", "restore"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
