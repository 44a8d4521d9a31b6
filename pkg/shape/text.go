package shape

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/sketch/pkg/control"
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/graphics"
)

var regular = sync.OnceValues(func() (*sfnt.Font, error) {
	return sfnt.Parse(goregular.TTF)
})

// DefaultFont returns Go Regular, the font NewTextShape outlines with.
func DefaultFont() (*sfnt.Font, error) {
	return regular()
}

// NewTextShape returns a shape whose path is the outline of text set in
// Go Regular at size points per em. The frame fits the outline and starts
// at (0, 0).
func NewTextShape(text string, size float64, opts ...control.Option) (*Shape, error) {
	f, err := regular()
	if err != nil {
		return nil, fmt.Errorf("shape: parse default font: %w", err)
	}
	return NewTextShapeWithFont(text, f, size, opts...)
}

// NewTextShapeWithFont is NewTextShape with a caller-supplied font.
func NewTextShapeWithFont(text string, f *sfnt.Font, size float64, opts ...control.Option) (*Shape, error) {
	path, err := TextPath(text, f, size)
	if err != nil {
		return nil, err
	}
	s := NewWithPath(path, opts...)
	s.SetOrigin(geometry.Point{})
	return s, nil
}

// TextPath lays text out on a single line starting at the origin, with
// the baseline on y = 0 and y growing downward, and returns the glyph
// outlines. Runes the font has no glyph for draw its notdef glyph.
func TextPath(text string, f *sfnt.Font, size float64) (*graphics.Path, error) {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(size * 64)
	path := graphics.NewPath()
	var x fixed.Int26_6
	for _, r := range text {
		gi, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, fmt.Errorf("shape: glyph for %q: %w", r, err)
		}
		segments, err := f.LoadGlyph(&buf, gi, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("shape: outline for %q: %w", r, err)
		}
		appendSegments(path, segments, x)

		advance, err := f.GlyphAdvance(&buf, gi, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("shape: advance for %q: %w", r, err)
		}
		x += advance
	}
	return path, nil
}

// appendSegments adds one glyph's outline shifted right by dx. sfnt
// already reports y growing downward, matching the canvas.
func appendSegments(path *graphics.Path, segments sfnt.Segments, dx fixed.Int26_6) {
	pt := func(p fixed.Point26_6) (float64, float64) {
		return toFloat(p.X + dx), toFloat(p.Y)
	}
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				path.Close()
			}
			path.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			path.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			path.QuadTo(x1, y1, x2, y2)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			x3, y3 := pt(seg.Args[2])
			path.CubicTo(x1, y1, x2, y2, x3, y3)
		}
	}
	if open {
		path.Close()
	}
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
