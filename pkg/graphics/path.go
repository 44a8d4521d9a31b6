package graphics

import (
	"fmt"
	"math"

	"github.com/go-drift/sketch/pkg/geometry"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o PathOp) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *PathOp) UnmarshalText(text []byte) error {
	for op := PathOpMoveTo; op <= PathOpClose; op++ {
		if op.String() == string(text) {
			*o = op
			return nil
		}
	}
	return fmt.Errorf("graphics: unknown path op %q", text)
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    `yaml:"op" toml:"op"`
	Args []float64 `yaml:"args,omitempty,flow" toml:"args,omitempty"`
}

// Path is a vector outline used for shapes and shadow paths.
//
// Paths are values: Clone before handing one to a second owner.
type Path struct {
	Commands []PathCommand `yaml:"commands" toml:"commands"`
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpQuadTo, Args: []float64{x1, y1, x2, y2}})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpCubicTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// AddPath appends every command of other mapped through tf.
func (p *Path) AddPath(other *Path, tf geometry.Affine) {
	if other == nil {
		return
	}
	for _, cmd := range other.Commands {
		args := make([]float64, len(cmd.Args))
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			pt := tf.Apply(geometry.Pt(cmd.Args[i], cmd.Args[i+1]))
			args[i], args[i+1] = pt.X, pt.Y
		}
		p.Commands = append(p.Commands, PathCommand{Op: cmd.Op, Args: args})
	}
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Clone returns a deep copy of p. Cloning nil yields nil.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: append([]float64(nil), cmd.Args...)}
	}
	return out
}

// Bounds returns the bounding box of every point in the path, control
// points included.
func (p *Path) Bounds() geometry.Rect {
	if p.IsEmpty() {
		return geometry.Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			minX = math.Min(minX, cmd.Args[i])
			maxX = math.Max(maxX, cmd.Args[i])
			minY = math.Min(minY, cmd.Args[i+1])
			maxY = math.Max(maxY, cmd.Args[i+1])
		}
	}
	if math.IsInf(minX, 1) {
		return geometry.Rect{}
	}
	return geometry.RectXYWH(minX, minY, maxX-minX, maxY-minY)
}

// Equal reports whether p and o contain the same commands.
func (p *Path) Equal(o *Path) bool {
	if p.IsEmpty() || o.IsEmpty() {
		return p.IsEmpty() == o.IsEmpty()
	}
	if len(p.Commands) != len(o.Commands) {
		return false
	}
	for i := range p.Commands {
		a, b := p.Commands[i], o.Commands[i]
		if a.Op != b.Op || len(a.Args) != len(b.Args) {
			return false
		}
		for j := range a.Args {
			if a.Args[j] != b.Args[j] {
				return false
			}
		}
	}
	return true
}
