// Package scene builds a control tree from a YAML scene description, for
// the render command.
//
// A scene file looks like:
//
//	size: [320, 240]
//	templates: styles.yaml
//	objects:
//	  - kind: control
//	    name: card
//	    frame: [20, 20, 200, 120]
//	    template: card
//	    style:
//	      backgroundColor: "#336699"
//	    children:
//	      - kind: polygon
//	        frame: [10, 10, 40, 40]
//	        sides: 5
//	  - kind: text
//	    text: Hello
//	    fontSize: 32
//
// Entries under style may name any property of the object's kind and are
// applied in file order after the named template.
package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/sketch/pkg/control"
	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/shape"
	"github.com/go-drift/sketch/pkg/template"
)

// Object kinds accepted in scene files.
const (
	KindControl = "control"
	KindShape   = "shape"
	KindPolygon = "polygon"
	KindText    = "text"
)

// Scene is a parsed scene file.
type Scene struct {
	Size      []float64 `yaml:"size"`
	Templates string    `yaml:"templates,omitempty"`
	Objects   []Object  `yaml:"objects"`

	dir string
}

// Object describes one control and its children.
type Object struct {
	Kind     string    `yaml:"kind"`
	Name     string    `yaml:"name,omitempty"`
	Frame    []float64 `yaml:"frame,omitempty"`
	Template string    `yaml:"template,omitempty"`
	Style    yaml.Node `yaml:"style,omitempty"`
	Sides    int       `yaml:"sides,omitempty"`
	Phase    float64   `yaml:"phase,omitempty"`
	Text     string    `yaml:"text,omitempty"`
	FontSize float64   `yaml:"fontSize,omitempty"`
	Children []Object  `yaml:"children,omitempty"`
}

// Built is the result of building a scene.
type Built struct {
	Root  *control.Control
	Size  geometry.Size
	Named map[string]*control.Control
}

// Load reads and parses a scene file. Relative template paths are
// resolved against the scene's directory.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Parse decodes a scene from YAML.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if len(s.Size) != 2 || s.Size[0] <= 0 || s.Size[1] <= 0 {
		return nil, fmt.Errorf("size must be [width, height] with positive values")
	}
	return &s, nil
}

// Build constructs the control tree under a white canvas the size of
// the scene.
func (s *Scene) Build() (*Built, error) {
	var templates map[string]*template.Template
	if s.Templates != "" {
		path := s.Templates
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.dir, path)
		}
		var err error
		if templates, err = template.Load(path); err != nil {
			return nil, err
		}
	}

	size := geometry.Sz(s.Size[0], s.Size[1])
	b := &Built{
		Root:  control.NewCanvas(geometry.Rect{Size: size}),
		Size:  size,
		Named: make(map[string]*control.Control),
	}
	for i := range s.Objects {
		if err := b.add(b.Root, &s.Objects[i], templates); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Built) add(parent *control.Control, o *Object, templates map[string]*template.Template) error {
	c, err := o.build()
	if err != nil {
		return o.errorf("%w", err)
	}
	if o.Template != "" {
		tpl, ok := templates[o.Template]
		if !ok {
			return o.errorf("unknown template %q", o.Template)
		}
		c.ApplyTemplate(tpl)
	}
	if o.Style.Kind != 0 {
		style, err := template.DecodeMapping(&o.Style)
		if err != nil {
			return o.errorf("style: %w", err)
		}
		for _, name := range style.Names() {
			v, _ := style.Get(name)
			if err := c.Set(name, v); err != nil {
				return o.errorf("style: %w", err)
			}
		}
	}
	if err := parent.Add(c); err != nil {
		return o.errorf("%w", err)
	}
	if o.Name != "" {
		if _, dup := b.Named[o.Name]; dup {
			return o.errorf("duplicate name")
		}
		b.Named[o.Name] = c
	}
	for i := range o.Children {
		if err := b.add(c, &o.Children[i], templates); err != nil {
			return err
		}
	}
	return nil
}

func (o *Object) build() (*control.Control, error) {
	if o.Kind == KindText {
		return o.buildText()
	}
	frame, err := o.frame()
	if err != nil {
		return nil, err
	}
	switch o.Kind {
	case KindControl, "":
		return control.New(frame), nil
	case KindShape:
		return shape.New(frame).Control, nil
	case KindPolygon:
		sides := o.Sides
		if sides == 0 {
			sides = 6
		}
		return shape.NewRegularPolygon(frame, sides, o.Phase).Control, nil
	default:
		return nil, fmt.Errorf("unknown kind %q", o.Kind)
	}
}

func (o *Object) buildText() (*control.Control, error) {
	size := o.FontSize
	if size <= 0 {
		size = 17
	}
	s, err := shape.NewTextShape(o.Text, size)
	if err != nil {
		return nil, err
	}
	if len(o.Frame) > 0 {
		frame, err := o.frame()
		if err != nil {
			return nil, err
		}
		s.SetOrigin(frame.Origin)
	}
	return s.Control, nil
}

func (o *Object) frame() (geometry.Rect, error) {
	if len(o.Frame) != 4 {
		return geometry.Rect{}, fmt.Errorf("frame must be [x, y, width, height]")
	}
	return geometry.RectXYWH(o.Frame[0], o.Frame[1], o.Frame[2], o.Frame[3]), nil
}

func (o *Object) errorf(format string, args ...any) error {
	label := o.Kind
	if o.Name != "" {
		label = fmt.Sprintf("%s %q", o.Kind, o.Name)
	}
	return fmt.Errorf("%s: %w", label, fmt.Errorf(format, args...))
}
