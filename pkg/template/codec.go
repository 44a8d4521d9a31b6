package template

import (
	"encoding"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/sketch/pkg/geometry"
	"github.com/go-drift/sketch/pkg/graphics"
)

// Format is a template file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("template: unsupported file extension %q", filepath.Ext(path))
	}
}

// Load reads a template file: a top-level mapping from kind to a mapping
// of property name to value.
func Load(path string) (map[string]*Template, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tpls, err := Unmarshal(data, format)
	if err != nil {
		return nil, fmt.Errorf("template: %s: %w", path, err)
	}
	return tpls, nil
}

// Save writes templates to path, choosing the format from its extension.
func Save(path string, templates map[string]*Template) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Marshal(templates, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadDefaults reads path and merges each template into its kind's
// default. It returns the kinds updated, sorted.
func LoadDefaults(path string) ([]string, error) {
	tpls, err := Load(path)
	if err != nil {
		return nil, err
	}
	kinds := sortedKinds(tpls)
	for _, kind := range kinds {
		Default(kind).Merge(tpls[kind])
	}
	return kinds, nil
}

// Unmarshal decodes templates. YAML keeps the file's property order; TOML
// tables are unordered, so their entries follow the kind's default order
// with unknown names appended alphabetically.
func Unmarshal(data []byte, format Format) (map[string]*Template, error) {
	switch format {
	case FormatYAML:
		return unmarshalYAML(data)
	case FormatTOML:
		return unmarshalTOML(data)
	default:
		return nil, fmt.Errorf("template: unknown format %d", format)
	}
}

// Marshal encodes templates with kinds sorted and properties in template
// order.
func Marshal(templates map[string]*Template, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return marshalYAML(templates)
	case FormatTOML:
		return marshalTOML(templates)
	default:
		return nil, fmt.Errorf("template: unknown format %d", format)
	}
}

func unmarshalYAML(data []byte) (map[string]*Template, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	out := make(map[string]*Template)
	if doc.Kind == 0 {
		return out, nil
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of kinds", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		kind, body := root.Content[i].Value, root.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: kind %q: expected a mapping of properties", body.Line, kind)
		}
		tpl, err := DecodeMapping(body)
		if err != nil {
			return nil, fmt.Errorf("kind %q: %w", kind, err)
		}
		out[kind] = tpl
	}
	return out, nil
}

// DecodeMapping decodes a YAML mapping of property names to values into a
// template, keeping the mapping's order.
func DecodeMapping(node *yaml.Node) (*Template, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of properties", node.Line)
	}
	tpl := New()
	for j := 0; j+1 < len(node.Content); j += 2 {
		name, value := node.Content[j].Value, node.Content[j+1]
		v, err := decodeValue(value, TypeOf(name))
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", value.Line, name, err)
		}
		tpl.Set(name, v)
	}
	return tpl, nil
}

func unmarshalTOML(data []byte) (map[string]*Template, error) {
	var raw map[string]map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]*Template, len(raw))
	for kind, props := range raw {
		tpl := New()
		for _, name := range canonicalOrder(kind, props) {
			var node yaml.Node
			if err := node.Encode(props[name]); err != nil {
				return nil, fmt.Errorf("%s.%s: %w", kind, name, err)
			}
			v, err := decodeValue(&node, TypeOf(name))
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", kind, name, err)
			}
			tpl.Set(name, v)
		}
		out[kind] = tpl
	}
	return out, nil
}

func canonicalOrder(kind string, props map[string]any) []string {
	var names []string
	for _, name := range Default(kind).Names() {
		if _, ok := props[name]; ok {
			names = append(names, name)
		}
	}
	var rest []string
	for name := range props {
		if !slices.Contains(names, name) {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	return append(names, rest...)
}

func marshalYAML(templates map[string]*Template) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, kind := range sortedKinds(templates) {
		body := &yaml.Node{Kind: yaml.MappingNode}
		tpl := templates[kind]
		for _, name := range tpl.names {
			value := &yaml.Node{}
			if err := value.Encode(plainValue(tpl.values[name])); err != nil {
				return nil, fmt.Errorf("template: %s.%s: %w", kind, name, err)
			}
			if value.Kind == yaml.SequenceNode && isScalarList(value) {
				value.Style = yaml.FlowStyle
			}
			body.Content = append(body.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: name}, value)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: kind}, body)
	}
	return yaml.Marshal(root)
}

func marshalTOML(templates map[string]*Template) ([]byte, error) {
	doc := make(map[string]map[string]any, len(templates))
	for kind, tpl := range templates {
		props := make(map[string]any, tpl.Len())
		for _, name := range tpl.names {
			// TOML has no null.
			if v := plainValue(tpl.values[name]); v != nil {
				props[name] = v
			}
		}
		doc[kind] = props
	}
	return toml.Marshal(doc)
}

func sortedKinds(templates map[string]*Template) []string {
	kinds := make([]string, 0, len(templates))
	for k := range templates {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

func isScalarList(n *yaml.Node) bool {
	for _, c := range n.Content {
		if c.Kind != yaml.ScalarNode {
			return false
		}
	}
	return true
}

// plainValue converts a style value to the scalars, lists and maps used
// in files.
func plainValue(v any) any {
	switch v := v.(type) {
	case nil:
		return nil
	case geometry.Point:
		return []float64{v.X, v.Y}
	case geometry.Size:
		return []float64{v.Width, v.Height}
	case geometry.Rect:
		return []float64{v.Origin.X, v.Origin.Y, v.Size.Width, v.Size.Height}
	case geometry.Affine:
		return v[:]
	case geometry.Transform3D:
		return v[:]
	case *graphics.Path:
		if v == nil {
			return nil
		}
		cmds := make([]map[string]any, len(v.Commands))
		for i, c := range v.Commands {
			cmd := map[string]any{"op": c.Op.String()}
			if len(c.Args) > 0 {
				cmd["args"] = c.Args
			}
			cmds[i] = cmd
		}
		return cmds
	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return nil
		}
		return string(text)
	default:
		return v
	}
}

var (
	pointType    = reflect.TypeOf(geometry.Point{})
	sizeType     = reflect.TypeOf(geometry.Size{})
	rectType     = reflect.TypeOf(geometry.Rect{})
	pathType     = reflect.TypeOf((*graphics.Path)(nil))
	textUnmarshT = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// decodeValue decodes node into typ. With no registered type the value is
// decoded generically and integers become float64.
func decodeValue(node *yaml.Node, typ reflect.Type) (any, error) {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		if typ != nil && typ.Kind() == reflect.Pointer {
			return reflect.Zero(typ).Interface(), nil
		}
		return nil, nil
	}
	if typ == nil {
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		if i, ok := v.(int); ok {
			return float64(i), nil
		}
		return v, nil
	}

	switch typ {
	case pointType, sizeType, rectType:
		if node.Kind == yaml.SequenceNode {
			return decodeFloats(node, typ)
		}
	case pathType:
		return decodePath(node)
	}

	if node.Kind == yaml.ScalarNode && reflect.PointerTo(typ).Implements(textUnmarshT) {
		ptr := reflect.New(typ)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(node.Value)); err != nil {
			return nil, err
		}
		return ptr.Elem().Interface(), nil
	}
	if typ.Kind() == reflect.Array && typ.Elem().Kind() == reflect.Float64 {
		return decodeFloats(node, typ)
	}

	ptr := reflect.New(typ)
	if err := node.Decode(ptr.Interface()); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}

func decodeFloats(node *yaml.Node, typ reflect.Type) (any, error) {
	var fs []float64
	if err := node.Decode(&fs); err != nil {
		return nil, err
	}
	switch typ {
	case pointType:
		if len(fs) != 2 {
			return nil, fmt.Errorf("point needs 2 numbers, got %d", len(fs))
		}
		return geometry.Pt(fs[0], fs[1]), nil
	case sizeType:
		if len(fs) != 2 {
			return nil, fmt.Errorf("size needs 2 numbers, got %d", len(fs))
		}
		return geometry.Sz(fs[0], fs[1]), nil
	case rectType:
		if len(fs) != 4 {
			return nil, fmt.Errorf("rect needs 4 numbers, got %d", len(fs))
		}
		return geometry.RectXYWH(fs[0], fs[1], fs[2], fs[3]), nil
	}
	if len(fs) != typ.Len() {
		return nil, fmt.Errorf("%s needs %d numbers, got %d", typ, typ.Len(), len(fs))
	}
	arr := reflect.New(typ).Elem()
	for i, f := range fs {
		arr.Index(i).SetFloat(f)
	}
	return arr.Interface(), nil
}

func decodePath(node *yaml.Node) (any, error) {
	var cmds []struct {
		Op   string    `yaml:"op"`
		Args []float64 `yaml:"args"`
	}
	if err := node.Decode(&cmds); err != nil {
		return nil, err
	}
	p := graphics.NewPath()
	for _, c := range cmds {
		var op graphics.PathOp
		if err := op.UnmarshalText([]byte(c.Op)); err != nil {
			return nil, err
		}
		p.Commands = append(p.Commands, graphics.PathCommand{Op: op, Args: c.Args})
	}
	return p, nil
}
