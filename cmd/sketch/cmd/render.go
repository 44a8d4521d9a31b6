package cmd

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/sketch/cmd/sketch/internal/scene"
	"github.com/go-drift/sketch/pkg/graphics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a scene to display operations",
		Long: `Build the controls described by a scene file, render them into a
recording canvas and print the display operations, one per line, or as
YAML with --yaml.

A scene file lists a canvas size, an optional templates file, and a tree
of objects (control, shape, polygon or text) with frames, templates and
property overrides.`,
		Usage: "sketch render <scene.yaml> [--yaml]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	asYAML := slices.Contains(args, "--yaml")
	args = slices.DeleteFunc(slices.Clone(args), func(a string) bool { return a == "--yaml" })
	if len(args) != 1 {
		return fmt.Errorf("scene file is required\n\nUsage: sketch render <scene.yaml>")
	}

	if _, err := loadProject(); err != nil {
		return err
	}

	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	built, err := s.Build()
	if err != nil {
		return err
	}

	var rec graphics.PictureRecorder
	built.Root.RenderInContext(rec.BeginRecording(built.Size))
	ops := rec.EndRecording().Ops()

	if asYAML {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(ops); err != nil {
			return err
		}
		return enc.Close()
	}
	for _, op := range ops {
		fmt.Fprintln(stdout, op.String())
	}
	return nil
}
