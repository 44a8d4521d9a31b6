package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/sketch/pkg/template"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show resolved configuration",
		Long: `Show the configuration sketch resolves for the current project.

Settings come from sketch.yaml or sketch.toml in the project directory,
overridden by SKETCH_* environment variables and a .env file. The
project directory is the nearest parent holding go.mod, or --dir.`,
		Usage: "sketch status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	cfg := p.Config

	module := p.ModulePath
	if module == "" {
		module = "(no go.mod)"
	}
	source := cfg.Source
	if source == "" {
		source = "(defaults)"
	}

	fmt.Fprintf(stdout, "Project: %s\n", p.Root)
	fmt.Fprintf(stdout, "Module:  %s\n", module)
	fmt.Fprintf(stdout, "Config:  %s\n", source)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Logging:")
	fmt.Fprintf(stdout, "  %-10s %s\n", "level:", cfg.Log.Level)
	fmt.Fprintf(stdout, "  %-10s %s\n", "format:", cfg.Log.Format)
	fmt.Fprintf(stdout, "  %-10s %t\n", "verbose:", cfg.Log.Verbose)
	fmt.Fprintln(stdout)

	policy := cfg.Policy()
	fmt.Fprintln(stdout, "Animation:")
	fmt.Fprintf(stdout, "  %-10s %s\n", "duration:", policy.Duration())
	fmt.Fprintf(stdout, "  %-10s %s\n", "delay:", policy.Delay())
	fmt.Fprintf(stdout, "  %-10s %s\n", "options:", policy.Options())
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Templates:")
	if cfg.Templates != "" {
		fmt.Fprintf(stdout, "  %-10s %s (%s)\n", "file:", cfg.Templates, strings.Join(p.Kinds, ", "))
	}
	fmt.Fprintf(stdout, "  %-10s %s\n", "kinds:", strings.Join(template.Kinds(), ", "))
	return nil
}
