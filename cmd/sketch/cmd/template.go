package cmd

import (
	"fmt"
	"slices"

	"github.com/go-drift/sketch/pkg/template"
)

func init() {
	RegisterCommand(&Command{
		Name:  "template",
		Short: "Print default templates and template files",
		Long: `Print style templates as YAML, or TOML with --toml.

  sketch template default <kind>   The default template of a kind, after
                                   the configured templates file is merged.
  sketch template show <file>      Every template in a YAML or TOML file.
  sketch template kinds            The kinds that have default templates.`,
		Usage: "sketch template <default|show|kinds> [arg] [--toml]",
		Run:   runTemplate,
	})
}

func runTemplate(args []string) error {
	format := template.FormatYAML
	args = slices.DeleteFunc(slices.Clone(args), func(a string) bool {
		if a == "--toml" {
			format = template.FormatTOML
			return true
		}
		return false
	})
	if len(args) == 0 {
		return fmt.Errorf("subcommand is required (default, show or kinds)\n\nUsage: sketch template <default|show|kinds> [arg]")
	}

	if _, err := loadProject(); err != nil {
		return err
	}

	switch args[0] {
	case "kinds":
		for _, kind := range template.Kinds() {
			fmt.Fprintln(stdout, kind)
		}
		return nil
	case "default":
		if len(args) != 2 {
			return fmt.Errorf("kind is required\n\nUsage: sketch template default <kind>")
		}
		kind := args[1]
		if !slices.Contains(template.Kinds(), kind) {
			return fmt.Errorf("no default template for kind %q", kind)
		}
		return printTemplates(map[string]*template.Template{kind: template.Default(kind)}, format)
	case "show":
		if len(args) != 2 {
			return fmt.Errorf("file is required\n\nUsage: sketch template show <file>")
		}
		templates, err := template.Load(args[1])
		if err != nil {
			return err
		}
		return printTemplates(templates, format)
	default:
		return fmt.Errorf("unknown subcommand %q (use default, show or kinds)", args[0])
	}
}

func printTemplates(templates map[string]*template.Template, format template.Format) error {
	data, err := template.Marshal(templates, format)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
