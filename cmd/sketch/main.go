// Command sketch inspects sketch projects: resolved configuration,
// default templates, template files, and rendered scenes.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/sketch/cmd/sketch/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
