// Command bliftax reads a BLIF file, minimizes every gate's cover with
// the star+sharp+branching optimizer, and writes the optimized model to
// stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/NigoroJr/bliftax/blif"
	"github.com/NigoroJr/bliftax/optimize"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: %s <file.blif>", progName(args))
	}

	f, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("bliftax: %w", err)
	}
	defer f.Close()

	m, err := blif.Parse(f)
	if err != nil {
		return fmt.Errorf("bliftax: %w", err)
	}

	for _, g := range m.Gates {
		g.Cover = optimize.Optimize(g.Cover)
	}

	if err := blif.Write(stdout, m); err != nil {
		return fmt.Errorf("bliftax: %w", err)
	}
	return nil
}

func progName(args []string) string {
	if len(args) == 0 {
		return "bliftax"
	}
	return args[0]
}
