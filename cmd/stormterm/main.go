// Package main is the entry point for the stormterm settings tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dshills/stormterm/internal/cli"
	"github.com/dshills/stormterm/internal/settings"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cli.Execute(context.Background()); err != nil {
		// Fatal load errors already printed a fallback notice.
		var loadErr *settings.LoadError
		if errors.As(err, &loadErr) {
			return 2
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
