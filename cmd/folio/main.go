package main

import (
	"fmt"
	"log/slog"
	"os"

	_ "go.uber.org/automaxprocs"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
