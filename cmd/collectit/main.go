// Package main implements the collectit command, which bundles files into a
// single fenced text stream.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/taigrr/collectit/internal/buildinfo"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(buildinfo.Version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}
