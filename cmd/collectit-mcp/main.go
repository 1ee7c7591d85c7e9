// Package main implements an MCP server exposing the collectit bundler as a
// tool over stdio.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/taigrr/collectit/internal/buildinfo"
	"github.com/taigrr/collectit/internal/ctxlog"
)

func main() {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "collectit-mcp",
		Short: "MCP server for bundling files into fenced text",
		Long: `collectit-mcp is a Model Context Protocol (MCP) server that exposes a
single "collect" tool. The tool validates a list of paths and returns
their contents as one fenced, copy-paste-ready bundle, exactly as the
collectit command prints it.`,
		Example: `collectit-mcp`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug details to stderr")

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(buildinfo.Version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, verbose bool) error {
	// stdout carries the protocol, so logs must stay on stderr
	logger := ctxlog.New(cmd.ErrOrStderr(), verbose)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "collectit-mcp",
		Version: buildinfo.Version,
	}, nil)

	registerTools(server)

	logger.Info("serving on stdio", "version", buildinfo.Version)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
