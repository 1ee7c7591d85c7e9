package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/collectit/internal/collect"
	"github.com/taigrr/collectit/internal/ctxlog"
	"github.com/taigrr/collectit/internal/filetype"
	"github.com/taigrr/collectit/internal/render"
	"github.com/taigrr/collectit/internal/types"
)

var errNoPaths = errors.New("no paths provided")

func handleCollect(ctx context.Context, req *mcp.CallToolRequest, input CollectInput) (*mcp.CallToolResult, CollectOutput, error) {
	var paths []string
	for _, p := range input.Paths {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return &mcp.CallToolResult{IsError: true}, CollectOutput{}, errNoPaths
	}

	opts := types.Options{
		Format:     valueOr(input.Fmt, types.DefaultFormat),
		Brace:      valueOr(input.Brace, types.DefaultBrace),
		Coda:       valueOr(input.Coda, ""),
		IgnoreDirs: input.IgnoreDirs,
		IgnoreSize: input.IgnoreSize,
		Exclude:    input.Exclude,
		Paths:      paths,
	}

	validator, err := collect.New(opts)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CollectOutput{}, err
	}

	report := validator.Validate(ctx, opts.Paths)
	output := CollectOutput{
		Accepted: outcomePaths(report.Accepted()),
		Skipped:  outcomePaths(report.Skipped()),
	}

	// Rejections are reported through the structured output rather than a Go
	// error, which the SDK would turn into plain text and drop the output.
	if !report.OK() {
		output.Errors = report.Diagnostics()
		output.Summary = fmt.Sprintf("%d of %d paths rejected", len(output.Errors), len(paths))
		if hint := ignoreHint(report); hint != "" {
			output.Summary += "; " + hint
		}
		ctxlog.FromContext(ctx).Debug("collect rejected", "errors", len(output.Errors))
		return &mcp.CallToolResult{IsError: true}, output, nil
	}

	var sb strings.Builder
	if err := render.New(opts, filetype.Default()).Emit(ctx, &sb, output.Accepted); err != nil {
		return &mcp.CallToolResult{IsError: true}, output, err
	}
	output.Content = sb.String()

	return nil, output, nil
}

// ignoreHint names the input flags that would have skipped the rejections.
func ignoreHint(report types.Report) string {
	var dirs, oversize bool
	for _, o := range report.Rejected() {
		switch {
		case errors.Is(o.Err, collect.ErrIsDirectory):
			dirs = true
		case errors.Is(o.Err, collect.ErrTooLarge):
			oversize = true
		}
	}

	var hints []string
	if dirs {
		hints = append(hints, "set ignoreDirs to skip directories")
	}
	if oversize {
		hints = append(hints, "set ignoreSize to skip oversize files")
	}
	return strings.Join(hints, ", ")
}

func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

func outcomePaths(outcomes []types.Outcome) []string {
	paths := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		paths = append(paths, o.Path)
	}
	return paths
}
