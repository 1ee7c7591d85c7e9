package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// CollectInput contains parameters for bundling files.
	CollectInput struct {
		Paths      []string `json:"paths" jsonschema:"Paths of the files to bundle, in output order"`
		Fmt        *string  `json:"fmt,omitempty" jsonschema:"Header template; every %f is replaced by the path (default: '%f:')"`
		Brace      *string  `json:"brace,omitempty" jsonschema:"Opening fence delimiter (default: three backticks)"`
		Coda       *string  `json:"coda,omitempty" jsonschema:"Closing fence delimiter (default: same as brace)"`
		IgnoreDirs bool     `json:"ignoreDirs,omitempty" jsonschema:"Skip directories instead of reporting them (default: false)"`
		IgnoreSize bool     `json:"ignoreSize,omitempty" jsonschema:"Skip files over the size limit instead of reporting them (default: false)"`
		Exclude    []string `json:"exclude,omitempty" jsonschema:"Glob patterns of paths to skip"`
	}

	// CollectOutput contains the bundle or the reasons it was refused.
	CollectOutput struct {
		Content  string   `json:"content"`
		Accepted []string `json:"accepted"`
		Skipped  []string `json:"skipped,omitempty"`
		Errors   []string `json:"errors,omitempty"`
		Summary  string   `json:"summary,omitempty"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "collect",
		Description: "Bundle files into one text block. Each file is printed under a header line and between fences tagged with its language. All paths are validated first; if any is missing, a directory, not a regular file, over 75KB or unreadable, every problem is returned in errors and no content is produced.",
	}, handleCollect)
}
