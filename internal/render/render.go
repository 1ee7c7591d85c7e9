// Package render writes accepted files as fenced, headed blocks.
package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/collectit/internal/ctxlog"
	"github.com/taigrr/collectit/internal/filetype"
	"github.com/taigrr/collectit/internal/types"
)

// Emitter formats files onto an output stream.
type Emitter struct {
	format   string
	brace    string
	coda     string
	filetype filetype.Table
}

// New creates an Emitter from opts. Format and Brace are used as given, so an
// empty value yields an empty header or fence. Tags are picked from table.
func New(opts types.Options, table filetype.Table) *Emitter {
	return &Emitter{
		format:   opts.Format,
		brace:    opts.Brace,
		coda:     opts.ClosingFence(),
		filetype: table,
	}
}

// Header substitutes path for every placeholder in the header template.
func (e *Emitter) Header(path string) string {
	return strings.ReplaceAll(e.format, types.PathPlaceholder, path)
}

// OpeningFence returns the brace immediately followed by the file's tag.
func (e *Emitter) OpeningFence(path string) string {
	return e.brace + e.filetype.Pick(path)
}

// Emit writes one block per path, in order. The whole bundle is assembled in
// memory and written with a single call, so a read failure on any file leaves
// w untouched.
func (e *Emitter) Emit(ctx context.Context, w io.Writer, paths []string) error {
	log := ctxlog.FromContext(ctx)
	var buf bytes.Buffer

	for _, p := range paths {
		n, err := e.writeBlock(&buf, p)
		if err != nil {
			return err
		}
		log.Debug("emitted file", "path", p, "bytes", n)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (e *Emitter) writeBlock(buf *bytes.Buffer, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %s - %w", path, err)
	}
	defer f.Close()

	buf.WriteString(e.Header(path))
	buf.WriteByte('\n')
	buf.WriteString(e.OpeningFence(path))
	buf.WriteByte('\n')

	n, err := buf.ReadFrom(f)
	if err != nil {
		return n, fmt.Errorf("failed to read file: %s - %w", path, err)
	}

	buf.WriteString(e.coda)
	buf.WriteString("\n\n")
	return n, nil
}

// Manifest describes the given accepted outcomes without their content.
func (e *Emitter) Manifest(accepted []types.Outcome) []types.ManifestEntry {
	entries := make([]types.ManifestEntry, 0, len(accepted))
	for _, o := range accepted {
		entries = append(entries, types.ManifestEntry{
			Path:     o.Path,
			Filetype: e.filetype.Pick(o.Path),
			Size:     o.Size,
		})
	}
	return entries
}

// WriteManifest writes the manifest of accepted outcomes as a YAML sequence.
func (e *Emitter) WriteManifest(w io.Writer, accepted []types.Outcome) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(e.Manifest(accepted)); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return enc.Close()
}
