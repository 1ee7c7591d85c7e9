// Package filetype infers the fence language tag for a file path.
package filetype

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table maps base names and extensions to language tags. Extension keys
// include the leading dot.
type Table struct {
	Names      map[string]string `yaml:"names"`
	Extensions map[string]string `yaml:"extensions"`
}

var builtin = Table{
	Names: map[string]string{
		"CMakeLists.txt": "cmake",
		"Dockerfile":     "dockerfile",
	},
	Extensions: map[string]string{
		".cpp": "cpp",
		".cxx": "cpp",
		".cc":  "cpp",
		".c":   "cpp",
		".py":  "python",
		".md":  "markdown",
	},
}

// Default returns a copy of the built-in table.
func Default() Table {
	return Table{
		Names:      maps.Clone(builtin.Names),
		Extensions: maps.Clone(builtin.Extensions),
	}
}

// Pick returns the language tag for path using the built-in table.
func Pick(path string) string {
	return builtin.Pick(path)
}

// Pick returns the language tag for path. Base names are checked first, then
// the extension. An unmapped extension is returned without its dot, and a path
// with no extension yields "".
func (t Table) Pick(path string) string {
	base := filepath.Base(path)
	if tag, ok := t.Names[base]; ok {
		return tag
	}

	ext := extension(base)
	if ext == "" {
		return ""
	}
	if tag, ok := t.Extensions[ext]; ok {
		return tag
	}
	return strings.TrimPrefix(ext, ".")
}

// extension returns the final ".xxx" of base. A leading dot alone, as in
// ".bashrc", does not start an extension.
func extension(base string) string {
	if base == "." || base == ".." {
		return ""
	}
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return ""
	}
	return base[idx:]
}

// Merge returns a copy of t with overrides applied on top. Extension keys
// missing their leading dot are normalized.
func (t Table) Merge(overrides Table) Table {
	out := Table{
		Names:      maps.Clone(t.Names),
		Extensions: maps.Clone(t.Extensions),
	}
	if out.Names == nil {
		out.Names = make(map[string]string)
	}
	if out.Extensions == nil {
		out.Extensions = make(map[string]string)
	}

	maps.Copy(out.Names, overrides.Names)
	for ext, tag := range overrides.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out.Extensions[ext] = tag
	}
	return out
}

// Parse decodes a YAML override document.
func Parse(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("failed to parse filetype table: %w", err)
	}
	return t, nil
}

// Load reads a YAML override file and merges it over the built-in table.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read filetype table: %s - %w", path, err)
	}

	overrides, err := Parse(data)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}

	return Default().Merge(overrides), nil
}
