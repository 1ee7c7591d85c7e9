package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/collectit/internal/collect"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func setupWorkdir(t *testing.T, files map[string]string) {
	t.Helper()
	t.Chdir(t.TempDir())
	for name, content := range files {
		require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	}
}

func TestRoot_EmitsEveryFileInOrder(t *testing.T) {
	setupWorkdir(t, map[string]string{
		"b.py":           "print(1)\n",
		"a.md":           "# A\n",
		"CMakeLists.txt": "project(x)\n",
	})

	stdout, _, err := execute(t, "b.py", "a.md", "CMakeLists.txt")

	require.NoError(t, err)
	assert.Equal(t,
		"b.py:\n```python\nprint(1)\n```\n\n"+
			"a.md:\n```markdown\n# A\n```\n\n"+
			"CMakeLists.txt:\n```cmake\nproject(x)\n```\n\n",
		stdout)
}

func TestRoot_FormatBraceAndCoda(t *testing.T) {
	setupWorkdir(t, map[string]string{"a.txt": "hello\n"})

	t.Run("custom format replaces every placeholder", func(t *testing.T) {
		stdout, _, err := execute(t, "--fmt", "[%f] (%f)", "a.txt")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "[a.txt] (a.txt)\n"), stdout)
	})

	t.Run("coda defaults to brace", func(t *testing.T) {
		stdout, _, err := execute(t, "-b", "~~~", "a.txt")

		require.NoError(t, err)
		assert.Equal(t, "a.txt:\n~~~txt\nhello\n~~~\n\n", stdout)
	})

	t.Run("explicit coda", func(t *testing.T) {
		stdout, _, err := execute(t, "-b", "<<", "-c", ">>", "a.txt")

		require.NoError(t, err)
		assert.Equal(t, "a.txt:\n<<txt\nhello\n>>\n\n", stdout)
	})
}

func TestRoot_EmptyFile(t *testing.T) {
	setupWorkdir(t, map[string]string{"empty.c": ""})

	stdout, _, err := execute(t, "empty.c")

	require.NoError(t, err)
	assert.Equal(t, "empty.c:\n```cpp\n```\n\n", stdout)
}

func TestRoot_ValidationFailurePrintsEveryDiagnostic(t *testing.T) {
	setupWorkdir(t, map[string]string{
		"ok.txt":  "fine\n",
		"big.txt": strings.Repeat("x", int(collect.DefaultMaxSize)+1),
	})
	require.NoError(t, os.Mkdir("dir", 0o755))

	stdout, _, err := execute(t, "ok.txt", "missing.txt", "dir", "big.txt")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errValidation))
	assert.Equal(t,
		"[Error: file 'missing.txt' does not exist]\n"+
			"[Error: 'dir' is a directory]\n"+
			"[Error: 'big.txt' exceeds 75KB]\n",
		stdout)
	assert.NotContains(t, stdout, "fine")
}

func TestRoot_IgnoreFlags(t *testing.T) {
	setupWorkdir(t, map[string]string{
		"ok.txt":  "fine\n",
		"big.txt": strings.Repeat("x", int(collect.DefaultMaxSize)+1),
	})
	require.NoError(t, os.Mkdir("dir", 0o755))

	stdout, _, err := execute(t, "--ignore_dirs", "--ignore_size", "dir", "ok.txt", "big.txt")

	require.NoError(t, err)
	assert.Equal(t, "ok.txt:\n```txt\nfine\n```\n\n", stdout)
}

func TestRoot_Exclude(t *testing.T) {
	setupWorkdir(t, map[string]string{
		"keep.go":     "package keep\n",
		"go.sum":      "sum\n",
		"vendor/x.go": "package x\n",
	})

	stdout, _, err := execute(t, "-x", "*.sum", "-x", "vendor/**", "keep.go", "go.sum", "vendor/x.go")

	require.NoError(t, err)
	assert.Equal(t, "keep.go:\n```go\npackage keep\n```\n\n", stdout)
}

func TestRoot_Filetypes(t *testing.T) {
	setupWorkdir(t, map[string]string{
		"types.yaml": "extensions:\n  .go: golang\n",
		"main.go":    "package main\n",
	})

	stdout, _, err := execute(t, "--filetypes", "types.yaml", "main.go")

	require.NoError(t, err)
	assert.Equal(t, "main.go:\n```golang\npackage main\n```\n\n", stdout)

	_, _, err = execute(t, "--filetypes", "nope.yaml", "main.go")
	require.Error(t, err)
}

func TestRoot_List(t *testing.T) {
	setupWorkdir(t, map[string]string{"main.cc": "int x;\n"})

	stdout, _, err := execute(t, "--list", "main.cc")

	require.NoError(t, err)
	assert.Equal(t, "- path: main.cc\n  filetype: cpp\n  size: 7\n", stdout)
}

func TestRoot_NoPaths(t *testing.T) {
	setupWorkdir(t, nil)

	stdout, _, err := execute(t, "--ignore_dirs")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errNoPaths))
	assert.Equal(t, "No paths provided.\n", stdout)
}

func TestRoot_HelpWinsOverPaths(t *testing.T) {
	setupWorkdir(t, nil)

	stdout, _, err := execute(t, "--help", "missing.txt", "--ignore_size")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "--ignore_dirs")
	assert.NotContains(t, stdout, "does not exist")
}

func TestRoot_BadFlag(t *testing.T) {
	setupWorkdir(t, nil)

	stdout, _, err := execute(t, "--bogus", "a.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse arguments")
	assert.Contains(t, stdout, "unknown flag: --bogus")
	assert.Contains(t, stdout, "Usage:")
}

func TestRoot_DebugLogsGoToStderr(t *testing.T) {
	setupWorkdir(t, map[string]string{"a.txt": "x"})

	stdout, stderr, err := execute(t, "-v", "a.txt")

	require.NoError(t, err)
	assert.NotContains(t, stdout, "level=")
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "path=a.txt")
}

func TestRoot_ExplicitEmptyFormatAndBrace(t *testing.T) {
	setupWorkdir(t, map[string]string{"a.txt": "x\n"})

	stdout, _, err := execute(t, "-f", "", "-b", "", "a.txt")

	require.NoError(t, err)
	assert.Equal(t, "\ntxt\nx\n\n\n", stdout)
}

func TestRoot_RejectionHintsOnStderr(t *testing.T) {
	setupWorkdir(t, map[string]string{
		"big.txt": strings.Repeat("x", int(collect.DefaultMaxSize)+1),
	})
	require.NoError(t, os.Mkdir("dir", 0o755))

	stdout, stderr, err := execute(t, "dir", "big.txt", "missing.txt")

	require.Error(t, err)
	assert.Contains(t, stderr, "--ignore_dirs")
	assert.Contains(t, stderr, "--ignore_size")
	assert.NotContains(t, stdout, "--ignore")
}

func TestRoot_NotFoundHasNoHint(t *testing.T) {
	setupWorkdir(t, nil)

	_, stderr, err := execute(t, "missing.txt")

	require.Error(t, err)
	assert.NotContains(t, stderr, "--ignore")
}
