// Package collect validates input paths and classifies each one as accepted,
// rejected or skipped.
package collect

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"syscall"

	"github.com/taigrr/collectit/internal/ctxlog"
	"github.com/taigrr/collectit/internal/pathfilter"
	"github.com/taigrr/collectit/internal/types"
)

// Size ceilings in bytes. The CLI always uses DefaultMaxSize.
const (
	DefaultMaxSize int64 = 75 * 1024
	LegacyMaxSize  int64 = 25 * 1024
)

// Reasons recorded on skipped outcomes.
const (
	SkipDirectory = "IsDirectory"
	SkipOversize  = "TooLarge"
	SkipExcluded  = "Excluded"
)

// Validator classifies paths according to a fixed set of options.
type Validator struct {
	maxSize    int64
	ignoreDirs bool
	ignoreSize bool
	pathFilter *pathfilter.PathFilter
}

// New creates a Validator for opts. It fails only if an exclude pattern is
// invalid.
func New(opts types.Options) (*Validator, error) {
	pf, err := pathfilter.New(&types.PathFilterConfig{IgnoredPatterns: opts.Exclude})
	if err != nil {
		return nil, err
	}

	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	return &Validator{
		maxSize:    maxSize,
		ignoreDirs: opts.IgnoreDirs,
		ignoreSize: opts.IgnoreSize,
		pathFilter: pf,
	}, nil
}

// MaxSize returns the size ceiling in bytes.
func (v *Validator) MaxSize() int64 {
	return v.maxSize
}

// Validate checks every path and returns one outcome per path, in order. It
// never stops early: every problem is reported.
func (v *Validator) Validate(ctx context.Context, paths []string) types.Report {
	log := ctxlog.FromContext(ctx)
	report := types.Report{Outcomes: make([]types.Outcome, 0, len(paths))}

	for _, p := range paths {
		outcome := v.Check(p)
		switch outcome.Status {
		case types.StatusSkipped:
			log.Debug("skipping path", "path", p, "reason", outcome.Kind)
		case types.StatusRejected:
			log.Debug("rejecting path", "path", p, "kind", outcome.Kind)
		default:
			log.Debug("accepting path", "path", p, "size", outcome.Size)
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	return report
}

// Check classifies a single path.
func (v *Validator) Check(path string) types.Outcome {
	if pattern, ok := v.pathFilter.Match(path); ok {
		return types.Outcome{Path: path, Status: types.StatusSkipped, Kind: SkipExcluded, Message: pattern}
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return v.reject(path, ErrNotFound, err)
		}
		return v.reject(path, ErrFilesystem, err)
	}

	if info.IsDir() {
		if v.ignoreDirs {
			return types.Outcome{Path: path, Status: types.StatusSkipped, Kind: SkipDirectory}
		}
		return v.reject(path, ErrIsDirectory, nil)
	}

	if !info.Mode().IsRegular() {
		return v.reject(path, ErrNotRegularFile, nil)
	}

	if info.Size() > v.maxSize {
		if v.ignoreSize {
			return types.Outcome{Path: path, Status: types.StatusSkipped, Kind: SkipOversize, Size: info.Size()}
		}
		return v.reject(path, ErrTooLarge, nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return v.reject(path, ErrUnreadable, err)
	}
	f.Close()

	return types.Outcome{Path: path, Status: types.StatusAccepted, Size: info.Size()}
}

func (v *Validator) reject(path string, kind, cause error) types.Outcome {
	pe := &PathError{Path: path, Kind: kind, Err: cause}
	if kind == ErrTooLarge {
		pe.Limit = v.maxSize
	}
	return types.Outcome{
		Path:    path,
		Status:  types.StatusRejected,
		Kind:    KindName(kind),
		Message: pe.Error(),
		Err:     pe,
	}
}
