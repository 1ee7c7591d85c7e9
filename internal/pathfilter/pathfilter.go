// Package pathfilter matches input paths against exclusion globs.
package pathfilter

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/taigrr/collectit/internal/types"
)

// PathFilter excludes paths matching any of its glob patterns.
//
// Patterns support "**" (any run of characters, slashes included), "*" (any
// run without a slash) and "?" (one non-slash character). A pattern without a
// slash is also tried against the base name, so "*.log" excludes "a/b.log".
type PathFilter struct {
	patterns []pattern
}

type pattern struct {
	raw      string
	re       *regexp.Regexp
	baseOnly bool
}

// New compiles the configured patterns. A nil config yields a filter that
// excludes nothing.
func New(config *types.PathFilterConfig) (*PathFilter, error) {
	pf := &PathFilter{}
	if config == nil {
		return pf, nil
	}

	for _, raw := range config.IgnoredPatterns {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		re, err := compileGlob(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", raw, err)
		}
		pf.patterns = append(pf.patterns, pattern{
			raw:      raw,
			re:       re,
			baseOnly: !strings.Contains(normalize(raw), "/"),
		})
	}

	return pf, nil
}

// compileGlob converts a glob pattern to an anchored regex.
func compileGlob(glob string) (*regexp.Regexp, error) {
	// Escape all regex special chars first
	expr := regexp.QuoteMeta(normalize(glob))

	// Convert glob patterns (unescape the escaped versions)
	expr = strings.ReplaceAll(expr, `\*\*`, ".*")
	expr = strings.ReplaceAll(expr, `\*`, "[^/]*")
	expr = strings.ReplaceAll(expr, `\?`, "[^/]")

	return regexp.Compile("^" + expr + "$")
}

func normalize(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// Match returns the first pattern matching p, if any.
func (pf *PathFilter) Match(p string) (string, bool) {
	normalized := normalize(p)
	cleaned := strings.TrimPrefix(path.Clean(normalized), "./")
	base := path.Base(cleaned)

	for _, pat := range pf.patterns {
		if pat.re.MatchString(normalized) || pat.re.MatchString(cleaned) {
			return pat.raw, true
		}
		if pat.baseOnly && pat.re.MatchString(base) {
			return pat.raw, true
		}
	}
	return "", false
}
