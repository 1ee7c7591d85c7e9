// Package types defines the data structures shared by the collectit commands.
package types

type (
	// Options configures a single collect run.
	Options struct {
		Format     string   `json:"fmt" yaml:"fmt"`
		Brace      string   `json:"brace" yaml:"brace"`
		Coda       string   `json:"coda,omitempty" yaml:"coda,omitempty"` // empty means Brace
		IgnoreDirs bool     `json:"ignoreDirs,omitempty" yaml:"ignoreDirs,omitempty"`
		IgnoreSize bool     `json:"ignoreSize,omitempty" yaml:"ignoreSize,omitempty"`
		MaxSize    int64    `json:"maxSize,omitempty" yaml:"maxSize,omitempty"` // bytes, 0 means the default ceiling
		Exclude    []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
		Paths      []string `json:"paths" yaml:"paths"`
	}

	// PathFilterConfig contains configuration for the path filter.
	PathFilterConfig struct {
		IgnoredPatterns []string `json:"ignoredPatterns"`
	}
)

const (
	// DefaultFormat is the header template used when none is given.
	DefaultFormat = "%f:"
	// DefaultBrace is the fence used when none is given.
	DefaultBrace = "```"
	// PathPlaceholder is replaced by the file path in the header template.
	PathPlaceholder = "%f"
)

// ClosingFence returns the coda, falling back to the opening fence.
func (o Options) ClosingFence() string {
	if o.Coda == "" {
		return o.Brace
	}
	return o.Coda
}
