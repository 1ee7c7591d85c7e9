package types

// Status is the classification of a single input path.
type Status string

const (
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusSkipped  Status = "skipped"
)

type (
	// Outcome is the validation result for one input path.
	Outcome struct {
		Path    string `json:"path" yaml:"path"`
		Status  Status `json:"status" yaml:"status"`
		Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
		Message string `json:"message,omitempty" yaml:"message,omitempty"`
		Size    int64  `json:"size,omitempty" yaml:"size,omitempty"`
		Err     error  `json:"-" yaml:"-"` // set on rejected outcomes
	}

	// Report holds one outcome per input path, in input order.
	Report struct {
		Outcomes []Outcome `json:"outcomes" yaml:"outcomes"`
	}

	// ManifestEntry describes an accepted file in list mode.
	ManifestEntry struct {
		Path     string `json:"path" yaml:"path"`
		Filetype string `json:"filetype" yaml:"filetype"`
		Size     int64  `json:"size" yaml:"size"`
	}
)

// Accepted returns the accepted outcomes in input order.
func (r Report) Accepted() []Outcome {
	return r.filter(StatusAccepted)
}

// Rejected returns the rejected outcomes in input order.
func (r Report) Rejected() []Outcome {
	return r.filter(StatusRejected)
}

// Skipped returns the outcomes suppressed by an ignore flag or exclusion.
func (r Report) Skipped() []Outcome {
	return r.filter(StatusSkipped)
}

// Diagnostics returns one message per rejected path.
func (r Report) Diagnostics() []string {
	var msgs []string
	for _, o := range r.Rejected() {
		msgs = append(msgs, o.Message)
	}
	return msgs
}

// OK reports whether no path was rejected.
func (r Report) OK() bool {
	return len(r.Rejected()) == 0
}

func (r Report) filter(s Status) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == s {
			out = append(out, o)
		}
	}
	return out
}
