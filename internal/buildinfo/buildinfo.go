// Package buildinfo derives a version string from VCS build settings.
package buildinfo

import "runtime/debug"

const shortRevision = 7

// Version is the short VCS revision of the running binary, "dev" when the
// binary was built without VCS stamping.
var Version = fromSettings(debug.ReadBuildInfo())

func fromSettings(info *debug.BuildInfo, ok bool) string {
	if !ok || info == nil {
		return "dev"
	}

	vcs := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		vcs[s.Key] = s.Value
	}

	rev := vcs["vcs.revision"]
	if rev == "" {
		return "dev"
	}
	rev = rev[:min(len(rev), shortRevision)]

	if vcs["vcs.modified"] == "true" {
		rev += "-dirty"
	}
	return rev
}
