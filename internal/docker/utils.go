package docker

import (
	"regexp"
	"strings"
)

// ---- Tag / ref helpers ----

var tagAllowed = regexp.MustCompile(`^[a-z0-9_.-]{1,128}$`)

func validateTag(tag string) bool {
	return tagAllowed.MatchString(tag)
}

// SplitRef splits "repo/name:tag" into its repository and tag parts.
// Refs without an explicit tag get "latest", matching docker's default.
func SplitRef(ref string) (repo, tag string) {
	ref = strings.TrimSpace(ref)
	if i := strings.LastIndexByte(ref, ':'); i > 0 && !strings.Contains(ref[i+1:], "/") {
		return ref[:i], ref[i+1:]
	}
	return ref, "latest"
}
