// internal/docker/clientcheck.go
//
// Best-effort sanity check before a build: --cache-from with registry
// images needs a BuildKit-era client (18.09+). An old client still gets
// the build attempt; we only warn.

package docker

import (
	"log"
	"strings"

	"rosimg/internal/executil"
	"rosimg/internal/version"
)

// minCacheFromClient is the first docker release shipping BuildKit.
var minCacheFromClient = version.Version{Major: 18, Minor: 9, Patch: 0}

// WarnIfOldClient asks the docker binary for its client version and logs
// a warning when it predates registry cache-from support. Never fails.
func WarnIfOldClient(bin string) {
	out, err := executil.Output(bin, "version", "--format", "{{.Client.Version}}")
	if err != nil {
		return
	}
	v, err := version.Parse(normalizeClientVersion(out))
	if err != nil {
		return
	}
	if v.LessThan(minCacheFromClient) {
		log.Printf("[docker] client %s predates %s; --cache-from from a registry may be ignored", out, minCacheFromClient)
	}
}

// normalizeClientVersion strips suffixes like "-ce" or "+azure" so the
// semver parser only sees X.Y.Z.
func normalizeClientVersion(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(s, "v"))
	for _, sep := range []string{"-", "+"} {
		if i := strings.Index(s, sep); i > 0 {
			s = s[:i]
		}
	}
	return s
}
