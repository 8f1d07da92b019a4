// internal/docker/types.go
package docker

// BuildOptions holds everything needed to assemble one docker build argv.
type BuildOptions struct {
	Dockerfile  string // e.g. "Dockerfile.ros1"
	ContextPath string // default: "."
	Platform    string // e.g. "linux/amd64"
	CacheFrom   string // registry ref used as build cache source
	Tag         string // local image tag, e.g. "ros1-ml"
}
