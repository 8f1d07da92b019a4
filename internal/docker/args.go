// internal/docker/args.go
//
// Pure argv assembly for the docker subcommands this tool wraps.
// Nothing here touches the filesystem or spawns a process; the task
// table calls these once at startup and the dispatcher hands the
// result to executil verbatim.

package docker

import (
	"errors"
	"fmt"
	"strings"
)

// BuildArgs assembles the argv for `docker build` from opts.
func BuildArgs(opts BuildOptions) ([]string, error) {
	df := strings.TrimSpace(opts.Dockerfile)
	if df == "" {
		df = "Dockerfile"
	}
	ctxPath := strings.TrimSpace(opts.ContextPath)
	if ctxPath == "" {
		ctxPath = "."
	}
	tag := strings.TrimSpace(opts.Tag)
	if tag == "" {
		return nil, errors.New("BuildArgs: Tag must be set")
	}
	// defensive: Docker tags must be lowercase & no spaces
	if !validateTag(tag) {
		return nil, fmt.Errorf("BuildArgs: invalid tag %q (must be lowercase, no spaces)", tag)
	}

	args := []string{"build", "-f", df}
	if opts.Platform != "" {
		args = append(args, "--platform", opts.Platform)
	}
	if opts.CacheFrom != "" {
		if err := ValidateRef(opts.CacheFrom); err != nil {
			return nil, fmt.Errorf("BuildArgs: %w", err)
		}
		args = append(args, "--cache-from", opts.CacheFrom)
	}
	args = append(args, "-t", tag, ctxPath)
	return args, nil
}

// PullArgs assembles the argv for `docker pull <ref>`.
func PullArgs(ref string) ([]string, error) {
	if err := ValidateRef(ref); err != nil {
		return nil, fmt.Errorf("PullArgs: %w", err)
	}
	return []string{"pull", ref}, nil
}

// PushArgs assembles the argv for `docker push <ref>`.
func PushArgs(ref string) ([]string, error) {
	if err := ValidateRef(ref); err != nil {
		return nil, fmt.Errorf("PushArgs: %w", err)
	}
	return []string{"push", ref}, nil
}

// RemoveArgs assembles the argv for `docker rmi -f <tag>`.
// Force-remove so a missing parent or running container does not
// leave the tag behind.
func RemoveArgs(tag string) ([]string, error) {
	tag = strings.TrimSpace(tag)
	if !validateTag(tag) {
		return nil, fmt.Errorf("RemoveArgs: invalid tag %q", tag)
	}
	return []string{"rmi", "-f", tag}, nil
}

// ValidateRef rejects refs that docker itself would refuse.
func ValidateRef(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return errors.New("empty image ref")
	}
	if strings.ToLower(ref) != ref || strings.ContainsAny(ref, " \t\n") {
		return fmt.Errorf("invalid ref %q (must be lowercase, no spaces)", ref)
	}
	return nil
}
