package assets

import (
	_ "embed"
)

//go:embed usage.txt
var usage string

// Usage returns the static help banner shown for unknown or absent tasks.
func Usage() string {
	return usage
}
