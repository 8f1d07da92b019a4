package runtime

import (
	"os"
	"strings"
)

// Context captures the relevant process environment for rosimg.
// Every field has a default that reproduces the stock behavior, so an
// empty environment is the normal case.
type Context struct {
	DockerBin   string // container tool binary (ROSIMG_DOCKER, default "docker")
	RegistryAPI string // registry API base for the check task (ROSIMG_REGISTRY_API)
	DryRun      bool   // print commands instead of executing (ROSIMG_DRY_RUN)
}

const defaultRegistryAPI = "https://hub.docker.com"

// LoadContext constructs a Context by reading environment variables.
func LoadContext() Context {
	return Context{
		DockerBin:   getenv("ROSIMG_DOCKER", "docker"),
		RegistryAPI: getenv("ROSIMG_REGISTRY_API", defaultRegistryAPI),
		DryRun:      os.Getenv("ROSIMG_DRY_RUN") == "true",
	}
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
