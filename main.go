// rosimg main entrypoint
//
// This binary replaces the docker make targets of the ROS course
// workspace: it maps one task name to one fixed docker invocation
// (build, pull, rmi, push) for the ros1-ml and ros2-ml images, and
// prints a static usage banner for anything else.
//
// Keep this file simple: load context, look the task up, run it,
// forward the tool's exit code. The literals live in internal/task.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"rosimg/internal/assets"
	"rosimg/internal/docker"
	"rosimg/internal/executil"
	"rosimg/internal/runtime"
	"rosimg/internal/task"
	"rosimg/pkg/registry"
)

func main() {
	// Local overrides for dev runs; harmless otherwise.
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdout))
}

// run is the dispatcher: it returns the process exit code so tests can
// drive it without spawning the binary.
func run(args []string, out io.Writer) int {
	rc := runtime.LoadContext()

	name := "help"
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		name = args[0]
	}

	t, ok := task.Lookup(name)
	if !ok {
		// unknown or absent task name is not an error
		fmt.Fprint(out, assets.Usage())
		return 0
	}

	if t.Kind == task.KindCheck {
		return runCheck(rc, out)
	}

	if t.Kind == task.KindBuild {
		docker.WarnIfOldClient(rc.DockerBin)
	}

	if rc.DryRun {
		_ = executil.DryRunCMD(rc.DockerBin, t.Args...)
		return 0
	}

	err := executil.RunCMD(rc.DockerBin, t.Args...)
	if err != nil {
		// docker already wrote its own diagnostics to stderr
		log.Printf("[rosimg] task %s failed: %v", t.Name, err)
	}
	return executil.ExitCode(err)
}

// runCheck asks the registry whether both remote cache images exist.
func runCheck(rc runtime.Context, out io.Writer) int {
	client := registry.NewClient(rc.RegistryAPI)

	code := 0
	for _, v := range []task.Variant{task.ROS1, task.ROS2} {
		repo, tag := docker.SplitRef(v.CacheRef)
		ok, err := client.TagExists(repo, tag)
		switch {
		case err != nil:
			fmt.Fprintf(out, "%-24s error: %v\n", v.CacheRef, err)
			code = 1
		case ok:
			fmt.Fprintf(out, "%-24s ok\n", v.CacheRef)
		default:
			fmt.Fprintf(out, "%-24s missing\n", v.CacheRef)
			code = 1
		}
	}
	return code
}
