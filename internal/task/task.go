// internal/task/task.go
//
// The static task table. Each task is a named, fixed invocation of the
// external docker binary (or, for "check", a registry lookup). Tasks are
// built once at process start and never change; the dispatcher only ever
// reads them.

package task

import (
	"fmt"

	"rosimg/internal/docker"
)

// Kind classifies what a task does; the dispatcher switches on it.
type Kind string

const (
	KindBuild Kind = "build"
	KindPull  Kind = "pull"
	KindClean Kind = "clean"
	KindPush  Kind = "push"
	KindCheck Kind = "check"
)

// Variant bundles the per-image literals for one ROS distro image.
type Variant struct {
	Name       string // "ros1" / "ros2"
	Dockerfile string
	CacheRef   string // registry ref used as cache source and push/pull target
	Tag        string // local image tag
}

var (
	ROS1 = Variant{Name: "ros1", Dockerfile: "Dockerfile.ros1", CacheRef: "rwthika/acdc:ros1-ml", Tag: "ros1-ml"}
	ROS2 = Variant{Name: "ros2", Dockerfile: "Dockerfile.ros2", CacheRef: "rwthika/acdc:ros2-ml", Tag: "ros2-ml"}
)

// Platform is fixed: the course images are amd64-only, and ML base layers
// have no arm64 equivalents.
const Platform = "linux/amd64"

// Task is a named, fixed invocation of the external container tool.
type Task struct {
	Name    string
	Kind    Kind
	Variant Variant
	Summary string
	Args    []string // argv passed to the docker binary; nil for KindCheck
}

var (
	table []Task
	index map[string]Task
)

func init() {
	for _, v := range []Variant{ROS1, ROS2} {
		table = append(table,
			Task{
				Name:    "build_" + v.Name,
				Kind:    KindBuild,
				Variant: v,
				Summary: fmt.Sprintf("build %s from %s (cache from %s)", v.Tag, v.Dockerfile, v.CacheRef),
				Args: must(docker.BuildArgs(docker.BuildOptions{
					Dockerfile: v.Dockerfile,
					Platform:   Platform,
					CacheFrom:  v.CacheRef,
					Tag:        v.Tag,
				})),
			},
		)
	}
	for _, v := range []Variant{ROS1, ROS2} {
		table = append(table, Task{
			Name:    "pull_" + v.Name,
			Kind:    KindPull,
			Variant: v,
			Summary: "pull " + v.CacheRef,
			Args:    must(docker.PullArgs(v.CacheRef)),
		})
	}
	for _, v := range []Variant{ROS1, ROS2} {
		table = append(table, Task{
			Name:    "clean_" + v.Name,
			Kind:    KindClean,
			Variant: v,
			Summary: "remove the local " + v.Tag + " image",
			Args:    must(docker.RemoveArgs(v.Tag)),
		})
	}
	for _, v := range []Variant{ROS1, ROS2} {
		table = append(table, Task{
			Name:    "push_" + v.Name,
			Kind:    KindPush,
			Variant: v,
			Summary: "push " + v.CacheRef,
			Args:    must(docker.PushArgs(v.CacheRef)),
		})
	}
	table = append(table, Task{
		Name:    "check",
		Kind:    KindCheck,
		Summary: "report whether the remote cache images are reachable",
	})

	index = make(map[string]Task, len(table))
	for _, t := range table {
		index[t.Name] = t
	}
}

// Table returns the tasks in their declaration order.
func Table() []Task {
	out := make([]Task, len(table))
	copy(out, table)
	return out
}

// Lookup finds a task by name.
func Lookup(name string) (Task, bool) {
	t, ok := index[name]
	return t, ok
}

// must keeps the table literals honest: the inputs are compile-time
// constants, so a failure here is a programming error.
func must(args []string, err error) []string {
	if err != nil {
		panic(err)
	}
	return args
}
