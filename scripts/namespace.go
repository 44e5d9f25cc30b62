package scripts

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/literate/plots"
	"go.starlark.net/lib/json"
	"go.starlark.net/lib/math"
	"go.starlark.net/lib/time"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
)

// Namespace is the program state shared by all groups of one script.
type Namespace struct {
	Globals starlark.StringDict
	Stdout  *Stream
	Stderr  *Stream
	Plots   plots.Backend
	Argv    []string
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

func NewNamespace(argv []string, registry *plots.Registry, extra starlark.StringDict) *Namespace {
	ns := &Namespace{
		Globals: make(starlark.StringDict),
		Stdout:  NewStream("stdout", os.Stdout),
		Stderr:  NewStream("stderr", os.Stderr),
		Plots:   registry,
		Argv:    argv,
	}

	argvValues := make([]starlark.Value, 0, len(argv))
	for _, arg := range argv {
		argvValues = append(argvValues, starlark.String(arg))
	}
	argvList := starlark.NewList(argvValues)
	exit := exitBuiltin(ns.Stderr)

	for name, value := range extra {
		ns.Globals[name] = value
	}
	ns.Globals["__name__"] = starlark.String("__main__")
	ns.Globals["sys"] = &starlarkstruct.Module{
		Name: "sys",
		Members: starlark.StringDict{
			"argv":   argvList,
			"exit":   exit,
			"stdout": ns.Stdout,
			"stderr": ns.Stderr,
		},
	}
	ns.Globals["argv"] = argvList
	ns.Globals["exit"] = exit
	ns.Globals["plot"] = registry.StarlarkModule()
	ns.Globals["json"] = json.Module
	ns.Globals["math"] = math.Module
	ns.Globals["time"] = time.Module
	ns.Globals["struct"] = starlark.NewBuiltin("struct", starlarkstruct.Make)

	return ns
}

// Redirect sends both streams to the given writers until restore is called.
func (n *Namespace) Redirect(stdout, stderr io.Writer) (restore func()) {
	restoreStdout := n.Stdout.Redirect(stdout)
	restoreStderr := n.Stderr.Redirect(stderr)
	return func() {
		restoreStderr()
		restoreStdout()
	}
}

// Evaluate runs source against the namespace globals. Definitions made
// before an error are kept.
func (n *Namespace) Evaluate(ctx context.Context, filename string, source string) error {
	file, err := fileOptions.Parse(filename, source, 0)
	if err != nil {
		return err
	}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(n.Stdout, msg)
		},
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()
	if err := ctx.Err(); err != nil {
		return err
	}

	return starlark.ExecREPLChunk(file, thread, n.Globals)
}
