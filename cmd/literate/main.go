package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/literate/cmds"
	"github.com/reusee/literate/logs"
	"github.com/reusee/literate/modes"
)

var (
	watchFlag  = cmds.Switch("-watch")
	scriptArgs = cmds.Args()
	restArgs   = cmds.Rest()
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(*scriptArgs) != 1 {
		fmt.Fprintln(os.Stderr, "usage: literate <script> [commands...] [-- script args...]")
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
	location := (*scriptArgs)[0]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		compile Compile,
		watch Watch,
		logger logs.Logger,
	) {
		if *watchFlag {
			err = watch(ctx, location, *restArgs)
			return
		}
		_, err = compile(ctx, location, *restArgs)
		if err != nil {
			logger.Error("compile", "error", err)
		}
	})

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
