package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reusee/literate/cmds"
	"github.com/reusee/literate/configs"
	"github.com/reusee/literate/debugs"
	"github.com/reusee/literate/logs"
	"github.com/reusee/literate/outputs"
	"github.com/reusee/literate/reports"
	"github.com/reusee/literate/sources"
	"github.com/reusee/literate/vars"
	"github.com/reusee/literate/weaves"
	"golang.org/x/term"
)

var (
	previewFlag = cmds.Switch("-preview")
	tapFlag     = cmds.Switch("-tap")
)

// Compile weaves the script at location and writes the report. args are
// passed to the script after its own path.
type Compile func(ctx context.Context, location string, args []string) (*weaves.Woven, error)

type Preview bool

func (Module) Preview(
	loader configs.Loader,
) Preview {
	return Preview(*previewFlag || vars.DerefOrZero(configs.First[*bool](loader, "preview")))
}

func (Module) Compile(
	open sources.Open,
	weave weaves.Weave,
	write outputs.Write,
	outputDir outputs.OutputDir,
	opts outputs.WriteOptions,
	preview Preview,
	tap debugs.Tap,
	logger logs.Logger,
) Compile {
	return func(ctx context.Context, location string, args []string) (*weaves.Woven, error) {
		name, r, err := open(ctx, location)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		script := scriptPath(location, name)
		argv := append([]string{script}, args...)

		woven, err := weave(ctx, name, r, argv)
		if err != nil {
			return nil, err
		}

		// an interrupted run still gets its partial report
		writeCtx := context.WithoutCancel(ctx)
		dir := outputDir(script)
		if err := write(writeCtx, dir, outputs.Base(script), woven, opts); err != nil {
			return nil, fmt.Errorf("write %s: %w", dir, err)
		}

		if preview {
			rendered, err := reports.RenderTerminal(woven.Document.Markdown, terminalWidth())
			if err != nil {
				logger.WarnContext(ctx, "preview", "error", err)
			} else {
				fmt.Fprint(os.Stdout, rendered)
			}
		}

		if *tapFlag {
			tap(writeCtx, name, woven.Namespace)
		}

		return woven, nil
	}
}

// scriptPath is the absolute path of a local script, or a name in the
// working directory for other sources.
func scriptPath(location string, name string) string {
	switch {
	case location == sources.Stdin:
		name = "stdin"
	case !sources.IsRemote(location):
		if abs, err := filepath.Abs(location); err == nil {
			return abs
		}
		return location
	}
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, filepath.Base(name))
	}
	return filepath.Base(name)
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
