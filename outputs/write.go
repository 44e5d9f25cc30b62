package outputs

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/reusee/e5"
	"github.com/reusee/literate/logs"
	"github.com/reusee/literate/reports"
	"github.com/reusee/literate/weaves"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Write stores a compiled script under dir as base.md, base.html, the
// figure files and base.manifest.yaml.
type Write func(ctx context.Context, dir string, base string, woven *weaves.Woven, opts WriteOptions) error

func (Module) Write(
	logger logs.Logger,
) Write {
	return func(ctx context.Context, dir string, base string, woven *weaves.Woven, opts WriteOptions) error {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return wrap(err)
		}
		doc := woven.Document

		if err := writeFile(filepath.Join(dir, base+".md"), []byte(doc.Markdown)); err != nil {
			return err
		}

		if opts.HTML {
			page, err := reports.RenderHTML(doc.Markdown, base)
			if err != nil {
				return wrap(err)
			}
			if err := writeFile(filepath.Join(dir, base+".html"), []byte(page)); err != nil {
				return err
			}
		}

		group, ctx := errgroup.WithContext(ctx)
		group.SetLimit(runtime.NumCPU())
		for _, fig := range doc.Figures {
			group.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return writeFile(filepath.Join(dir, fig.Name), fig.Data)
			})
		}
		if err := group.Wait(); err != nil {
			return err
		}

		manifest, err := yaml.Marshal(newManifest(woven, base, opts))
		if err != nil {
			return wrap(err)
		}
		if err := writeFile(filepath.Join(dir, base+".manifest.yaml"), manifest); err != nil {
			return err
		}

		logger.InfoContext(ctx, "written",
			"dir", dir,
			"figures", len(doc.Figures),
			"html", opts.HTML,
		)
		return nil
	}
}

func writeFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0644); err != nil {
		return wrap(err)
	}
	return nil
}
