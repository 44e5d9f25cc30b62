package weaves

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/literate/cages"
	"github.com/reusee/literate/configs"
	"github.com/reusee/literate/executes"
	"github.com/reusee/literate/lexes"
	"github.com/reusee/literate/modes"
	"go.starlark.net/starlark"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	)
}

const script = `"""
# Report

Some prose.
"""
total = 0
for i in range(4):
    total += i
print(total)

plot.plot([1, 2, 3], [4, 1, 9])
plot.show()

"Done."
`

func TestWeave(t *testing.T) {
	testScope(t).Call(func(
		weave Weave,
	) {
		woven, err := weave(context.Background(), "report.star", strings.NewReader(script), []string{"report.star", "x"})
		if err != nil {
			t.Fatal(err)
		}
		// prose, assignment, loop, print, plot, show, prose
		if len(woven.Groups) != 7 {
			t.Fatalf("got %d groups", len(woven.Groups))
		}
		if woven.Summary.Executed != 7 {
			t.Fatalf("got %+v", woven.Summary)
		}

		md := woven.Document.Markdown
		if !strings.HasPrefix(md, "\n# Report\n\nSome prose.\n") {
			t.Fatalf("got %q", md)
		}
		if !strings.Contains(md, "```text\n6\n```\n") {
			t.Fatalf("got %q", md)
		}
		if !strings.Contains(md, "![figure_5_0.png](./figure_5_0.png)") {
			t.Fatalf("got %q", md)
		}
		if !strings.HasSuffix(md, "Done.\n") {
			t.Fatalf("got %q", md)
		}

		if len(woven.Document.Figures) != 1 {
			t.Fatalf("got %d figures", len(woven.Document.Figures))
		}
		if !bytes.HasPrefix(woven.Document.Figures[0].Data, []byte("\x89PNG")) {
			t.Fatal("not a png")
		}

		argv, ok := woven.Namespace.Globals["argv"].(*starlark.List)
		if !ok || argv.Len() != 2 || argv.Index(1) != starlark.String("x") {
			t.Fatalf("got %v", woven.Namespace.Globals["argv"])
		}
	})
}

func TestWeaveIsolation(t *testing.T) {
	testScope(t).Call(func(
		weave Weave,
	) {
		_, err := weave(context.Background(), "a.star", strings.NewReader("x = 1\nplot.plot([1, 2])\n"), nil)
		if err != nil {
			t.Fatal(err)
		}
		woven, err := weave(context.Background(), "b.star", strings.NewReader("y = 2\nplot.show()\n"), nil)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := woven.Namespace.Globals["x"]; ok {
			t.Fatal("globals leaked between compilations")
		}
		if len(woven.Document.Figures) != 0 {
			t.Fatal("figures leaked between compilations")
		}
	})
}

func TestWeaveLexicalError(t *testing.T) {
	testScope(t).Call(func(
		weave Weave,
	) {
		_, err := weave(context.Background(), "bad.star", strings.NewReader("x = (1,\n"), nil)
		var lexErr *lexes.Error
		if !errors.As(err, &lexErr) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "run: ") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestWeaveRaise(t *testing.T) {
	testScope(t).Call(func(
		weave Weave,
	) {
		_, err := weave(context.Background(), "fail.star", strings.NewReader("x = 1\nfail('boom')\n"), nil)
		var groupErr *cages.GroupError
		if !errors.As(err, &groupErr) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "fail('boom')") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestWeaveRecord(t *testing.T) {
	testScope(t).Fork(
		func() executes.ErrorPolicy {
			return executes.Record
		},
	).Call(func(
		weave Weave,
	) {
		woven, err := weave(context.Background(), "fail.star", strings.NewReader("x = 1\nfail('boom')\nprint(x)\n"), nil)
		if err != nil {
			t.Fatal(err)
		}
		md := woven.Document.Markdown
		if !strings.Contains(md, "Exception Raised") || !strings.Contains(md, "boom") {
			t.Fatalf("got %q", md)
		}
		if woven.Document.Stats.Warnings != 1 {
			t.Fatalf("got %+v", woven.Document.Stats)
		}
	})
}

func TestWeaveExit(t *testing.T) {
	testScope(t).Call(func(
		weave Weave,
	) {
		woven, err := weave(context.Background(), "exit.star", strings.NewReader("print(1)\nexit()\nprint(2)\n"), nil)
		if err != nil {
			t.Fatal(err)
		}
		if !woven.Summary.Interrupted || woven.Summary.InterruptedAt != 1 {
			t.Fatalf("got %+v", woven.Summary)
		}
		// later groups are still rendered, without output
		md := woven.Document.Markdown
		if !strings.HasSuffix(md, "```python\nprint(2)\n```\n") {
			t.Fatalf("got %q", md)
		}
		if woven.Groups[2].Results != nil {
			t.Fatal("groups after exit should not run")
		}
	})
}
