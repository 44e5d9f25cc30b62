package groups

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parse(t *testing.T, src string) []*Group {
	t.Helper()
	gs, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return gs
}

const mixedSource = `
#not docstring
a = 5

#comment 2
"""docstring"""

"""docstring"""

"not docstring"; a = 5
`

func TestRoundTrip(t *testing.T) {
	sources := []string{
		mixedSource,
		"",
		"x = 1",
		"def f(a,\n      b):\n    return a + \\\n        b\n\n\nprint(f(1, 2))\n# done\n",
		"if a:\n    pass\n# trailing comment\n\n",
		"@deco\n@deco2(1)\ndef f():\n    pass\nx = [\n    1,\n    2,\n]\n",
	}
	for _, src := range sources {
		var b strings.Builder
		for _, g := range parse(t, src) {
			b.WriteString(g.Source())
		}
		if diff := cmp.Diff(src, b.String()); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestIsDocstring(t *testing.T) {
	gs := parse(t, mixedSource)
	var got []bool
	for _, g := range gs {
		got = append(got, g.IsDocstring())
	}
	if diff := cmp.Diff([]bool{false, true, true, false}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if doc := gs[1].Docstring(); doc != "docstring" {
		t.Fatalf("got %q", doc)
	}
}

func TestGroupIndexes(t *testing.T) {
	for i, g := range parse(t, mixedSource) {
		if g.Index != i {
			t.Fatalf("got %v, want %v", g.Index, i)
		}
	}
}

func TestEmptySource(t *testing.T) {
	if gs := parse(t, ""); len(gs) != 0 {
		t.Fatalf("got %d groups", len(gs))
	}
}

func TestCompoundStatements(t *testing.T) {
	sources := map[string]string{
		"if/elif/else": `
if False:
    pass
elif 0:
    pass
else:
    pass
`,
		"for/else": `
for i in range(1):
    pass
else:
    pass
`,
		"try/except/else/finally": `
try:
    pass
except:
    pass
else:
    pass
finally:
    pass
`,
		"decorator": `
#comment
@contextmanager
def function():
    yield 1
`,
		"stacked decorators": `@a
@b(1,
   2)
def f():
    pass
`,
		"nested blocks": `def f():
    if x:
        return 1
    else:
        return 2
`,
	}
	for name, src := range sources {
		if gs := parse(t, src); len(gs) != 1 {
			t.Fatalf("%s: got %d groups", name, len(gs))
		}
	}
}

func TestSeparateStatements(t *testing.T) {
	src := "a = 1\nif a:\n    b = 2\nc = 3\n"
	gs := parse(t, src)
	var got []string
	for _, g := range gs {
		got = append(got, g.Source())
	}
	want := []string{
		"a = 1\n",
		"if a:\n    b = 2\n",
		"c = 3\n",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTrailingTriviaJoinsLastGroup(t *testing.T) {
	gs := parse(t, "x = 1\n# the end\n\n")
	if len(gs) != 1 {
		t.Fatalf("got %d", len(gs))
	}
	if got := gs[0].Source(); got != "x = 1\n# the end\n\n" {
		t.Fatalf("got %q", got)
	}
}

func TestDisplay(t *testing.T) {
	gs := parse(t, "\n\n# lead\nx = 1\n\n\n")
	if got := gs[0].Display(); got != "# lead\nx = 1" {
		t.Fatalf("got %q", got)
	}
}

func TestRecord(t *testing.T) {
	g := parse(t, "x = 1\n")[0]
	if err := g.Record(nil); err != nil {
		t.Fatal(err)
	}
	if g.Results != nil {
		t.Fatal()
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse(strings.NewReader("x = (\n"))
	if err == nil {
		t.Fatal("should error")
	}
}
