package executes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/literate/cages"
	"github.com/reusee/literate/configs"
	"github.com/reusee/literate/groups"
	"github.com/reusee/literate/modes"
	"github.com/reusee/literate/plots"
	"github.com/reusee/literate/scripts"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	)
}

func prepare(t *testing.T, src string) ([]*groups.Group, *scripts.Namespace) {
	t.Helper()
	gs, err := groups.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	ns := scripts.NewNamespace([]string{"test.star"}, plots.NewRegistry(plots.DefaultSize), nil)
	return gs, ns
}

func TestExecute(t *testing.T) {
	testScope(t).Call(func(
		execute Execute,
	) {
		gs, ns := prepare(t, "print('a')\n\"prose\"\nprint('b')\n")
		summary, err := execute(context.Background(), gs, ns)
		if err != nil {
			t.Fatal(err)
		}
		if summary.Groups != 3 || summary.Executed != 3 || summary.Interrupted {
			t.Fatalf("got %+v", summary)
		}
		if gs[0].Results.Stdout != "a\n" {
			t.Fatalf("got %q", gs[0].Results.Stdout)
		}
		if gs[2].Results.Stdout != "b\n" {
			t.Fatalf("got %q", gs[2].Results.Stdout)
		}
	})
}

func TestInterruption(t *testing.T) {
	testScope(t).Call(func(
		execute Execute,
	) {
		gs, ns := prepare(t, "print('a')\nsys.exit()\nprint('b')\nprint('c')\n")
		summary, err := execute(context.Background(), gs, ns)
		if err != nil {
			t.Fatal(err)
		}
		if !summary.Interrupted || summary.InterruptedAt != 1 || summary.Executed != 2 {
			t.Fatalf("got %+v", summary)
		}
		if !gs[1].Results.Interrupted {
			t.Fatal()
		}
		if gs[2].Results != nil || gs[3].Results != nil {
			t.Fatal("groups after the interruption should not run")
		}
	})
}

func TestRaise(t *testing.T) {
	testScope(t).Call(func(
		execute Execute,
		policy ErrorPolicy,
	) {
		if policy != Raise {
			t.Fatalf("got %v", policy)
		}
		gs, ns := prepare(t, "x = 1\nfail('oops')\ny = 2\n")
		_, err := execute(context.Background(), gs, ns)
		var groupErr *cages.GroupError
		if !errors.As(err, &groupErr) {
			t.Fatalf("got %v", err)
		}
		if groupErr.Index != 1 {
			t.Fatalf("got %v", groupErr.Index)
		}
		if gs[1].Results != nil || gs[2].Results != nil {
			t.Fatal()
		}
		if _, ok := ns.Globals["y"]; ok {
			t.Fatal("later groups should not run")
		}
	})
}

func TestRecord(t *testing.T) {
	testScope(t).Fork(
		func() ErrorPolicy {
			return Record
		},
	).Call(func(
		execute Execute,
	) {
		gs, ns := prepare(t, "x = 1\nfail('oops')\ny = 2\n")
		summary, err := execute(context.Background(), gs, ns)
		if err != nil {
			t.Fatal(err)
		}
		if summary.Executed != 3 || summary.Failed != 1 {
			t.Fatalf("got %+v", summary)
		}
		if err := gs[1].Results.Error; err == nil || !strings.Contains(err.Error(), "oops") {
			t.Fatalf("got %v", err)
		}
		if _, ok := ns.Globals["y"]; !ok {
			t.Fatal("later groups should run")
		}
	})
}

func TestSteps(t *testing.T) {
	gs, ns := prepare(t, "a = 1\nb = 2\nc = 3\n")
	executor := &Executor{
		Cage:   cages.New(),
		Policy: Raise,
	}
	n := 0
	for _, err := range executor.Steps(context.Background(), gs, ns) {
		if err != nil {
			t.Fatal(err)
		}
		n++
		if n == 2 {
			break
		}
	}
	if gs[2].Results != nil {
		t.Fatal("steps should be lazy")
	}
}
