package plots

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/literate/configs"
	"github.com/reusee/literate/modes"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func exec(t *testing.T, r *Registry, src string) starlark.StringDict {
	t.Helper()
	thread := &starlark.Thread{Name: t.Name()}
	globals, err := starlark.ExecFileOptions(
		&syntax.FileOptions{},
		thread,
		"test.star",
		src,
		starlark.StringDict{
			"plot": r.StarlarkModule(),
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	return globals
}

func TestFigures(t *testing.T) {
	r := NewRegistry(Size{})
	globals := exec(t, r, `
a = plot.figure(title = "first")
a.plot([1, 2, 3], [3, 1, 2], label = "line")
b = plot.figure()
plot.scatter([1.5, 2.5])
plot.title("second")
nums = plot.fignums()
current = plot.gcf().num
`)

	if got := globals["nums"].String(); got != "[1, 2]" {
		t.Fatalf("got %v", got)
	}
	if got := globals["current"].String(); got != "2" {
		t.Fatalf("got %v", got)
	}
	figures := r.Figures()
	if len(figures) != 2 {
		t.Fatalf("got %v", figures)
	}
	second := figures[1].(*Figure)
	if second.title != "second" {
		t.Fatalf("got %v", second.title)
	}
	if len(second.series) != 1 || second.series[0].xs[1] != 1 {
		t.Fatalf("got %v", second.series)
	}
	if second.size != DefaultSize {
		t.Fatalf("got %v", second.size)
	}
}

func TestClose(t *testing.T) {
	r := NewRegistry(DefaultSize)
	globals := exec(t, r, `
a = plot.figure()
b = plot.figure()
c = plot.figure()
plot.close(b)
after_b = plot.fignums()
plot.close()
after_current = plot.fignums()
plot.close("all")
after_all = plot.fignums()
`)
	for name, want := range map[string]string{
		"after_b":       "[1, 3]",
		"after_current": "[1]",
		"after_all":     "[]",
	} {
		if got := globals[name].String(); got != want {
			t.Fatalf("%s: got %v", name, got)
		}
	}
	if r.current != nil {
		t.Fatal()
	}
}

func TestShowHooks(t *testing.T) {
	r := NewRegistry(DefaultSize)
	var all, one []int
	restore := r.ReplaceShow(
		func() error {
			for _, h := range r.Figures() {
				all = append(all, h.Num())
			}
			return nil
		},
		func(h Handle) error {
			one = append(one, h.Num())
			return nil
		},
	)
	exec(t, r, `
fig = plot.figure()
fig.plot([1, 2])
plot.show()
fig.show()
`)
	restore()
	exec(t, r, `
plot.show()
plot.gcf().show()
`)
	if len(all) != 1 || all[0] != 1 {
		t.Fatalf("got %v", all)
	}
	if len(one) != 1 || one[0] != 1 {
		t.Fatalf("got %v", one)
	}
}

func TestBadSeries(t *testing.T) {
	r := NewRegistry(DefaultSize)
	thread := &starlark.Thread{Name: t.Name()}
	_, err := starlark.ExecFileOptions(
		&syntax.FileOptions{},
		thread,
		"test.star",
		`plot.plot([1, 2], [1])`,
		starlark.StringDict{
			"plot": r.StarlarkModule(),
		},
	)
	if err == nil {
		t.Fatal("should error")
	}
	_, err = starlark.ExecFileOptions(
		&syntax.FileOptions{},
		thread,
		"test.star",
		`plot.plot(["a"])`,
		starlark.StringDict{
			"plot": r.StarlarkModule(),
		},
	)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestEncodePNG(t *testing.T) {
	r := NewRegistry(Size{Width: 200, Height: 150})
	exec(t, r, `
fig = plot.figure(title = "t")
fig.plot([0, 1, 2], [0, 1, 4], label = "sq")
fig.scatter([0, 1, 2], [4, 1, 0])
fig.bar([0, 1, 2], [1, -1, 2])
fig.set_xlabel("x")
fig.set_ylabel("y")
empty = plot.figure(width = 64, height = 48)
`)
	for i, h := range r.Figures() {
		buf := new(bytes.Buffer)
		if err := h.EncodePNG(buf); err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(buf)
		if err != nil {
			t.Fatal(err)
		}
		want := [][2]int{{200, 150}, {64, 48}}[i]
		if b := img.Bounds(); b.Dx() != want[0] || b.Dy() != want[1] {
			t.Fatalf("got %v", b)
		}
	}
}

func TestSize(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		size Size,
	) {
		if size != DefaultSize {
			t.Fatalf("got %v", size)
		}
	})
}
