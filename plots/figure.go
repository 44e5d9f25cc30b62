package plots

import (
	"fmt"
	"io"

	"go.starlark.net/starlark"
)

type seriesKind uint8

const (
	lineSeries seriesKind = iota
	pointSeries
	barSeries
)

type series struct {
	kind  seriesKind
	label string
	xs    []float64
	ys    []float64
}

// Figure is a plot canvas, exposed to scripts as a value of type "figure".
type Figure struct {
	registry *Registry
	num      int
	size     Size
	title    string
	xlabel   string
	ylabel   string
	series   []series
	frozen   bool
}

var _ Handle = new(Figure)

var _ starlark.HasAttrs = new(Figure)

func (f *Figure) Num() int {
	return f.num
}

func (f *Figure) EncodePNG(w io.Writer) error {
	return encodePNG(w, f.render())
}

func (f *Figure) String() string {
	return fmt.Sprintf("<figure %d>", f.num)
}

func (f *Figure) Type() string {
	return "figure"
}

func (f *Figure) Freeze() {
	f.frozen = true
}

func (f *Figure) Truth() starlark.Bool {
	return starlark.True
}

func (f *Figure) Hash() (uint32, error) {
	return uint32(f.num), nil
}

var figureMethods = map[string]*starlark.Builtin{
	"plot":       starlark.NewBuiltin("plot", figureSeries(lineSeries)),
	"scatter":    starlark.NewBuiltin("scatter", figureSeries(pointSeries)),
	"bar":        starlark.NewBuiltin("bar", figureSeries(barSeries)),
	"set_title":  starlark.NewBuiltin("set_title", figureText(func(f *Figure) *string { return &f.title })),
	"set_xlabel": starlark.NewBuiltin("set_xlabel", figureText(func(f *Figure) *string { return &f.xlabel })),
	"set_ylabel": starlark.NewBuiltin("set_ylabel", figureText(func(f *Figure) *string { return &f.ylabel })),
	"show":       starlark.NewBuiltin("show", figureShow),
	"close":      starlark.NewBuiltin("close", figureClose),
}

func (f *Figure) Attr(name string) (starlark.Value, error) {
	switch name {
	case "num":
		return starlark.MakeInt(f.num), nil
	case "title":
		return starlark.String(f.title), nil
	}
	if method, ok := figureMethods[name]; ok {
		return method.BindReceiver(f), nil
	}
	return nil, nil
}

func (f *Figure) AttrNames() []string {
	names := []string{"num", "title"}
	for name := range figureMethods {
		names = append(names, name)
	}
	return names
}

func (f *Figure) add(kind seriesKind, x, y starlark.Value, label string) error {
	if f.frozen {
		return fmt.Errorf("cannot modify frozen figure %d", f.num)
	}
	xs, err := toFloats(x)
	if err != nil {
		return err
	}
	var ys []float64
	if y == nil || y == starlark.None {
		ys = xs
		xs = make([]float64, len(ys))
		for i := range xs {
			xs[i] = float64(i)
		}
	} else {
		ys, err = toFloats(y)
		if err != nil {
			return err
		}
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("x and y must have the same length, got %d and %d", len(xs), len(ys))
	}
	f.series = append(f.series, series{
		kind:  kind,
		label: label,
		xs:    xs,
		ys:    ys,
	})
	return nil
}

func figureSeries(kind seriesKind) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x, y starlark.Value
		var label string
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y?", &y, "label?", &label); err != nil {
			return nil, err
		}
		if err := b.Receiver().(*Figure).add(kind, x, y, label); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		return starlark.None, nil
	}
}

func figureText(field func(*Figure) *string) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var text string
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &text); err != nil {
			return nil, err
		}
		fig := b.Receiver().(*Figure)
		if fig.frozen {
			return nil, fmt.Errorf("%s: cannot modify frozen figure %d", b.Name(), fig.num)
		}
		*field(fig) = text
		return starlark.None, nil
	}
}

func figureShow(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	fig := b.Receiver().(*Figure)
	if err := fig.registry.showOne(fig); err != nil {
		return nil, err
	}
	return starlark.None, nil
}

func figureClose(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	fig := b.Receiver().(*Figure)
	fig.registry.Close(fig)
	return starlark.None, nil
}

func toFloats(v starlark.Value) ([]float64, error) {
	iterable, ok := v.(starlark.Iterable)
	if !ok {
		return nil, fmt.Errorf("got %s, want iterable of numbers", v.Type())
	}
	iter := iterable.Iterate()
	defer iter.Done()
	var ret []float64
	var elem starlark.Value
	for iter.Next(&elem) {
		switch elem := elem.(type) {
		case starlark.Int:
			ret = append(ret, float64(elem.Float()))
		case starlark.Float:
			ret = append(ret, float64(elem))
		default:
			return nil, fmt.Errorf("got %s, want number", elem.Type())
		}
	}
	return ret, nil
}
