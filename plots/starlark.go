package plots

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// StarlarkModule returns the "plot" module bound to the registry.
func (r *Registry) StarlarkModule() *starlarkstruct.Module {
	return &starlarkstruct.Module{
		Name: "plot",
		Members: starlark.StringDict{
			"figure":  starlark.NewBuiltin("plot.figure", r.figure),
			"gcf":     starlark.NewBuiltin("plot.gcf", r.gcf),
			"fignums": starlark.NewBuiltin("plot.fignums", r.fignums),
			"plot":    starlark.NewBuiltin("plot.plot", r.series(lineSeries)),
			"scatter": starlark.NewBuiltin("plot.scatter", r.series(pointSeries)),
			"bar":     starlark.NewBuiltin("plot.bar", r.series(barSeries)),
			"title":   starlark.NewBuiltin("plot.title", r.text(func(f *Figure) *string { return &f.title })),
			"xlabel":  starlark.NewBuiltin("plot.xlabel", r.text(func(f *Figure) *string { return &f.xlabel })),
			"ylabel":  starlark.NewBuiltin("plot.ylabel", r.text(func(f *Figure) *string { return &f.ylabel })),
			"show":    starlark.NewBuiltin("plot.show", r.show),
			"close":   starlark.NewBuiltin("plot.close", r.close),
		},
	}
}

type builtinFunc = func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error)

func (r *Registry) figure(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var title string
	var size Size
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"title?", &title,
		"width?", &size.Width,
		"height?", &size.Height,
	); err != nil {
		return nil, err
	}
	return r.NewFigure(title, size), nil
}

func (r *Registry) gcf(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	return r.Current(), nil
}

func (r *Registry) fignums(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	nums := make([]starlark.Value, 0, len(r.figures))
	for _, fig := range r.figures {
		nums = append(nums, starlark.MakeInt(fig.num))
	}
	return starlark.NewList(nums), nil
}

func (r *Registry) series(kind seriesKind) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x, y starlark.Value
		var label string
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "y?", &y, "label?", &label); err != nil {
			return nil, err
		}
		if err := r.Current().add(kind, x, y, label); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		return starlark.None, nil
	}
}

func (r *Registry) text(field func(*Figure) *string) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var text string
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &text); err != nil {
			return nil, err
		}
		*field(r.Current()) = text
		return starlark.None, nil
	}
}

func (r *Registry) show(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	if err := r.showAll(); err != nil {
		return nil, err
	}
	return starlark.None, nil
}

func (r *Registry) close(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var target starlark.Value = starlark.None
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0, &target); err != nil {
		return nil, err
	}
	switch target := target.(type) {
	case starlark.NoneType:
		if r.current != nil {
			r.Close(r.current)
		}
	case starlark.String:
		if target != "all" {
			return nil, fmt.Errorf("%s: unknown target %q", b.Name(), string(target))
		}
		r.CloseAll()
	case *Figure:
		r.Close(target)
	default:
		return nil, fmt.Errorf("%s: got %s, want figure, \"all\" or None", b.Name(), target.Type())
	}
	return starlark.None, nil
}
