package plots

import "slices"

type Size struct {
	Width  int
	Height int
}

var DefaultSize = Size{
	Width:  640,
	Height: 480,
}

// Registry holds the open figures of one compilation.
type Registry struct {
	size    Size
	figures []*Figure
	current *Figure
	lastNum int
	showAll ShowAll
	showOne ShowOne
}

var _ Backend = new(Registry)

func NewRegistry(size Size) *Registry {
	if size.Width <= 0 {
		size.Width = DefaultSize.Width
	}
	if size.Height <= 0 {
		size.Height = DefaultSize.Height
	}
	return &Registry{
		size: size,
		// non-interactive
		showAll: func() error {
			return nil
		},
		showOne: func(Handle) error {
			return nil
		},
	}
}

func (r *Registry) NewFigure(title string, size Size) *Figure {
	if size.Width <= 0 {
		size.Width = r.size.Width
	}
	if size.Height <= 0 {
		size.Height = r.size.Height
	}
	r.lastNum++
	fig := &Figure{
		registry: r,
		num:      r.lastNum,
		size:     size,
		title:    title,
	}
	r.figures = append(r.figures, fig)
	r.current = fig
	return fig
}

// Current returns the current figure, creating one if none is open.
func (r *Registry) Current() *Figure {
	if r.current == nil {
		return r.NewFigure("", r.size)
	}
	return r.current
}

func (r *Registry) Close(fig *Figure) {
	r.figures = slices.DeleteFunc(r.figures, func(f *Figure) bool {
		return f == fig
	})
	if r.current == fig {
		r.current = nil
		if len(r.figures) > 0 {
			r.current = r.figures[len(r.figures)-1]
		}
	}
}

func (r *Registry) CloseAll() {
	r.figures = nil
	r.current = nil
}

func (r *Registry) Figures() []Handle {
	ret := make([]Handle, 0, len(r.figures))
	for _, fig := range r.figures {
		ret = append(ret, fig)
	}
	return ret
}

func (r *Registry) ReplaceShow(all ShowAll, one ShowOne) (restore func()) {
	oldAll, oldOne := r.showAll, r.showOne
	r.showAll, r.showOne = all, one
	return func() {
		r.showAll, r.showOne = oldAll, oldOne
	}
}
