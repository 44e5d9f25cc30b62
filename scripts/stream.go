package scripts

import (
	"fmt"
	"io"

	"go.starlark.net/starlark"
)

// Stream is a text channel of a namespace, visible to scripts as
// sys.stdout or sys.stderr.
type Stream struct {
	name string
	w    io.Writer
}

var _ io.Writer = new(Stream)

var _ starlark.HasAttrs = new(Stream)

func NewStream(name string, w io.Writer) *Stream {
	return &Stream{
		name: name,
		w:    w,
	}
}

func (s *Stream) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Redirect sends later writes to w until restore is called.
func (s *Stream) Redirect(w io.Writer) (restore func()) {
	old := s.w
	s.w = w
	return func() {
		s.w = old
	}
}

func (s *Stream) String() string {
	return "<" + s.name + ">"
}

func (s *Stream) Type() string {
	return "stream"
}

func (s *Stream) Freeze() {}

func (s *Stream) Truth() starlark.Bool {
	return starlark.True
}

func (s *Stream) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: stream")
}

var streamMethods = map[string]*starlark.Builtin{
	"write": starlark.NewBuiltin("write", streamWrite),
	"flush": starlark.NewBuiltin("flush", streamFlush),
}

func (s *Stream) Attr(name string) (starlark.Value, error) {
	if method, ok := streamMethods[name]; ok {
		return method.BindReceiver(s), nil
	}
	return nil, nil
}

func (s *Stream) AttrNames() []string {
	return []string{"flush", "write"}
}

func streamWrite(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &text); err != nil {
		return nil, err
	}
	n, err := io.WriteString(b.Receiver().(*Stream), text)
	if err != nil {
		return nil, err
	}
	return starlark.MakeInt(n), nil
}

func streamFlush(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	return starlark.None, nil
}
