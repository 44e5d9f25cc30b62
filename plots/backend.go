package plots

import "io"

// Handle is an open figure.
type Handle interface {
	Num() int
	EncodePNG(w io.Writer) error
}

// ShowAll is called by the module level show().
type ShowAll func() error

// ShowOne is called by a figure's own show method.
type ShowOne func(Handle) error

// Backend is what output capture needs from a plotting library.
type Backend interface {
	Figures() []Handle
	ReplaceShow(all ShowAll, one ShowOne) (restore func())
}
