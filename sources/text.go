package sources

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

var ErrNotText = errors.New("not a text file")

const sniffLen = 3072

type textReader struct {
	*bufio.Reader
	io.Closer
}

// requireText fails when the head of r does not look like text.
func requireText(name string, r io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		r.Close()
		return nil, err
	}
	if len(head) > 0 && !isText(head) {
		r.Close()
		return nil, fmt.Errorf("%w: %s (%s)", ErrNotText, name, mimetype.Detect(head))
	}
	return textReader{
		Reader: br,
		Closer: r,
	}, nil
}

func isText(content []byte) bool {
	for t := mimetype.Detect(content); t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return true
		}
	}
	return false
}
