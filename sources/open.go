package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/reusee/literate/nets"
)

var ErrFetch = errors.New("fetch")

// Stdin is the location that reads the script from standard input.
const Stdin = "-"

// Open returns a reader for a script location: a file path, an http(s) URL,
// or Stdin. name is what the script is known by in logs and reports.
// Content that does not look like text is rejected with ErrNotText.
type Open func(ctx context.Context, location string) (name string, r io.ReadCloser, err error)

func (Module) Open(
	client nets.HTTPClient,
) Open {
	return func(ctx context.Context, location string) (name string, r io.ReadCloser, err error) {
		switch {
		case location == Stdin:
			name, r = "<stdin>", io.NopCloser(os.Stdin)
		case IsRemote(location):
			name, r, err = fetch(ctx, client, location)
		default:
			name = location
			r, err = os.Open(location)
		}
		if err != nil {
			return "", nil, err
		}
		r, err = requireText(name, r)
		if err != nil {
			return "", nil, err
		}
		return name, r, nil
	}
}

func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") ||
		strings.HasPrefix(location, "https://")
}

func fetch(ctx context.Context, client *http.Client, location string) (string, io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return "", nil, fmt.Errorf("%w: %s: %s", ErrFetch, location, resp.Status)
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." {
		name = u.Host
	}
	return name, resp.Body, nil
}
