package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads values from CUE files. For single values, earlier files take
// precedence.
type Loader struct {
	load func() ([]source, error)
}

type source struct {
	path  string
	value cue.Value
}

// NewLoader validates every file against schema, a list of field
// declarations closed into one struct. Files are read on first use.
func NewLoader(paths []string, schema string) Loader {
	return Loader{
		load: sync.OnceValues(func() ([]source, error) {
			// schema and files must share a runtime to unify
			ctx := cuecontext.New()

			var schemaValue cue.Value
			if schema != "" {
				schemaValue = ctx.CompileString("close({" + schema + "})")
				if err := schemaValue.Err(); err != nil {
					return nil, fmt.Errorf("schema: %w", err)
				}
			}

			ret := make([]source, 0, len(paths))
			for _, path := range paths {
				content, err := os.ReadFile(path)
				if err != nil {
					return nil, err
				}
				value := ctx.CompileBytes(content, cue.Filename(path))
				if err := value.Err(); err != nil {
					return nil, fmt.Errorf("%s: %w", path, err)
				}
				if schemaValue.Exists() {
					if err := schemaValue.Unify(value).Validate(); err != nil {
						return nil, fmt.Errorf("%s: %w", path, err)
					}
				}
				ret = append(ret, source{
					path:  path,
					value: value,
				})
			}
			return ret, nil
		}),
	}
}

// Values yields the value at path of every file that defines it, in order.
func (l Loader) Values(path string) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		sources, err := l.load()
		if err != nil {
			yield(Value{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, src := range sources {
			value := src.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if !yield(Value{
				File:  src.path,
				Path:  path,
				Value: value,
			}, nil) {
				return
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.Values(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return fmt.Errorf("%w: %s", ErrValueNotFound, path)
}

// Value is a config value with where it came from.
type Value struct {
	File  string
	Path  string
	Value cue.Value
}

func (v Value) Decode(target any) error {
	if err := v.Value.Decode(target); err != nil {
		return fmt.Errorf("%s: %s: %w", v.File, v.Path, err)
	}
	return nil
}
