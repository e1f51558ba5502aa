package configs

import (
	"errors"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var ErrValueNotFound = errors.New("value not found")

// Loader reads values from a set of CUE files. Files are compiled
// lazily on first use and earlier files take precedence.
type Loader struct {
	load func() ([]cue.Value, error)
}

// NewLoader builds a loader over filePaths. When schemaSrc is
// non-empty each file must unify with close({schemaSrc}), so unknown
// fields are rejected.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{

		load: sync.OnceValues(func() ([]cue.Value, error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			values := make([]cue.Value, 0, len(filePaths))
			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				value := ctx.CompileBytes(
					content,
					cue.Filename(filePath),
				)
				if err := value.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}

				values = append(values, value)
			}

			return values, nil
		}),
	}
}

// IterCueValues yields the value at path from every file that defines
// it, in file order.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		values, err := l.load()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, root := range values {
			value := root.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if !yield(&value, nil) {
				return
			}
		}
	}
}

// AssignFirst decodes the value at path from the first file that
// defines it into target. ErrValueNotFound when no file does.
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
