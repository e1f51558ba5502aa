package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/bfk/bflang"
	"github.com/reusee/bfk/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap drops into an interactive Starlark session with the given
// globals, for poking at machine state.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Collect(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}

// MachineGlobals exposes a machine's state as tap globals.
func MachineGlobals(m *bflang.Machine) map[string]any {
	globals := map[string]any{
		"state":     m.State().String(),
		"data_ptr":  m.DataPtr(),
		"instr_ptr": m.InstrPtr(),
		"cells":     m.Cells(),
		"cell": func() int {
			return int(m.Cell())
		},
	}
	if err := m.Err(); err != nil {
		globals["err"] = err.Error()
	}
	return globals
}
