package cmds

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/reusee/bfk/vars"
)

// Executor maps flag-style command names to functions. Arguments
// following a name are converted to the function's parameter types.
type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}

	usage := Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help")
	ret.Define("-h", usage)

	return ret
}

func (e *Executor) Define(name string, command *Command) {
	e.register(name, command)
	for _, alias := range command.Aliases {
		e.register(alias, command)
	}
}

func (e *Executor) register(name string, command *Command) {
	if _, ok := e.commands[name]; ok {
		panic(fmt.Errorf("duplicated command %s", name))
	}
	e.commands[name] = command
}

var errorType = reflect.TypeFor[error]()

func (e *Executor) Execute(args []string) error {
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := e.commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		var callArgs []reflect.Value
		for i, max := 0, command.Func.Type().NumIn(); i < max; i++ {
			value, err := getArg(command.Func.Type().In(i), args)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				args = args[1:]
			}
			callArgs = append(callArgs, value)
		}
		rets := command.Func.Call(callArgs)
		if len(rets) > 0 {
			if err, ok := rets[0].Interface().(error); ok && err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Executor) PrintUsage() {
	names := make([]string, 0, len(e.commands))
	for name := range e.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		command := e.commands[name]
		if command.Description != "" {
			fmt.Fprintf(os.Stderr, "  %s\n    \t%s\n", name, command.Description)
		} else {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
	}
}

func getArg(t reflect.Type, args []string) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		ptr := reflect.New(t.Elem())
		if len(args) == 0 {
			// optional, keep zero value
			return ptr, nil
		}
		if err := parseInto(ptr.Elem(), args[0]); err != nil {
			return reflect.Value{}, err
		}
		return ptr, nil
	}

	if len(args) == 0 {
		return reflect.Value{}, fmt.Errorf("expecting argument, got nothing")
	}
	value := reflect.New(t).Elem()
	if err := parseInto(value, args[0]); err != nil {
		return reflect.Value{}, err
	}
	return value, nil
}

func parseInto(value reflect.Value, str string) error {
	switch value.Kind() {

	case reflect.Bool:
		value.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return fmt.Errorf("convert %s to int: %w", str, err)
		}
		value.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(str, 10, 64)
		if err != nil {
			return fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		value.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("convert %s to float: %w", str, err)
		}
		value.SetFloat(n)

	case reflect.String:
		value.SetString(str)

	default:
		return fmt.Errorf("unsupported type: %v", value.Type())
	}
	return nil
}
