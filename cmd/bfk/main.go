package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/bfk/bflang"
	"github.com/reusee/bfk/cmds"
	"github.com/reusee/bfk/configs"
	"github.com/reusee/bfk/debugs"
	"github.com/reusee/bfk/logs"
	"github.com/reusee/bfk/modes"
	"github.com/reusee/bfk/vars"
	"github.com/reusee/dscope"
)

var (
	tapeSize   = cmds.Var[int]("-tape-size")
	noCompress = cmds.Switch("-no-compress")
	interp     = cmds.Switch("-interp")
	trace      = cmds.Switch("-trace")
	tap        = cmds.Switch("-tap")
	configPath = cmds.Var[string]("-config")
)

const (
	exitUsage            = 1
	exitSourceLoad       = 2
	exitUnmatchedBracket = 3
	exitTapeOutOfBounds  = 4
	exitRunIO            = 5
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: bfk [flags] <source file>")
	cmds.PrintUsage()
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(exitUsage)
	}

	// the source path is the last argument; everything before it is
	// flag commands
	path := args[len(args)-1]
	flagArgs := args[:len(args)-1]
	if strings.HasPrefix(path, "-") {
		// no source path given, maybe asking for help
		flagArgs = args
		path = ""
	}
	if err := cmds.Execute(flagArgs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(exitUsage)
	}
	if path == "" {
		usage()
		os.Exit(exitUsage)
	}

	scope := dscope.New(
		new(bflang.Module),
		new(logs.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		makeMachine bflang.MakeMachine,
		tapFn debugs.Tap,
	) {
		ctx := logs.WithProgram(context.Background(), path)

		var config configs.MachineConfig
		if *configPath != "" {
			var err error
			config, err = configs.LoadMachine([]string{*configPath})
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(exitUsage)
			}
		}

		src, err := bflang.LoadSource(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitSourceLoad)
		}

		size := vars.FirstNonZero(*tapeSize, config.TapeSize, bflang.DefaultTapeSize)
		m := makeMachine(size, os.Stdin, os.Stdout)

		var collector *debugs.TraceCollector
		if *trace || config.Trace {
			collector = debugs.NewTraceCollector()
			m.Trace = collector.Add
		}

		compress := !*noCompress
		if c := config.Compress; c != nil && !*c {
			compress = false
		}

		logger.DebugContext(ctx, "run",
			"tape_size", size,
			"compress", compress,
			"interp", *interp,
		)

		runErr := func() error {
			if *interp {
				return m.EvalSource(src)
			}
			prog, err := bflang.Compile(src)
			if err != nil {
				return err
			}
			if compress {
				prog = bflang.Compress(prog)
			}
			return m.EvalProgram(prog)
		}()

		if *tap {
			tapFn(ctx, "after run: "+path, debugs.MachineGlobals(m))
		}

		if collector != nil {
			fmt.Fprint(os.Stderr, collector.String())
		}

		if runErr != nil {
			fmt.Fprintln(os.Stderr, runErr)
			os.Exit(exitCode(runErr))
		}
	})
}

func exitCode(err error) int {
	var loadErr bflang.SourceLoadError
	var openErr bflang.UnmatchedOpenBracket
	var closeErr bflang.UnmatchedCloseBracket
	var boundsErr bflang.TapeOutOfBounds
	var readErr bflang.InputReadError
	var writeErr bflang.OutputWriteError

	switch {
	case errors.As(err, &loadErr):
		return exitSourceLoad
	case errors.As(err, &openErr),
		errors.As(err, &closeErr):
		return exitUnmatchedBracket
	case errors.As(err, &boundsErr):
		return exitTapeOutOfBounds
	case errors.As(err, &readErr),
		errors.As(err, &writeErr):
		return exitRunIO
	}
	return exitUsage
}
