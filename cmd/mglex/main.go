package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/mangrove/cmds"
	"github.com/reusee/mangrove/lexconfigs"
	"github.com/reusee/mangrove/lexers"
	"github.com/reusee/mangrove/logs"
	"github.com/reusee/mangrove/modes"
)

func main() {
	cmds.Execute(os.Args[1:])

	sources, err := readSources(*fileFlags, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	scope = lexconfigs.Fork(scope)

	scope.Call(func(
		run Run,
		configErr lexconfigs.ConfigError,
		logger logs.Logger,
	) {
		err := run(context.Background(), os.Stdout, sources)
		if err == nil {
			return
		}
		if errors.Is(err, lexers.ErrInvalidToken) {
			fmt.Fprintln(os.Stderr, err)
		} else if configErr.Err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		} else {
			logger.Error("lex failed",
				"error", err,
			)
		}
		os.Exit(1)
	})
}
