package lexconfigs

import (
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/mangrove/cmds"
	"github.com/reusee/mangrove/configs"
	"github.com/reusee/mangrove/lexers"
	"github.com/reusee/mangrove/logs"
	"github.com/reusee/mangrove/vars"
)

var (
	legacyPositionsFlag    = cmds.Switch("-legacy-positions", "advance the line on every character")
	doubledOverAdvanceFlag = cmds.Switch("-doubled-over-advance", "skip one character after ++ -- && ||")
	skipTriviaFlag         = cmds.Switch("-skip-trivia", "drop whitespace, comment and newline tokens")
)

// ConfigError holds the error of loading config files or reading lexer
// settings from them. Settings fall back to defaults when it is set.
type ConfigError struct {
	Err error
}

func (Module) ConfigError(
	loader configs.Loader,
) ConfigError {
	if err := loader.Err(); err != nil {
		return ConfigError{Err: err}
	}
	str, _, err := configs.Lookup[string](loader, "lexer.positions")
	if err == nil {
		_, err = lexers.ParsePositionMode(str)
	}
	if err == nil {
		_, _, err = configs.Lookup[bool](loader, "lexer.doubled_over_advance")
	}
	if err == nil {
		_, _, err = configs.Lookup[bool](loader, "lexer.skip_trivia")
	}
	if err != nil {
		return ConfigError{Err: fmt.Errorf("lexer config: %w", err)}
	}
	return ConfigError{}
}

// lookup returns the zero value on errors, which ConfigError reports.
func lookup[T any](loader configs.Loader, path string) T {
	value, _, err := configs.Lookup[T](loader, path)
	if err != nil {
		var zero T
		return zero
	}
	return value
}

type Positions lexers.PositionMode

func (Module) Positions(
	loader configs.Loader,
) Positions {
	// flag
	if *legacyPositionsFlag {
		return Positions(lexers.Legacy)
	}
	// config
	mode, err := lexers.ParsePositionMode(lookup[string](loader, "lexer.positions"))
	if err != nil {
		return Positions(lexers.LineColumn)
	}
	return Positions(mode)
}

type DoubledOverAdvance bool

func (Module) DoubledOverAdvance(
	loader configs.Loader,
) DoubledOverAdvance {
	return DoubledOverAdvance(vars.FirstNonZero(
		*doubledOverAdvanceFlag,
		lookup[bool](loader, "lexer.doubled_over_advance"),
	))
}

type SkipTrivia bool

func (Module) SkipTrivia(
	loader configs.Loader,
) SkipTrivia {
	return SkipTrivia(vars.FirstNonZero(
		*skipTriviaFlag,
		lookup[bool](loader, "lexer.skip_trivia"),
	))
}

// LexOptions are lexer options from flags and config files.
type LexOptions lexers.Options

func (Module) LexOptions(
	positions Positions,
	doubledOverAdvance DoubledOverAdvance,
	logger logs.Logger,
) LexOptions {
	return LexOptions{
		Positions:          lexers.PositionMode(positions),
		DoubledOverAdvance: bool(doubledOverAdvance),
		Logger:             logger,
	}
}

// Fork makes lexers.Options in scope follow flags and config files.
func Fork(scope dscope.Scope) dscope.Scope {
	return scope.Fork(func(
		options LexOptions,
	) lexers.Options {
		return lexers.Options(options)
	})
}
