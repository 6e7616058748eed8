package lexers

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/mangrove/logs"
	"github.com/reusee/mangrove/modes"
	"github.com/reusee/mangrove/tokens"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

func (Module) Options(
	logger logs.Logger,
) Options {
	return Options{
		Logger: logger,
	}
}

// Lex tokenizes a whole source, excluding the EOF token.
type Lex func(ctx context.Context, source *Source) ([]tokens.Token, error)

func (Module) Lex(
	logger logs.Logger,
	options Options,
	mode modes.Mode,
) Lex {
	return func(ctx context.Context, source *Source) ([]tokens.Token, error) {
		ctx = logs.WithSource(ctx, source.Name)

		toks, err := Tokenize(source.Content, options.Apply()...)
		if err != nil {
			return nil, logs.WrapSource(ctx, err)
		}

		if mode == modes.ModeDevelopment {
			if err := verify(options.Positions, toks); err != nil {
				return nil, logs.WrapSource(ctx, err)
			}
		}

		invalid := 0
		for _, token := range toks {
			if !token.Valid() {
				invalid++
			}
		}
		logger.InfoContext(ctx, "lexed",
			"tokens", len(toks),
			"invalid", invalid,
			"positions", options.Positions.String(),
		)

		return toks, nil
	}
}
