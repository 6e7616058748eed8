package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/mangrove/lexers"
	"github.com/reusee/mangrove/logs"
	"github.com/reusee/mangrove/tokens"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, toStringDict(globals))
	}
}

func toStringDict(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict)
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}

// TokenGlobals returns the globals of a token tap: the lexed tokens, the
// source text, and lex(text) to lex more text with the same options.
func TokenGlobals(source *lexers.Source, toks []tokens.Token, options lexers.Options) map[string]any {
	return map[string]any{
		"source": source.Content,
		"tokens": toks,
		"lex": starlark.NewBuiltin("lex", func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var text string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "text", &text); err != nil {
				return nil, err
			}
			toks, err := lexers.Tokenize(text, options.Apply()...)
			if err != nil {
				return nil, err
			}
			return toStarlarkValue(toks), nil
		}),
	}
}
