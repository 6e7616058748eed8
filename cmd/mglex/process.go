package main

import (
	"context"
	"io"
	"os"
	"slices"

	"github.com/reusee/mangrove/debugs"
	"github.com/reusee/mangrove/lexconfigs"
	"github.com/reusee/mangrove/lexers"
	"github.com/reusee/mangrove/render"
	"github.com/reusee/mangrove/tokens"
)

const stdinName = "<stdin>"

func readSources(names []string, stdin io.Reader) ([]*lexers.Source, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	var sources []*lexers.Source
	for _, name := range names {
		var content []byte
		var err error
		if name == "-" {
			name = stdinName
			content, err = io.ReadAll(stdin)
		} else {
			content, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, wrap(err)
		}
		sources = append(sources, lexers.NewSource(name, string(content)))
	}
	return sources, nil
}

// Process lexes one source and writes the tokens to w.
type Process func(ctx context.Context, w io.Writer, source *lexers.Source) error

func (Module) Process(
	lex lexers.Lex,
	options lexers.Options,
	skipTrivia lexconfigs.SkipTrivia,
	kinds Kinds,
	format Format,
	checkInvalid CheckInvalid,
	tapTokens TapTokens,
	tap debugs.Tap,
) Process {
	return func(ctx context.Context, w io.Writer, source *lexers.Source) error {
		toks, err := lex(ctx, source)
		if err != nil {
			return err
		}

		if skipTrivia {
			toks = collect(lexers.SkipTrivia(lexers.NewSliceSource(toks)))
		}
		printed := toks
		if len(kinds) > 0 {
			printed = slices.DeleteFunc(slices.Clone(toks), func(token tokens.Token) bool {
				return !token.Is(kinds...)
			})
		}

		switch format {
		case FormatJSON:
			err = render.JSONLines(w, printed)
		case FormatTree:
			err = render.Tree(w, source.Name, printed)
		default:
			err = render.Table(w, printed)
		}
		if err != nil {
			return wrap(err)
		}

		if tapTokens {
			tap(ctx, source.Name, debugs.TokenGlobals(source, toks, options))
		}

		if checkInvalid {
			checked := source
			if options.Positions != lexers.LineColumn {
				// no line to point at
				checked = nil
			}
			if err := lexers.Check(checked, toks); err != nil {
				return err
			}
		}

		return nil
	}
}

func collect(source lexers.TokenSource) (ret []tokens.Token) {
	for {
		token := source.NextToken()
		if token.Kind == tokens.EOF {
			return
		}
		ret = append(ret, token)
	}
}
