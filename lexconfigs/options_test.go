package lexconfigs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/mangrove/lexers"
)

func scopeWithConfig(t *testing.T, content string) dscope.Scope {
	dir := t.TempDir()
	if content != "" {
		if err := os.WriteFile(filepath.Join(dir, "mangrove.cue"), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dscope.New(new(Module)).Fork(
		func() Dirs {
			return Dirs{dir}
		},
	)
}

func TestDefaults(t *testing.T) {
	scopeWithConfig(t, "").Call(func(
		options LexOptions,
		skipTrivia SkipTrivia,
	) {
		if options.Positions != lexers.LineColumn {
			t.Fatalf("got %v", options.Positions)
		}
		if options.DoubledOverAdvance {
			t.Fatal()
		}
		if options.Logger == nil {
			t.Fatal()
		}
		if skipTrivia {
			t.Fatal()
		}
	})
}

func TestConfigFile(t *testing.T) {
	scope := scopeWithConfig(t, `
lexer: {
	positions: "legacy"
	doubled_over_advance: true
	skip_trivia: true
}
`)
	scope = Fork(scope)
	scope.Call(func(
		options lexers.Options,
		skipTrivia SkipTrivia,
	) {
		if options.Positions != lexers.Legacy {
			t.Fatalf("got %v", options.Positions)
		}
		if !options.DoubledOverAdvance {
			t.Fatal()
		}
		if !skipTrivia {
			t.Fatal()
		}
	})
}

func TestBadConfigValue(t *testing.T) {
	scopeWithConfig(t, `lexer: positions: "sideways"`).Call(func(
		configErr ConfigError,
		positions Positions,
		skipTrivia SkipTrivia,
	) {
		if configErr.Err == nil {
			t.Fatal("expecting error")
		}
		if !strings.Contains(configErr.Err.Error(), "mangrove.cue") {
			t.Fatalf("got %v", configErr.Err)
		}
		// defaults
		if lexers.PositionMode(positions) != lexers.LineColumn {
			t.Fatalf("got %v", positions)
		}
		if skipTrivia {
			t.Fatal()
		}
	})
}

func TestBadConfigSyntax(t *testing.T) {
	scopeWithConfig(t, `lexer: {`).Call(func(
		configErr ConfigError,
		options LexOptions,
	) {
		if configErr.Err == nil {
			t.Fatal("expecting error")
		}
		if options.Positions != lexers.LineColumn {
			t.Fatalf("got %v", options.Positions)
		}
	})
}

func TestNoConfigError(t *testing.T) {
	scopeWithConfig(t, `lexer: skip_trivia: true`).Call(func(
		configErr ConfigError,
	) {
		if configErr.Err != nil {
			t.Fatal(configErr.Err)
		}
	})
}
