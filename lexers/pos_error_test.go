package lexers

import (
	"errors"
	"strings"
	"testing"

	"github.com/reusee/mangrove/tokens"
)

func TestPosError(t *testing.T) {
	source := NewSource("test.mg", "a = 1\r\n\tb $ c")
	err := WithPos(errors.New("foo"), source, tokens.Position{Line: 1, Character: 3})
	expected := "foo at test.mg:2:4\n\tb $ c\n\t  ^\n"
	if err.Error() != expected {
		t.Fatalf("got %q", err.Error())
	}

	// already positioned
	again := WithPos(err, source, tokens.Position{})
	if again != err {
		t.Fatalf("got %v", again)
	}

	if WithPos(nil, source, tokens.Position{}) != nil {
		t.Fatal()
	}

	noSource := PosError{Err: errors.New("bar")}
	if noSource.Error() != "bar" {
		t.Fatalf("got %q", noSource.Error())
	}
}

func TestPosErrorWide(t *testing.T) {
	source := NewSource("wide.mg", "世界 @")
	err := WithPos(errors.New("x"), source, tokens.Position{Line: 0, Character: 3})
	lines := strings.Split(err.Error(), "\n")
	if lines[2] != "     ^" {
		t.Fatalf("got %q", lines[2])
	}
}

func TestCheck(t *testing.T) {
	source := NewSource("test.mg", "x = 1\n  $ '' y")
	toks := lexAll(t, source.Content)
	err := Check(source, toks)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, `invalid token: "$" at test.mg:2:3`) {
		t.Fatalf("got %s", msg)
	}
	if !strings.Contains(msg, `invalid token: "" at test.mg:2:5`) {
		t.Fatalf("got %s", msg)
	}
	var posErr PosError
	if !errors.As(err, &posErr) {
		t.Fatal()
	}
	if posErr.Pos != (tokens.Position{Line: 1, Character: 2}) {
		t.Fatalf("got %v", posErr.Pos)
	}

	if err := Check(source, lexAll(t, "x = 1")); err != nil {
		t.Fatal(err)
	}
}

func TestSourceLines(t *testing.T) {
	source := NewSource("s", "a\r\nb\rc\n")
	if len(source.Lines) != 4 ||
		source.Lines[0] != "a" ||
		source.Lines[1] != "b" ||
		source.Lines[2] != "c" ||
		source.Lines[3] != "" {
		t.Fatalf("got %q", source.Lines)
	}
}
