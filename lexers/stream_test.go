package lexers

import (
	"testing"

	"github.com/reusee/mangrove/tokens"
)

func TestStream(t *testing.T) {
	l, err := New("a b")
	if err != nil {
		t.Fatal(err)
	}
	stream := NewStream(l)
	if token := stream.Current(); token.Kind != tokens.Ident || token.Value != "a" {
		t.Fatalf("got %v", token)
	}
	// repeatable until consumed
	if token := stream.Current(); token.Value != "a" {
		t.Fatalf("got %v", token)
	}
	stream.Consume()
	if token := stream.Current(); token.Kind != tokens.Whitespace {
		t.Fatalf("got %v", token)
	}
	stream.Consume()
	if token := stream.Current(); token.Value != "b" {
		t.Fatalf("got %v", token)
	}
	stream.Consume()
	if token := stream.Current(); token.Kind != tokens.EOF {
		t.Fatalf("got %v", token)
	}
}

func TestStreamConsumeUnread(t *testing.T) {
	l, err := New("a b c")
	if err != nil {
		t.Fatal(err)
	}
	stream := NewStream(l)
	stream.Consume()
	stream.Consume()
	if token := stream.Current(); token.Kind != tokens.Ident || token.Value != "b" {
		t.Fatalf("got %v", token)
	}

	stream = NewStream(NewSliceSource(lexAll(t, "a b c")))
	stream.Current()
	stream.Consume()
	stream.Consume()
	if token := stream.Current(); token.Kind != tokens.Ident || token.Value != "b" {
		t.Fatalf("got %v", token)
	}
}

func TestSkipTrivia(t *testing.T) {
	l, err := New("a # c\n  /* d */ b")
	if err != nil {
		t.Fatal(err)
	}
	source := SkipTrivia(l)
	for _, value := range []string{"a", "b", ""} {
		if token := source.NextToken(); token.Value != value {
			t.Fatalf("got %v", token)
		}
	}
	if token := source.NextToken(); token.Kind != tokens.EOF {
		t.Fatalf("got %v", token)
	}
}

func TestSliceSource(t *testing.T) {
	toks := lexAll(t, "x+1")
	source := NewSliceSource(toks)
	stream := NewStream(source)
	var kinds []tokens.Kind
	for stream.Current().Kind != tokens.EOF {
		kinds = append(kinds, stream.Current().Kind)
		stream.Consume()
	}
	if len(kinds) != 3 ||
		kinds[0] != tokens.Ident ||
		kinds[1] != tokens.AddOp ||
		kinds[2] != tokens.IntLit {
		t.Fatalf("got %v", kinds)
	}
	if token := source.NextToken(); token.Kind != tokens.EOF {
		t.Fatalf("got %v", token)
	}
}
