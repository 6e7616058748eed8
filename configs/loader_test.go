package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
nested?: {
	flag?: bool
}
`

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "test.cue", `
str: "bar"
list: [1, 2, 3]
`),
	}, testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "test.cue", `str: "bar"`),
		writeFile(t, "test2.cue", `
str: "foo"
nested: flag: true
`),
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	strs = strs[:0]
	for str := range All[string](loader, "str") {
		strs = append(strs, str)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	if !First[bool](loader, "nested.flag") {
		t.Fatal()
	}
	if First[string](loader, "nope") != "" {
		t.Fatal()
	}
	flag, ok, err := Lookup[bool](loader, "nested.flag")
	if err != nil || !ok || !flag {
		t.Fatalf("got %v %v %v", flag, ok, err)
	}
	_, ok, err = Lookup[int](loader, "list")
	if err != nil || ok {
		t.Fatalf("got %v %v", ok, err)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "bad.cue", `unknown_field: "x"`),
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	if loader.Err() == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := Lookup[string](loader, "str"); ok || err != nil {
		t.Fatalf("got %v %v", ok, err)
	}
	var zero Loader
	if _, ok, err := Lookup[string](zero, "str"); ok || err != nil {
		t.Fatalf("got %v %v", ok, err)
	}
}
