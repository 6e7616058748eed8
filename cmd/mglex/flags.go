package main

import (
	"runtime"

	"github.com/reusee/mangrove/cmds"
	"github.com/reusee/mangrove/tokens"
	"github.com/reusee/mangrove/vars"
)

var (
	fileFlags = cmds.Collect[string]("file", "lex a file, - for standard input")
	jsonFlag  = cmds.Switch("-json", "print one JSON object per token")
	treeFlag  = cmds.Switch("-tree", "print tokens grouped by line as a tree")
	checkFlag = cmds.Switch("-check", "report invalid tokens and exit 1 if any")
	tapFlag   = cmds.Switch("-tap", "open a starlark REPL over the tokens of each file")
	jobsFlag  = cmds.Var[int]("-jobs", "number of files lexed concurrently")
	kindFlags = cmds.Collect[tokens.Kind]("-kind", "print only tokens of this kind, may repeat")
)

type Format uint8

const (
	FormatTable Format = iota
	FormatJSON
	FormatTree
)

func (Module) Format() Format {
	switch {
	case *jsonFlag:
		return FormatJSON
	case *treeFlag:
		return FormatTree
	}
	return FormatTable
}

type CheckInvalid bool

func (Module) CheckInvalid() CheckInvalid {
	return CheckInvalid(*checkFlag)
}

type TapTokens bool

func (Module) TapTokens() TapTokens {
	return TapTokens(*tapFlag)
}

type Jobs int

func (Module) Jobs(
	tapTokens TapTokens,
) Jobs {
	if tapTokens {
		// one REPL at a time
		return 1
	}
	return Jobs(vars.FirstNonZero(*jobsFlag, runtime.NumCPU()))
}

// Kinds selects the printed tokens, all when empty.
type Kinds []tokens.Kind

func (Module) Kinds() Kinds {
	return Kinds(*kindFlags)
}
