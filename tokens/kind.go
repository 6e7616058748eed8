package tokens

import "fmt"

// Kind is the lexical category of a token.
// The order of the constants is part of the contract with downstream
// consumers and must not change.
type Kind uint8

const (
	Invalid Kind = iota
	EOF
	Whitespace
	Comment
	Newline
	Dot
	Ellipsis
	Semi
	Ident
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftSquare
	RightSquare
	Comma
	Colon
	BinLit
	OctLit
	HexLit
	IntLit
	StringLit
	CharLit
	BoolLit
	NullptrLit
	Invert
	IncOp
	MulOp
	AddOp
	ShiftOp
	BitOp
	RelOp
	EquOp
	LogicOp

	LocationSpec
	StorageSpec
	Type
	AssignOp

	FromStmt
	ImportStmt
	AsStmt
	NewStmt
	DeleteStmt
	ReturnStmt
	IfStmt
	ElifStmt
	ElseStmt
	ForStmt
	WhileStmt
	DoStmt

	NoneType
	Arrow
	ClassDef
	EnumDef
	FunctionDef
	OperatorDef
	Decorator
	Visibility
	Unsafe

	// placeholders for the parser, never produced by the lexer
	Float32Lit
	Float64Lit

	numKinds
)

var kindNames = [numKinds]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Whitespace:   "Whitespace",
	Comment:      "Comment",
	Newline:      "Newline",
	Dot:          "Dot",
	Ellipsis:     "Ellipsis",
	Semi:         "Semi",
	Ident:        "Ident",
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	LeftSquare:   "LeftSquare",
	RightSquare:  "RightSquare",
	Comma:        "Comma",
	Colon:        "Colon",
	BinLit:       "BinLit",
	OctLit:       "OctLit",
	HexLit:       "HexLit",
	IntLit:       "IntLit",
	StringLit:    "StringLit",
	CharLit:      "CharLit",
	BoolLit:      "BoolLit",
	NullptrLit:   "NullptrLit",
	Invert:       "Invert",
	IncOp:        "IncOp",
	MulOp:        "MulOp",
	AddOp:        "AddOp",
	ShiftOp:      "ShiftOp",
	BitOp:        "BitOp",
	RelOp:        "RelOp",
	EquOp:        "EquOp",
	LogicOp:      "LogicOp",
	LocationSpec: "LocationSpec",
	StorageSpec:  "StorageSpec",
	Type:         "Type",
	AssignOp:     "AssignOp",
	FromStmt:     "FromStmt",
	ImportStmt:   "ImportStmt",
	AsStmt:       "AsStmt",
	NewStmt:      "NewStmt",
	DeleteStmt:   "DeleteStmt",
	ReturnStmt:   "ReturnStmt",
	IfStmt:       "IfStmt",
	ElifStmt:     "ElifStmt",
	ElseStmt:     "ElseStmt",
	ForStmt:      "ForStmt",
	WhileStmt:    "WhileStmt",
	DoStmt:       "DoStmt",
	NoneType:     "NoneType",
	Arrow:        "Arrow",
	ClassDef:     "ClassDef",
	EnumDef:      "EnumDef",
	FunctionDef:  "FunctionDef",
	OperatorDef:  "OperatorDef",
	Decorator:    "Decorator",
	Visibility:   "Visibility",
	Unsafe:       "Unsafe",
	Float32Lit:   "Float32Lit",
	Float64Lit:   "Float64Lit",
}

var kindsByName = func() map[string]Kind {
	ret := make(map[string]Kind, numKinds)
	for i, name := range kindNames {
		ret[name] = Kind(i)
	}
	return ret
}()

func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if k >= numKinds {
		return nil, fmt.Errorf("bad token kind: %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	kind, ok := kindsByName[string(text)]
	if !ok {
		return fmt.Errorf("unknown token kind: %s", text)
	}
	*k = kind
	return nil
}

// IsTrivia reports whether tokens of this kind carry no syntax.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment || k == Newline
}

// Kinds returns every kind in contract order.
func Kinds() []Kind {
	ret := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		ret = append(ret, k)
	}
	return ret
}
