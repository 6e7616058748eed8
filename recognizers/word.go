package recognizers

import "github.com/reusee/mangrove/tokens"

func IsTrue(s string) bool  { return s == "true" }
func IsFalse(s string) bool { return s == "false" }
func IsNull(s string) bool  { return s == "nullptr" }
func IsNone(s string) bool  { return s == "none" }

func IsAnd(s string) bool { return s == "and" }
func IsOr(s string) bool  { return s == "or" }
func IsNot(s string) bool { return s == "not" }

func IsRelation(s string) bool {
	return s == "<" || s == "<=" || s == ">" || s == ">="
}

func IsEquality(s string) bool {
	return IsRelation(s) || s == "!=" || s == "=="
}

func IsNew(s string) bool      { return s == "new" }
func IsDelete(s string) bool   { return s == "delete" }
func IsFrom(s string) bool     { return s == "from" }
func IsImport(s string) bool   { return s == "import" }
func IsAs(s string) bool       { return s == "as" }
func IsReturn(s string) bool   { return s == "return" }
func IsIf(s string) bool       { return s == "if" }
func IsElif(s string) bool     { return s == "elif" }
func IsElse(s string) bool     { return s == "else" }
func IsFor(s string) bool      { return s == "for" }
func IsWhile(s string) bool    { return s == "while" }
func IsDo(s string) bool       { return s == "do" }
func IsClass(s string) bool    { return s == "class" }
func IsEnum(s string) bool     { return s == "enum" }
func IsFunction(s string) bool { return s == "function" }
func IsOperator(s string) bool { return s == "operator" }

func IsConst(s string) bool    { return s == "const" }
func IsStatic(s string) bool   { return s == "static" }
func IsVolatile(s string) bool { return s == "volatile" }

func IsStorageSpec(s string) bool {
	return IsConst(s) || IsStatic(s) || IsVolatile(s)
}

func IsLocationSpec(s string) bool {
	return s == "eeprom" || s == "flash" || s == "rom"
}

func IsVisibility(s string) bool {
	return s == "public" || s == "private" || s == "protected"
}

func IsUnsafe(s string) bool { return s == "unsafe" }

type wordRule struct {
	match   func(string) bool
	kind    tokens.Kind
	rewrite string
}

// checked in order, first match wins
var wordRules = []wordRule{
	{match: IsTrue, kind: tokens.BoolLit},
	{match: IsFalse, kind: tokens.BoolLit},
	{match: IsNull, kind: tokens.NullptrLit},
	{match: IsAnd, kind: tokens.LogicOp, rewrite: "&"},
	{match: IsOr, kind: tokens.LogicOp, rewrite: "|"},
	{match: IsNot, kind: tokens.Invert, rewrite: "!"},
	{match: IsLocationSpec, kind: tokens.LocationSpec},
	{match: IsStorageSpec, kind: tokens.StorageSpec},
	{match: IsNew, kind: tokens.NewStmt},
	{match: IsDelete, kind: tokens.DeleteStmt},
	{match: IsFrom, kind: tokens.FromStmt},
	{match: IsImport, kind: tokens.ImportStmt},
	{match: IsAs, kind: tokens.AsStmt},
	{match: IsReturn, kind: tokens.ReturnStmt},
	{match: IsIf, kind: tokens.IfStmt},
	{match: IsElif, kind: tokens.ElifStmt},
	{match: IsElse, kind: tokens.ElseStmt},
	{match: IsFor, kind: tokens.ForStmt},
	{match: IsWhile, kind: tokens.WhileStmt},
	{match: IsDo, kind: tokens.DoStmt},
	{match: IsNone, kind: tokens.NoneType},
	{match: IsClass, kind: tokens.ClassDef},
	{match: IsEnum, kind: tokens.EnumDef},
	{match: IsFunction, kind: tokens.FunctionDef},
	{match: IsOperator, kind: tokens.OperatorDef},
	{match: IsVisibility, kind: tokens.Visibility},
	{match: IsUnsafe, kind: tokens.Unsafe},
}

// Classify maps identifier text to its dedicated kind.
// Word operators are rewritten to their glyphs.
// ok is false for plain identifiers, in which case kind is tokens.Ident and value is word.
func Classify(word string) (kind tokens.Kind, value string, ok bool) {
	for _, rule := range wordRules {
		if !rule.match(word) {
			continue
		}
		value = word
		if rule.rewrite != "" {
			value = rule.rewrite
		}
		return rule.kind, value, true
	}
	return tokens.Ident, word, false
}
