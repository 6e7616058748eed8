package recognizers

import "unicode"

func IsNewline(r rune) bool { return r == '\n' || r == '\r' }

func IsBlank(r rune) bool { return r == ' ' || r == '\t' }

func IsUnderscore(r rune) bool { return r == '_' }

func IsBeginBin(r rune) bool { return r == 'b' || r == 'B' }

func IsBeginOct(r rune) bool { return r == 'c' || r == 'C' }

func IsBeginHex(r rune) bool { return r == 'x' || r == 'X' }

func IsBin(r rune) bool { return r == '0' || r == '1' }

func IsOct(r rune) bool { return r >= '0' && r <= '7' }

func IsDigit(r rune) bool { return r >= '0' && r <= '9' }

func IsHex(r rune) bool {
	return IsDigit(r) ||
		r >= 'A' && r <= 'F' ||
		r >= 'a' && r <= 'f'
}

func IsDot(r rune) bool { return r == '.' }

func IsSingleQuote(r rune) bool { return r == '\'' }

func IsDoubleQuote(r rune) bool { return r == '"' }

func IsEquals(r rune) bool { return r == '=' }

// IsIdentStart reports whether r may begin an identifier.
func IsIdentStart(r rune) bool {
	return unicode.IsLetter(r) || IsUnderscore(r)
}

// IsIdentPart reports whether r may continue an identifier.
func IsIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || IsUnderscore(r)
}
