package lookup

import (
	"math/big"
	"strings"
	"unicode"
)

// ID is a customer id read from the input element. An input with no leading
// integer yields the NaN id, which is still sent to the API.
type ID struct {
	n     *big.Int
	valid bool
}

// NaN is the id of an input that holds no integer.
var NaN = ID{}

// ParseID reads the longest integer prefix of raw. Leading whitespace is
// skipped, a sign is allowed, and a 0x prefix switches to hexadecimal.
// "42abc" is 42, "3.9" is 3, "abc" and "" are NaN.
func ParseID(raw string) ID {
	s := strings.TrimLeftFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return NaN
	}

	n, ok := new(big.Int).SetString(s[:end], base)
	if !ok {
		return NaN
	}
	if neg {
		n.Neg(n)
	}
	return ID{n: n, valid: true}
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// Valid reports whether the id is a number.
func (id ID) Valid() bool { return id.valid }

// String is the path segment sent to the API: decimal digits or "NaN".
func (id ID) String() string {
	if !id.valid {
		return "NaN"
	}
	return id.n.String()
}
