// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

type (
	// Kind identifies the class of a Token.
	Kind int

	// Token is a maximal run of either digit or non-digit characters.
	Token struct {
		// Val holds the token's original text.
		Val string
		// Kind is the type of this Token.
		Kind Kind

		// digits is the ASCII magnitude of a Numeric token without leading zeros; "0" for zero.
		digits string
	}

	// Key is the ordered sequence of tokens lexed from a string.
	//
	// Keys are sort keys only; they are never persisted.
	Key []Token
)

const (
	_       Kind = iota // Consume 0 to start actual numbering at 1.
	Numeric             // A run of decimal digits.
	Text                // A run of non-digits.
)

// String is the fmt.Stringer implementation for Kind.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "Numeric"
	case Text:
		return "Text"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token errors.
var (
	ErrNotNumeric = errors.New("token is not numeric")
)

// NewText creates a Text Token.
func NewText(val string) Token { return Token{Kind: Text, Val: val} }

// NewNumeric creates a Numeric Token from a run of decimal digits.
func NewNumeric(val string) Token { return Token{Kind: Numeric, Val: val, digits: normalizeDigits(val)} }

// Digits obtains the ASCII magnitude of a Numeric token, leading zeros removed.
//
// The result is empty for Text tokens.
func (t Token) Digits() string { return t.digits }

// Width obtains the original rune count of the token.
func (t Token) Width() int { return utf8.RuneCountInString(t.Val) }

// Value parses a Numeric token's integer value.
//
// Digit runs exceeding the uint64 range yield a strconv.ErrRange wrapped error; comparison never
// relies on this value.
func (t Token) Value() (uint64, error) {
	if t.Kind != Numeric {
		return 0, ErrNotNumeric
	}

	return strconv.ParseUint(t.digits, 10, 64)
}

// CompareMagnitude compares the integer values of two Numeric tokens.
//
// Arbitrarily long digit runs are supported.
func (t Token) CompareMagnitude(o Token) int {
	if len(t.digits) != len(o.digits) {
		if len(t.digits) < len(o.digits) {
			return -1
		}
		return 1
	}

	return strings.Compare(t.digits, o.digits)
}

// String reconstructs the source string of a Key.
func (k Key) String() string {
	var b strings.Builder
	for _, t := range k {
		b.WriteString(t.Val)
	}

	return b.String()
}

// normalizeDigits converts a digit run to ASCII, dropping leading zeros.
func normalizeDigits(run string) string {
	var b strings.Builder
	b.Grow(len(run))

	for _, r := range run {
		d := digitValue(r)
		if b.Len() == 0 && d == 0 {
			continue
		}
		b.WriteByte(byte('0' + d))
	}

	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}
