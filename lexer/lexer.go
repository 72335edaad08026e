// SPDX-License-Identifier: MIT
package lexer

// REF: https://go.dev/talks/2011/lex.slide
// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

type (
	// NextOperation type for the next function to be executed.
	NextOperation func() NextOperation

	// ValidationFunction type for functions that validate rune identities.
	ValidationFunction func(rune) bool

	// Lexer splits a string into a Key at digit / non-digit boundaries.
	//
	// Positions are byte offsets into the input so that invalid UTF-8 survives lexing untouched.
	Lexer struct {
		input string

		// start is the starting position of the current token.
		start int
		// pos is the current position in the input.
		pos int
		// width of the last rune read by Next.
		width int

		key Key

		debug  bool
		logger logrus.FieldLogger
	}

	// Option defines the Lexer functional option type.
	Option func(*Lexer)
)

const (
	// eof is returned by Next at the end of the input; NUL is valid input.
	eof rune = -1

	defKeySize = 4
)

// Table lookup for the ASCII digits, the common case for file names.
var asciiDigits = [256]bool{
	'0': true, '1': true, '2': true, '3': true, '4': true,
	'5': true, '6': true, '7': true, '8': true, '9': true,
}

var defLogger logrus.FieldLogger = logrus.New()

// New creates a Lexer for the input string.
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{
		input:  input,
		key:    make(Key, 0, defKeySize),
		logger: defLogger,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// Tokenize lexes s into a Key.
//
// The operation is pure: identical input always yields an identical Key.
func Tokenize(s string) Key { return New(s).Lex() }

// Lex lexes the input by executing state functions, returning the resulting Key.
func (l *Lexer) Lex() Key {
	for stateFunction := l.LexStart; stateFunction != nil; {
		stateFunction = stateFunction()
	}

	return l.key
}

// LexStart dispatches on the class of the next rune.
func (l *Lexer) LexStart() NextOperation {
	r := l.Peek()
	switch {
	case r == eof:
		return nil
	case isDigit(r):
		return l.LexNumeric
	default:
		return l.LexText
	}
}

// LexNumeric consumes a run of digits.
func (l *Lexer) LexNumeric() NextOperation {
	l.AcceptWhile(isDigit)
	l.Emit(Numeric)

	return l.LexStart
}

// LexText consumes a run of non-digits.
func (l *Lexer) LexText() NextOperation {
	l.AcceptWhile(isNotDigit)
	l.Emit(Text)

	return l.LexStart
}

// Next returns the next rune in the input.
func (l *Lexer) Next() (r rune) {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}

	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width

	return
}

// Peek returns the next rune without consuming it.
func (l *Lexer) Peek() (r rune) {
	r = l.Next()
	l.Backup()

	return
}

// Backup steps back one rune; it may only be called once per call of Next.
func (l *Lexer) Backup() { l.pos -= l.width }

// AcceptWhile consumes runes while condition is true.
func (l *Lexer) AcceptWhile(fn ValidationFunction) {
	for {
		r := l.Next()
		if r == eof {
			return
		}

		if !fn(r) {
			l.Backup()
			return
		}
	}
}

// Emit appends the pending input as a Token of the given Kind.
func (l *Lexer) Emit(kind Kind) {
	val := l.input[l.start:l.pos]
	if l.debug {
		l.logger.Debugf("lexer Emit %s: %q", kind, val)
	}

	t := Token{Kind: kind, Val: val}
	if kind == Numeric {
		t.digits = normalizeDigits(val)
	}

	l.key = append(l.key, t)
	l.start = l.pos
}

// isDigit returns true for a Unicode decimal digit.
func isDigit(r rune) bool {
	if r >= 0 && r < utf8.RuneSelf {
		return asciiDigits[r]
	}

	return unicode.IsDigit(r)
}

func isNotDigit(r rune) bool { return !isDigit(r) }

// digitValue obtains the numeric value of a decimal digit rune.
//
// Unicode assigns every decimal digit set as a contiguous block of ten starting at zero, adjacent
// sets included; the distance to the start of the digit run modulo ten is the value.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}

	offset := 0
	for unicode.IsDigit(r - rune(offset) - 1) {
		offset++
	}

	return offset % 10
}
