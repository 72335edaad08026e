// SPDX-License-Identifier: MIT
package natsort

// REF: https://blog.codinghorror.com/sorting-for-humans-natural-sort-order
//
// Digit runs compare by value, other runs compare by code point; a name lacking a trailing
// drive-strength number tokenizes to a prefix of its suffixed variants and so sorts before them.

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/natsort/lexer"
)

type (
	// Config defines configuration options for the ordering operations.
	Config struct {
		// Logger for sort messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool

		// FoldCase compares Text tokens case-insensitively; ties keep their input order.
		FoldCase bool
	}

	// Option defines the Config functional option type.
	Option func(*Config)

	// entry pairs an item's position with its Key.
	entry struct {
		key   lexer.Key
		index int
	}
)

var defLogger logrus.FieldLogger = logrus.New()

// DefConfig obtains the package's default options.
func DefConfig() *Config {
	return &Config{
		Logger: defLogger,
	}
}

// NewConfig applies options over DefConfig.
func NewConfig(opts ...Option) *Config {
	cfg := DefConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Validate()

	return cfg
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = defLogger
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithFoldCase configures case-insensitive Text comparison.
func WithFoldCase(fold bool) Option { return func(c *Config) { c.FoldCase = fold } }

// CompareKeys orders two Keys, returning -1, 0 or +1.
//
// A Numeric token facing a Text token at the same position sorts first. A Key that is a strict
// prefix of the other sorts first.
func CompareKeys(a, b lexer.Key) int { return compareKeys(a, b, false) }

// Compare orders two strings naturally.
func Compare(a, b string) int { return CompareKeys(lexer.Tokenize(a), lexer.Tokenize(b)) }

// Less reports whether a sorts before b in natural order.
func Less(a, b string) bool { return Compare(a, b) < 0 }

// Compare orders two Keys under the Config.
func (c *Config) Compare(a, b lexer.Key) int { return compareKeys(a, b, c.FoldCase) }

func compareKeys(a, b lexer.Key, fold bool) int {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}

	for index := 0; index < limit; index++ {
		if resl := compareTokens(a[index], b[index], fold); resl != 0 {
			return resl
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func compareTokens(a, b lexer.Token, fold bool) int {
	switch {
	case a.Kind == lexer.Numeric && b.Kind == lexer.Numeric:
		return a.CompareMagnitude(b)
	case a.Kind == lexer.Numeric:
		return -1
	case b.Kind == lexer.Numeric:
		return 1
	case fold:
		return strings.Compare(strings.ToLower(a.Val), strings.ToLower(b.Val))
	default:
		return strings.Compare(a.Val, b.Val)
	}
}

// Sort returns a new slice holding items in ascending natural order.
//
// The sort is stable and items is left untouched.
func Sort(items []string, opts ...Option) []string {
	return SortFunc(items, func(s string) string { return s }, opts...)
}

// SortFunc returns a new slice holding items ordered naturally by their labels.
//
// label is called once per item.
func SortFunc[T any](items []T, label func(T) string, opts ...Option) (sorted []T) {
	cfg := NewConfig(opts...)

	entries := make([]entry, len(items))
	for index := range items {
		entries[index] = entry{key: lexer.Tokenize(label(items[index])), index: index}
	}

	slices.SortStableFunc(entries, func(a, b entry) int { return cfg.Compare(a.key, b.key) })

	sorted = make([]T, len(items))
	for index := range entries {
		sorted[index] = items[entries[index].index]
	}

	if cfg.Debug {
		cfg.Logger.Debugf("sorted keys: %s", spew.Sdump(entries))
	}

	return
}

// IsSorted reports whether items are in ascending natural order.
func IsSorted(items []string, opts ...Option) bool {
	cfg := NewConfig(opts...)

	keys := make([]lexer.Key, len(items))
	for index := range items {
		keys[index] = lexer.Tokenize(items[index])
	}

	return slices.IsSortedFunc(keys, cfg.Compare)
}
