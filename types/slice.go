// SPDX-License-Identifier: NONE
package types

import (
	"gitlab.com/fisherprime/natsort"
)

type (
	// StringSlice for `string`, ordered naturally by Sort.
	StringSlice []string
)

// Sort for `StringSlice`, in natural order.
//
// Equal entries keep their relative order.
func (sl *StringSlice) Sort(opts ...natsort.Option) {
	copy(*sl, natsort.Sort(*sl, opts...))
}

// IsSorted reports whether the `StringSlice` is in natural order.
func (sl *StringSlice) IsSorted(opts ...natsort.Option) bool { return natsort.IsSorted(*sl, opts...) }

// Locate for `StringSlice`.
func (sl *StringSlice) Locate(val string) (resl int) {
	resl = -1

	for index := range *sl {
		if (*sl)[index] == val {
			resl = index
			return
		}
	}

	return
}

// UniquePrepend to `StringSlice`.
func (sl *StringSlice) UniquePrepend(values ...string) {
	for index := range values {
		newValue := values[index]
		if sl.Locate(newValue) > -1 {
			continue
		}

		*sl = append(StringSlice{newValue}, *sl...)
	}
}

// UniqueAppend to `StringSlice`.
func (sl *StringSlice) UniqueAppend(values ...string) {
	for index := range values {
		newValue := values[index]
		if sl.Locate(newValue) > -1 {
			continue
		}

		*sl = append(*sl, newValue)
	}
}

// Pop the first occurrence of each value from `StringSlice`.
func (sl *StringSlice) Pop(values ...string) {
	for index := range values {
		if loc := sl.Locate(values[index]); loc > -1 {
			*sl = append((*sl)[:loc], (*sl)[loc+1:]...)
		}
	}
}
