// SPDX-License-Identifier: MIT
package natsort

// List is a type wrapper for []string sorting in natural order through sort.Interface.
//
// Less tokenizes both operands per call; prefer Sort for large inputs.
type List []string

// Len is the number of elements in the collection.
func (l List) Len() int { return len(l) }

// Less reports whether the element with index i must sort before the element with index j.
func (l List) Less(i, j int) bool { return Less(l[i], l[j]) }

// Swap swaps the elements with indexes i and j.
func (l List) Swap(i, j int) { l[i], l[j] = l[j], l[i] }
