// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package flags provides iteration and formatting over
// the set bits of flag masks.
package flags

import (
	"iter"
	"math/bits"
	"strconv"
	"strings"
)

// Mask represents the types usable as flag masks.
// Negative values are not valid masks.
type Mask interface {
	~int | ~int32 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Each returns an iterator over the set bits of m, from the
// least significant to the most significant. Each yielded
// value has exactly one bit set.
func Each[T Mask](m T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := uint64(m); x != 0; x &= x - 1 {
			if !yield(T(uint64(1) << bits.TrailingZeros64(x))) {
				return
			}
		}
	}
}

// Count returns the number of set bits in m.
func Count[T Mask](m T) int { return bits.OnesCount64(uint64(m)) }

// String formats m as a '|'-separated list of bit names.
// name is called for every set bit and must return the
// empty string for bits it does not know, which are then
// written in hexadecimal. zero is returned when m is 0.
func String[T Mask](m T, zero string, name func(T) string) string {
	if m == 0 {
		return zero
	}
	var sb strings.Builder
	for b := range Each(m) {
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		if s := name(b); s != "" {
			sb.WriteString(s)
		} else {
			sb.WriteString("0x")
			sb.WriteString(strconv.FormatUint(uint64(b), 16))
		}
	}
	return sb.String()
}
