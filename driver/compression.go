// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"strconv"

	"github.com/gviegas/transit/internal/flags"
)

// CompressionFlag is the type of image compression modes.
type CompressionFlag int

// Compression modes.
const (
	// CompressDefault lets the implementation decide.
	CompressDefault CompressionFlag = 0
	// CompressFixedRateDefault enables fixed-rate
	// compression at an implementation-defined rate.
	CompressFixedRateDefault CompressionFlag = 1 << (iota - 1)
	// CompressFixedRateExplicit enables fixed-rate
	// compression at a rate chosen by the caller.
	CompressFixedRateExplicit
	// CompressDisabled disables all compression.
	CompressDisabled
)

var compressNames = [...]string{
	"FixedRateDefault",
	"FixedRateExplicit",
	"Disabled",
}

func (c CompressionFlag) String() string {
	return flags.String(c, "Default", func(b CompressionFlag) string {
		if i := bitIndex(int(b)); i < len(compressNames) {
			return compressNames[i]
		}
		return ""
	})
}

// FixedRate is the type of fixed-rate compression rates,
// expressed in bits per component.
type FixedRate int

// Fixed-rate compression rates.
const (
	Rate1BPC FixedRate = 1 << iota
	Rate2BPC
	Rate3BPC
	Rate4BPC
	Rate5BPC
	Rate6BPC
	Rate7BPC
	Rate8BPC
	Rate9BPC
	Rate10BPC
	Rate11BPC
	Rate12BPC
	Rate13BPC
	Rate14BPC
	Rate15BPC
	Rate16BPC
	Rate17BPC
	Rate18BPC
	Rate19BPC
	Rate20BPC
	Rate21BPC
	Rate22BPC
	Rate23BPC
	Rate24BPC
	RateNone FixedRate = 0

	rateMask = Rate24BPC<<1 - 1
)

// Rates decomposes r into single-bit rates, in ascending
// order. Bits that do not name a rate are ignored.
// OR-ing the result together yields r&(Rate24BPC<<1-1).
func (r FixedRate) Rates() []FixedRate {
	s := make([]FixedRate, 0, flags.Count(r&rateMask))
	for b := range flags.Each(r & rateMask) {
		s = append(s, b)
	}
	return s
}

// BPC returns the number of bits per component of a
// single-bit rate, or 0 if r is not a single rate.
func (r FixedRate) BPC() int {
	if r <= 0 || r > Rate24BPC || r&(r-1) != 0 {
		return 0
	}
	return bitIndex(int(r)) + 1
}

func (r FixedRate) String() string {
	return flags.String(r, "None", func(b FixedRate) string {
		if n := b.BPC(); n > 0 {
			return strconv.Itoa(n) + "BPC"
		}
		return ""
	})
}

// Compression describes the compression that is supported
// by, or applied to, an image.
type Compression struct {
	Flags     CompressionFlag
	FixedRate FixedRate
}

// IsFixedRate returns whether c describes fixed-rate
// compression.
func (c Compression) IsFixedRate() bool {
	return c.Flags&(CompressFixedRateDefault|CompressFixedRateExplicit) != 0 && c.FixedRate != RateNone
}

func (c Compression) String() string {
	if c.FixedRate == RateNone {
		return c.Flags.String()
	}
	return c.Flags.String() + " (" + c.FixedRate.String() + ")"
}
