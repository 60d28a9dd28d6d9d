// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package flags

import (
	"slices"
	"testing"
)

func TestEach(t *testing.T) {
	for _, x := range [...]struct {
		m    uint32
		want []uint32
	}{
		{0, nil},
		{1, []uint32{1}},
		{0b1010, []uint32{2, 8}},
		{0x80000001, []uint32{1, 0x80000000}},
		{0xff, []uint32{1, 2, 4, 8, 16, 32, 64, 128}},
	} {
		var have []uint32
		for b := range Each(x.m) {
			have = append(have, b)
		}
		if !slices.Equal(have, x.want) {
			t.Fatalf("Each(%#x):\nhave %v\nwant %v", x.m, have, x.want)
		}
		var or uint32
		for _, b := range have {
			or |= b
		}
		if or != x.m {
			t.Fatalf("Each(%#x): OR of bits\nhave %#x\nwant %#x", x.m, or, x.m)
		}
		if n := Count(x.m); n != len(x.want) {
			t.Fatalf("Count(%#x):\nhave %d\nwant %d", x.m, n, len(x.want))
		}
	}
}

func TestEachBreak(t *testing.T) {
	n := 0
	for range Each(0xf0) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("Each: iterations after break\nhave %d\nwant 2", n)
	}
}

func TestString(t *testing.T) {
	name := func(b int) string {
		switch b {
		case 1:
			return "A"
		case 2:
			return "B"
		}
		return ""
	}
	for _, x := range [...]struct {
		m    int
		want string
	}{
		{0, "none"},
		{1, "A"},
		{3, "A|B"},
		{7, "A|B|0x4"},
		{0x100, "0x100"},
	} {
		if s := String(x.m, "none", name); s != x.want {
			t.Fatalf("String(%#x):\nhave %q\nwant %q", x.m, s, x.want)
		}
	}
}
