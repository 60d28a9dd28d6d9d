// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package caps

import (
	"errors"
	"testing"

	"github.com/gviegas/transit/driver"
)

func TestQueueFamily(t *testing.T) {
	const (
		g = driver.QGraphics
		c = driver.QCompute
		x = driver.QTransfer
		s = driver.QSparse
	)
	for _, e := range [...]struct {
		families []driver.QueueFlag
		want     driver.QueueFlag
		index    int
	}{
		{[]driver.QueueFlag{g, c, g | c | x}, c, 1},
		{[]driver.QueueFlag{g, c, g | c | x}, x, 2},
		{[]driver.QueueFlag{g, c, g | c | x}, g, 0},
		{[]driver.QueueFlag{g | c | x, c | x, x}, c, 1},
		{[]driver.QueueFlag{g | c | x, c | x, x}, x, 2},
		{[]driver.QueueFlag{g | c | x, c | x, x | s}, x, 2},
		{[]driver.QueueFlag{g | c | x, g | c}, c, 0},
		{[]driver.QueueFlag{g | c | x, g | c}, x, 0},
		{[]driver.QueueFlag{g | c | x, c | x}, x, 0},
		{[]driver.QueueFlag{g | x, g | c | x}, c | x, 1},
		{[]driver.QueueFlag{g, x | s, c | s}, c, 2},
		{[]driver.QueueFlag{g | s, x | s}, s, 0},
	} {
		have, err := QueueFamily(e.families, e.want)
		if err != nil || have != e.index {
			t.Fatalf("QueueFamily(%v, %v):\nhave %d, %v\nwant %d, nil", e.families, e.want, have, err, e.index)
		}
	}
}

func TestQueueFamilyUnsupported(t *testing.T) {
	for _, e := range [...]struct {
		families []driver.QueueFlag
		want     driver.QueueFlag
	}{
		{nil, driver.QGraphics},
		{[]driver.QueueFlag{driver.QCompute, driver.QTransfer}, driver.QGraphics},
		{[]driver.QueueFlag{driver.QGraphics | driver.QTransfer}, driver.QVideoDecode},
	} {
		have, err := QueueFamily(e.families, e.want)
		var ce *driver.ConfigError
		if have != -1 || !errors.As(err, &ce) || ce.Req != "queue family" {
			t.Fatalf("QueueFamily(%v, %v):\nhave %d, %v\nwant -1, *driver.ConfigError", e.families, e.want, have, err)
		}
		if !errors.Is(err, driver.ErrUnsupported) {
			t.Fatalf("QueueFamily(%v, %v): error should wrap driver.ErrUnsupported", e.families, e.want)
		}
	}
}
