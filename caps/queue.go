// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package caps

import (
	"github.com/pkg/errors"

	"github.com/gviegas/transit/driver"
	"github.com/gviegas/transit/internal/logger"
)

// QueueFamily returns the index of the queue family that
// best matches want.
// Dedicated families are preferred: a compute request
// first looks for a family that supports compute but not
// graphics, and a transfer request first looks for a
// family that supports transfer but neither graphics nor
// compute. Failing that, the first family that supports
// every flag in want is chosen.
// It returns a *driver.ConfigError if no family supports
// want.
func QueueFamily(families []driver.QueueFlag, want driver.QueueFlag) (int, error) {
	if want&driver.QCompute != 0 {
		for i, f := range families {
			if f&want != 0 && f&driver.QGraphics == 0 {
				logger.Get().Debug("dedicated compute queue family", "index", i, "flags", f)
				return i, nil
			}
		}
	}
	if want&driver.QTransfer != 0 {
		for i, f := range families {
			if f&want != 0 && f&(driver.QGraphics|driver.QCompute) == 0 {
				logger.Get().Debug("dedicated transfer queue family", "index", i, "flags", f)
				return i, nil
			}
		}
	}
	for i, f := range families {
		if f&want == want {
			logger.Get().Debug("queue family", "index", i, "flags", f, "want", want)
			return i, nil
		}
	}
	return -1, errors.WithStack(&driver.ConfigError{
		Req:    "queue family",
		Detail: "no family supports " + want.String(),
	})
}
