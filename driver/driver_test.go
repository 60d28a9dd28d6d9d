// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	stderrors "errors"
	"testing"

	"github.com/pkg/errors"
)

type testDriver struct {
	name string
	id   int
}

func (d *testDriver) Open() (GPU, error) { return nil, ErrNoDevice }
func (d *testDriver) Name() string       { return d.name }
func (d *testDriver) Close()             {}

func TestRegister(t *testing.T) {
	mu.Lock()
	saved := drivers
	drivers = make([]Driver, 0, 2)
	mu.Unlock()
	defer func() {
		mu.Lock()
		drivers = saved
		mu.Unlock()
	}()

	a := &testDriver{"a", 0}
	b := &testDriver{"b", 0}
	Register(a)
	Register(b)
	drv := Drivers()
	if len(drv) != 2 || drv[0] != Driver(a) || drv[1] != Driver(b) {
		t.Fatalf("Drivers():\nhave %v\nwant [a b]", drv)
	}
	a2 := &testDriver{"a", 1}
	Register(a2)
	drv = Drivers()
	if len(drv) != 2 || drv[0] != Driver(a2) {
		t.Fatalf("Drivers() after replace:\nhave %v\nwant [a2 b]", drv)
	}
	drv[0] = nil
	if Drivers()[0] == nil {
		t.Fatal("Drivers: returned slice aliases the registry")
	}
}

func TestConfigError(t *testing.T) {
	var err error = &ConfigError{Req: "depth format", Detail: "[D32f D24unS8ui]"}
	if have, want := err.Error(), "driver: unsupported depth format ([D32f D24unS8ui])"; have != want {
		t.Fatalf("ConfigError.Error():\nhave %s\nwant %s", have, want)
	}
	if have, want := (&ConfigError{Req: "queue family"}).Error(), "driver: unsupported queue family"; have != want {
		t.Fatalf("ConfigError.Error():\nhave %s\nwant %s", have, want)
	}
	if !stderrors.Is(err, ErrUnsupported) {
		t.Fatal("errors.Is(ConfigError, ErrUnsupported):\nhave false\nwant true")
	}
	wrapped := errors.Wrap(errors.WithStack(err), "setup")
	if !stderrors.Is(wrapped, ErrUnsupported) {
		t.Fatal("errors.Is(wrapped, ErrUnsupported):\nhave false\nwant true")
	}
	var ce *ConfigError
	if !stderrors.As(wrapped, &ce) || ce.Req != "depth format" {
		t.Fatalf("errors.As(wrapped, *ConfigError):\nhave %v\nwant %v", ce, err)
	}
	if errors.Cause(wrapped) != err {
		t.Fatalf("errors.Cause(wrapped):\nhave %v\nwant %v", errors.Cause(wrapped), err)
	}
}
