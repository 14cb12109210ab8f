// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package devices

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	gp "github.com/indigo-embedded/gpioperiph"
)

func newEB500(t *testing.T) *gp.Peripheral {
	t.Helper()
	p := gp.New(gp.KindGPS, "eb500", "EB-500", gpsPowerDescriptors(), resolverFor(map[string]gpio.PinIO{
		"POWER": &gpiotest.Pin{N: "POWER", Fn: "Out"},
	}))
	p.SetVTable(gp.VTable{Setup: EB500Setup})
	if err := p.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	t.Cleanup(p.Close)
	return p
}

func TestEB500SetupLeavesPowerOn(t *testing.T) {
	p := newEB500(t)
	if !p.Status() {
		t.Fatal("expected EB500Setup to drive the power pin high")
	}
}

func TestEB500PowerOffThenOnRoundTrip(t *testing.T) {
	p := newEB500(t)
	if err := EB500PowerOff(p); err != nil {
		t.Fatalf("EB500PowerOff: %v", err)
	}
	if p.Status() {
		t.Fatal("expected status to report off after power-off")
	}
	if err := EB500PowerOn(p); err != nil {
		t.Fatalf("EB500PowerOn: %v", err)
	}
	if !p.Status() {
		t.Fatal("expected status to report on after power-on")
	}
}
