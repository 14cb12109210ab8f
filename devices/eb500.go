// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package devices

import (
	"fmt"
	"time"

	gp "github.com/indigo-embedded/gpioperiph"
)

// EB500Status reports power state from the power pin's logical level.
func EB500Status(p *gp.Peripheral) bool {
	return p.FindMandatoryPin(gp.FunctionPower).Read() != 0
}

// EB500PowerOn turns the EB-500 GPS module's power pin on and waits out
// its startup time.
func EB500PowerOn(p *gp.Peripheral) error {
	setMandatory(p, gp.FunctionPower, 1)
	time.Sleep(200 * time.Millisecond)
	return nil
}

// EB500PowerOff turns the EB-500 GPS module's power pin off.
func EB500PowerOff(p *gp.Peripheral) error {
	setMandatory(p, gp.FunctionPower, 0)
	time.Sleep(500 * time.Millisecond)
	return nil
}

// EB500Setup installs the EB-500 vtable and leaves the module powered on.
func EB500Setup(p *gp.Peripheral) error {
	p.SetVTable(gp.VTable{
		Setup:           EB500Setup,
		PowerOn:         EB500PowerOn,
		PowerOff:        EB500PowerOff,
		Reset:           gp.GenericReset,
		Status:          EB500Status,
		CheckAndPowerOn: gp.GenericCheckAndPowerOn,
	})
	pin := p.FindMandatoryPin(gp.FunctionPower)
	if err := pin.SetOutput(1); err != nil {
		return fmt.Errorf("devices: eb-500 setup: %w", err)
	}
	return nil
}
