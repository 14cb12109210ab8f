// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package devices

import (
	"fmt"
	"time"

	gp "github.com/indigo-embedded/gpioperiph"
)

// GPSSim508Status reports power state from the power pin's logical level:
// this GPS variant, fitted to starter-kit boards, has no separate status
// line.
func GPSSim508Status(p *gp.Peripheral) bool {
	return p.FindMandatoryPin(gp.FunctionPower).Read() != 0
}

// GPSSim508PowerOn runs the Sim508 GPS power-on sequence (figure 28): hold
// power high and wait out the module's startup time. There is no status
// pin to confirm against, so the sequence result is not checked.
func GPSSim508PowerOn(p *gp.Peripheral) error {
	if p.Status() {
		return gp.ErrAlreadyOn
	}
	gp.RunSequence(p, []gp.Step{
		{Label: "1", Description: "set power on, wait 220ms", Function: gp.FunctionPower, Value: 1, Mandatory: true, Sleep: 220 * time.Millisecond},
	})
	return nil
}

// GPSSim508PowerOff runs the Sim508 GPS power-off sequence. There is no
// precise way to confirm power-down on this module.
func GPSSim508PowerOff(p *gp.Peripheral) error {
	if !p.Status() {
		return gp.ErrAlreadyOff
	}
	gp.RunSequence(p, []gp.Step{
		{Label: "1", Description: "set power off, wait 500ms", Function: gp.FunctionPower, Value: 0, Mandatory: true, Sleep: 500 * time.Millisecond},
	})
	return nil
}

// GPSSim508Setup installs the Sim508 GPS vtable and leaves the module
// powered on, matching the original driver's setup-time behavior of
// driving POWER high unconditionally.
func GPSSim508Setup(p *gp.Peripheral) error {
	p.SetVTable(gp.VTable{
		Setup:           GPSSim508Setup,
		PowerOn:         GPSSim508PowerOn,
		PowerOff:        GPSSim508PowerOff,
		Reset:           gp.GenericReset,
		Status:          GPSSim508Status,
		CheckAndPowerOn: gp.GenericCheckAndPowerOn,
	})
	pin := p.FindMandatoryPin(gp.FunctionPower)
	if err := pin.SetOutput(1); err != nil {
		return fmt.Errorf("devices: gps sim508 setup: %w", err)
	}
	return nil
}
