// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package devices

import (
	"time"

	gp "github.com/indigo-embedded/gpioperiph"
)

// NV08CCSMStatus reports power state from the power pin's logical level.
func NV08CCSMStatus(p *gp.Peripheral) bool {
	return p.FindMandatoryPin(gp.FunctionPower).Read() != 0
}

// NV08CCSMPowerOn turns the NV08C-CSM GNSS module's power pin on.
func NV08CCSMPowerOn(p *gp.Peripheral) error {
	setMandatory(p, gp.FunctionPower, 1)
	time.Sleep(200 * time.Millisecond)
	return nil
}

// NV08CCSMPowerOff turns the NV08C-CSM GNSS module's power pin off.
func NV08CCSMPowerOff(p *gp.Peripheral) error {
	setMandatory(p, gp.FunctionPower, 0)
	time.Sleep(500 * time.Millisecond)
	return nil
}

// NV08CCSMReset pulses the module's hardware #RESET line low for 1ms, per
// the module's 140ms post-reset hold requirement: the supervisor keeps the
// digital core in reset for at least that long after the line returns
// high, so the sequence waits 140ms before returning.
func NV08CCSMReset(p *gp.Peripheral) error {
	gp.RunSequence(p, []gp.Step{
		{Label: "1", Description: "reset held high initially", Function: gp.FunctionReset, Value: 1, Mandatory: true, Sleep: 500 * time.Millisecond},
		{Label: "2", Description: "reset low for 1ms", Function: gp.FunctionReset, Value: 0, Mandatory: true, Sleep: time.Millisecond},
		{Label: "3", Description: "reset high, wait out supervisor hold", Function: gp.FunctionReset, Value: 1, Mandatory: true, Sleep: 140 * time.Millisecond},
	})
	return nil
}

// NV08CCSMSetup installs the NV08C-CSM vtable.
func NV08CCSMSetup(p *gp.Peripheral) error {
	p.SetVTable(gp.VTable{
		Setup:           NV08CCSMSetup,
		PowerOn:         NV08CCSMPowerOn,
		PowerOff:        NV08CCSMPowerOff,
		Reset:           NV08CCSMReset,
		Status:          NV08CCSMStatus,
		CheckAndPowerOn: gp.GenericCheckAndPowerOn,
	})
	p.FindMandatoryPin(gp.FunctionReset)
	p.FindMandatoryPin(gp.FunctionPower)
	return nil
}
