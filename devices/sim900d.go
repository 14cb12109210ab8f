// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package devices

import (
	"fmt"
	"time"

	gp "github.com/indigo-embedded/gpioperiph"
)

// Sim900DPowerOn runs the SimCom Sim900D power-on sequence (Hardware
// Design v1.04, figure 9).
func Sim900DPowerOn(p *gp.Peripheral) error {
	if p.Status() {
		return gp.ErrAlreadyOn
	}
	ok := gp.RunSequence(p, []gp.Step{
		{Label: "0", Description: "turn on POWER pin if available", Function: gp.FunctionPower, Value: 1},
		{Label: "1", Description: "pwrkey to 1 for 0.5s", Function: gp.FunctionPowerKey, Value: 1, Mandatory: true, Sleep: 500 * time.Millisecond},
		{Label: "2", Description: "pwrkey to 0 for > 1s", Function: gp.FunctionPowerKey, Value: 0, Mandatory: true, Sleep: 1100 * time.Millisecond},
		{Label: "3", Description: "pwrkey to 1", Function: gp.FunctionPowerKey, Value: 1, Mandatory: true},
		{Label: "4", Description: "wait for status pin to come up", Function: gp.FunctionStatus, Value: 1, Mandatory: true, Timeout: 10 * time.Second},
	})
	if !ok {
		return fmt.Errorf("devices: sim900d power-on timed out waiting for status")
	}
	return nil
}

// Sim900DPowerOff runs the SimCom Sim900D power-off sequence (figure 10).
func Sim900DPowerOff(p *gp.Peripheral) error {
	if !p.Status() {
		return gp.ErrAlreadyOff
	}
	ok := gp.RunSequence(p, []gp.Step{
		{Label: "1", Description: "pwrkey to 0 for 1s < t < 5s", Function: gp.FunctionPowerKey, Value: 0, Mandatory: true, Sleep: 2 * time.Second},
		{Label: "2", Description: "pwrkey to 1", Function: gp.FunctionPowerKey, Value: 1, Mandatory: true, Sleep: 50 * time.Millisecond},
		{Label: "3", Description: "wait for status pin to come down", Function: gp.FunctionStatus, Value: 0, Mandatory: true, Timeout: 10 * time.Second},
	})
	if !ok {
		return fmt.Errorf("devices: sim900d power-off timed out waiting for status")
	}
	return nil
}

// Sim900DSetup installs the Sim900D vtable and arms keep-on recovery.
func Sim900DSetup(p *gp.Peripheral) error {
	p.SetVTable(gp.VTable{
		Setup:           Sim900DSetup,
		PowerOn:         Sim900DPowerOn,
		PowerOff:        Sim900DPowerOff,
		Reset:           gp.GenericReset,
		Status:          GenericGSMStatus,
		CheckAndPowerOn: gp.GenericCheckAndPowerOn,
	})
	return genericSimcomSetup(p, true)
}
