// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package devices

import (
	"fmt"
	"time"

	gp "github.com/indigo-embedded/gpioperiph"
)

// Sim508PowerOn runs the SimCom Sim508 power-on sequence (Hardware Design
// 2.08, figure 3): a brief power-key pulse followed by a wait for the
// status pin to assert.
func Sim508PowerOn(p *gp.Peripheral) error {
	if p.Status() {
		return gp.ErrAlreadyOn
	}
	ok := gp.RunSequence(p, []gp.Step{
		{Label: "0", Description: "turn on POWER pin if available", Function: gp.FunctionPower, Value: 1},
		{Label: "1", Description: "pwrkey to 1 for 0.5s", Function: gp.FunctionPowerKey, Value: 1, Mandatory: true, Sleep: 500 * time.Millisecond},
		{Label: "2", Description: "pwrkey to 0 for > 2s", Function: gp.FunctionPowerKey, Value: 0, Mandatory: true, Sleep: 2100 * time.Millisecond},
		{Label: "3", Description: "pwrkey to 1", Function: gp.FunctionPowerKey, Value: 1, Mandatory: true},
		{Label: "4", Description: "wait for status pin to come up", Function: gp.FunctionStatus, Value: 1, Mandatory: true, Timeout: 12 * time.Second},
	})
	if !ok {
		return fmt.Errorf("devices: sim508 power-on timed out waiting for status")
	}
	return nil
}

// Sim508PowerOff runs the SimCom Sim508 power-off sequence (figure 4).
func Sim508PowerOff(p *gp.Peripheral) error {
	if !p.Status() {
		return gp.ErrAlreadyOff
	}
	ok := gp.RunSequence(p, []gp.Step{
		{Label: "1", Description: "pwrkey to 1 for 500ms", Function: gp.FunctionPowerKey, Value: 1, Mandatory: true, Sleep: 500 * time.Millisecond},
		{Label: "2", Description: "pwrkey to 0 for 1s < t < 2s", Function: gp.FunctionPowerKey, Value: 0, Mandatory: true, Sleep: 1500 * time.Millisecond},
		{Label: "3", Description: "pwrkey to 1", Function: gp.FunctionPowerKey, Value: 1, Mandatory: true},
		{Label: "4", Description: "wait for status pin to come down", Function: gp.FunctionStatus, Value: 0, Mandatory: true, Timeout: 10 * time.Second},
	})
	if !ok {
		return fmt.Errorf("devices: sim508 power-off timed out waiting for status")
	}
	return nil
}

// Sim508Setup installs the Sim508 vtable and arms keep-on recovery. Pass it
// as VTable.Setup to a Peripheral of KindGSM.
func Sim508Setup(p *gp.Peripheral) error {
	p.SetVTable(gp.VTable{
		Setup:           Sim508Setup,
		PowerOn:         Sim508PowerOn,
		PowerOff:        Sim508PowerOff,
		Reset:           gp.GenericReset,
		Status:          GenericGSMStatus,
		CheckAndPowerOn: gp.GenericCheckAndPowerOn,
	})
	return genericSimcomSetup(p, true)
}
