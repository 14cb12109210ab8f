// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package devices

import (
	"fmt"
	"time"

	gp "github.com/indigo-embedded/gpioperiph"
)

// Sim900 state IDs. These are installed on the Peripheral by Sim900Setup
// and referenced from the attribute surface by name ("off", "on",
// "on-keep", "firmware-prepare", "firmware-load").
const (
	Sim900StateOff = iota
	Sim900StateOn
	Sim900StateKeepOn
	Sim900StateFirmwarePrepare
	Sim900StateFirmwareLoad
)

// Sim900PowerOn runs the SimCom Sim900 power-on sequence (Hardware Design
// v1.04-compatible, figure 9, page 25).
func Sim900PowerOn(p *gp.Peripheral) error {
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
		return fmt.Errorf("devices: sim900 power-on timed out waiting for status")
	}
	return nil
}

// Sim900PowerOff runs the SimCom Sim900 power-off sequence.
func Sim900PowerOff(p *gp.Peripheral) error {
	if !p.Status() {
		return gp.ErrAlreadyOff
	}
	ok := gp.RunSequence(p, []gp.Step{
		{Label: "1", Description: "pwrkey to 0 for 1s < t < 5s", Function: gp.FunctionPowerKey, Value: 0, Mandatory: true, Sleep: 2 * time.Second},
		{Label: "2", Description: "pwrkey to 1", Function: gp.FunctionPowerKey, Value: 1, Mandatory: true, Sleep: 50 * time.Millisecond},
		{Label: "3", Description: "wait for status pin to come down", Function: gp.FunctionStatus, Value: 0, Mandatory: true, Timeout: 10 * time.Second},
		{Label: "4", Description: "turn off power pin", Function: gp.FunctionPower, Value: 0, Mandatory: true, Sleep: time.Millisecond},
	})
	if !ok {
		return fmt.Errorf("devices: sim900 power-off timed out waiting for status")
	}
	return nil
}

// sim900Transitions is the Sim900's full state graph. Every edge mirrors a
// case of the original driver's transition switch exactly; edges absent
// here are rejected by gp.StateMachine.Transition with ErrInvalidTransition,
// matching states that fell through to nothing in the original switch.
func sim900Transitions() []gp.Transition {
	return []gp.Transition{
		{From: Sim900StateOff, To: Sim900StateOn, Action: func(p *gp.Peripheral) error {
			return Sim900PowerOn(p)
		}},
		{From: Sim900StateOff, To: Sim900StateKeepOn, Action: func(p *gp.Peripheral) error {
			armKeepOnIgnoringActive(p)
			return Sim900PowerOn(p)
		}},
		{From: Sim900StateOff, To: Sim900StateFirmwarePrepare, Action: func(p *gp.Peripheral) error {
			setMandatory(p, gp.FunctionPowerKey, 0)
			time.Sleep(10 * time.Millisecond)
			return nil
		}},

		{From: Sim900StateOn, To: Sim900StateOff, Action: func(p *gp.Peripheral) error {
			return Sim900PowerOff(p)
		}},
		{From: Sim900StateOn, To: Sim900StateKeepOn, Action: func(p *gp.Peripheral) error {
			armKeepOnIgnoringActive(p)
			return nil
		}},
		{From: Sim900StateOn, To: Sim900StateFirmwarePrepare, Action: func(p *gp.Peripheral) error {
			if err := Sim900PowerOff(p); err != nil {
				return err
			}
			setMandatory(p, gp.FunctionPowerKey, 0)
			return nil
		}},

		{From: Sim900StateKeepOn, To: Sim900StateOff, Action: func(p *gp.Peripheral) error {
			p.StopKeepOn()
			return Sim900PowerOff(p)
		}},
		{From: Sim900StateKeepOn, To: Sim900StateOn, Action: func(p *gp.Peripheral) error {
			p.StopKeepOn()
			return nil
		}},
		{From: Sim900StateKeepOn, To: Sim900StateFirmwarePrepare, Action: func(p *gp.Peripheral) error {
			p.StopKeepOn()
			if err := Sim900PowerOff(p); err != nil {
				return err
			}
			setMandatory(p, gp.FunctionPowerKey, 0)
			time.Sleep(10 * time.Millisecond)
			return nil
		}},

		{From: Sim900StateFirmwarePrepare, To: Sim900StateOff, Action: func(p *gp.Peripheral) error {
			setMandatory(p, gp.FunctionPowerKey, 1)
			time.Sleep(10 * time.Millisecond)
			return nil
		}},
		{From: Sim900StateFirmwarePrepare, To: Sim900StateOn, Action: func(p *gp.Peripheral) error {
			return Sim900PowerOn(p)
		}},
		{From: Sim900StateFirmwarePrepare, To: Sim900StateKeepOn, Action: func(p *gp.Peripheral) error {
			if err := Sim900PowerOn(p); err != nil {
				return err
			}
			armKeepOnIgnoringActive(p)
			return nil
		}},
		{From: Sim900StateFirmwarePrepare, To: Sim900StateFirmwareLoad, Action: func(p *gp.Peripheral) error {
			setMandatory(p, gp.FunctionPower, 1)
			return nil
		}},

		{From: Sim900StateFirmwareLoad, To: Sim900StateOff, Action: func(p *gp.Peripheral) error {
			setMandatory(p, gp.FunctionPower, 0)
			setMandatory(p, gp.FunctionPowerKey, 1)
			time.Sleep(10 * time.Millisecond)
			return nil
		}},
		{From: Sim900StateFirmwareLoad, To: Sim900StateOn, Action: func(p *gp.Peripheral) error {
			setMandatory(p, gp.FunctionPower, 0)
			time.Sleep(100 * time.Millisecond)
			return Sim900PowerOn(p)
		}},
		{From: Sim900StateFirmwareLoad, To: Sim900StateKeepOn, Action: func(p *gp.Peripheral) error {
			setMandatory(p, gp.FunctionPower, 0)
			time.Sleep(100 * time.Millisecond)
			if err := Sim900PowerOn(p); err != nil {
				return err
			}
			armKeepOnIgnoringActive(p)
			return nil
		}},
		{From: Sim900StateFirmwareLoad, To: Sim900StateFirmwarePrepare, Action: func(p *gp.Peripheral) error {
			setMandatory(p, gp.FunctionPower, 0)
			time.Sleep(100 * time.Millisecond)
			return nil
		}},
	}
}

// Sim900Setup installs the Sim900 vtable, including its state machine.
// Sim900 does not arm keep-on at setup time: the "on-keep" state does that
// explicitly, unlike Sim508/Sim900D which arm it unconditionally.
func Sim900Setup(p *gp.Peripheral) error {
	sm := gp.NewStateMachine(sim900Transitions())
	p.SetVTable(gp.VTable{
		Setup:           Sim900Setup,
		PowerOn:         Sim900PowerOn,
		PowerOff:        Sim900PowerOff,
		Reset:           gp.GenericReset,
		Status:          GenericGSMStatus,
		CheckAndPowerOn: gp.GenericCheckAndPowerOn,
		StateTransition: sm.Transition,
	})
	if err := genericSimcomSetup(p, false); err != nil {
		return err
	}
	p.SetStateTable([]gp.StateDesc{
		{Name: "off", ID: Sim900StateOff},
		{Name: "on", ID: Sim900StateOn},
		{Name: "on-keep", ID: Sim900StateKeepOn},
		{Name: "firmware-prepare", ID: Sim900StateFirmwarePrepare},
		{Name: "firmware-load", ID: Sim900StateFirmwareLoad},
	}, Sim900StateOff)
	return nil
}
