// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices collects concrete power-sequencing drivers built on top
// of package gpioperiph: a family of SimCom GSM modems, a handful of GNSS
// receivers, and a do-nothing stub for peripherals (power-management ICs,
// mostly) that need a registry entry but no sequencing logic at all.
package devices

import (
	gp "github.com/indigo-embedded/gpioperiph"
)

// genericSimcomSetup configures the pins every SimCom GSM modem shares: a
// mandatory status pin, a mandatory power-key pin, and an optional power
// pin some boards wire to cut supply entirely. If armKeepOn is true it also
// arms keep-on recovery on the status pin.
func genericSimcomSetup(p *gp.Peripheral, armKeepOn bool) error {
	p.FindMandatoryPin(gp.FunctionStatus)
	p.FindMandatoryPin(gp.FunctionPowerKey)
	p.FindPin(gp.FunctionPower)
	if armKeepOn {
		armKeepOnIgnoringActive(p)
	}
	return nil
}

// armKeepOnIgnoringActive starts keep-on without propagating the error:
// several state transitions re-enter the keep-on state from a state where
// it may already be active, and a missing status pin at this point is a
// setup-time programming error already caught by FindMandatoryPin above.
func armKeepOnIgnoringActive(p *gp.Peripheral) {
	_ = p.StartKeepOn()
}

// GenericGSMStatus reports a SimCom modem's power state by reading its
// status pin directly: on this device family the status pin's logical
// level IS the power state.
func GenericGSMStatus(p *gp.Peripheral) bool {
	return p.FindMandatoryPin(gp.FunctionStatus).Read() != 0
}

// setMandatory drives a mandatory pin's logical output value, matching the
// original driver's direct indigo_gpioperiph_set_output calls used mid
// state-transition, outside of a timed Step sequence.
func setMandatory(p *gp.Peripheral, function gp.Function, value int) {
	_ = p.FindMandatoryPin(function).SetOutput(value)
}
