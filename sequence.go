// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpioperiph

import "time"

// statusPollInterval is the granularity at which RunSequence polls a
// peripheral's status during a Status wait step. It is not a hardware
// requirement, just a named constant for a polling loop.
const statusPollInterval = 500 * time.Millisecond

// Step is one entry of a timed pin sequence: optionally drive an output,
// sleep, and optionally poll the status function until it reaches a target
// value or a timeout elapses.
//
// A Step with Function == FunctionNone and Timeout == 0 is a pure delay.
type Step struct {
	Label       string
	Description string
	Function    Function
	Value       int
	Mandatory   bool
	Sleep       time.Duration
	Timeout     time.Duration
}

// RunSequence executes steps against p in order, on the calling goroutine.
// It must only be called from a peripheral's command-queue worker, never
// from an interrupt/edge-notification callback, since it may sleep for
// seconds at a time.
//
// Within a single step the set-output precedes the sleep, and the sleep
// precedes the status wait, matching spec.md's tie-break rule.
//
// RunSequence returns true if the last observed status equals the last
// requested target, or if no status wait occurred at all.
func RunSequence(p *Peripheral, steps []Step) bool {
	result := true
	for _, step := range steps {
		if step.Function != FunctionNone && step.Function != FunctionStatus {
			setSequenceOutput(p, step)
		}
		if step.Sleep > 0 {
			time.Sleep(step.Sleep)
		}
		if step.Function == FunctionStatus && step.Timeout > 0 {
			want := step.Value != 0
			result = pollStatus(p, want, step.Timeout)
		}
	}
	return result
}

// setSequenceOutput drives the pin for step's function. A missing
// mandatory pin panics; a missing optional pin is skipped (and the
// sequence continues — an intermediate step failure is not load-bearing).
func setSequenceOutput(p *Peripheral, step Step) {
	var pin *Pin
	if step.Mandatory {
		pin = p.FindMandatoryPin(step.Function)
	} else {
		pin = p.FindPin(step.Function)
		if pin == nil {
			return
		}
	}
	_ = pin.SetOutput(step.Value)
}

// pollStatus polls p.Status every statusPollInterval until it equals want
// or timeout elapses, and returns the final observed value compared
// against want.
func pollStatus(p *Peripheral, want bool, timeout time.Duration) bool {
	status := p.Status()
	waited := time.Duration(0)
	for waited < timeout && status != want {
		time.Sleep(statusPollInterval)
		waited += statusPollInterval
		status = p.Status()
	}
	return status == want
}

// GenericReset is the default Reset vtable entry: if the peripheral is on,
// power it off (aborting on error), then power it on. It is the only
// retry/restart primitive; individual drivers may override it.
func GenericReset(p *Peripheral) error {
	if p.Status() {
		if err := p.vtable.PowerOff(p); err != nil {
			return err
		}
	}
	return p.vtable.PowerOn(p)
}

// GenericCheckAndPowerOn is the default CheckAndPowerOn vtable entry: power
// on only if status reports off.
func GenericCheckAndPowerOn(p *Peripheral) error {
	if p.Status() {
		return nil
	}
	return p.vtable.PowerOn(p)
}
