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

func newSim900D(t *testing.T) (*gp.Peripheral, *gpiotest.Pin) {
	t.Helper()
	status := &gpiotest.Pin{N: "STATUS", Fn: "In", L: gpio.Low, EdgesChan: make(chan gpio.Level, 1)}
	p := gp.New(gp.KindGSM, "sim900d", "Sim900D", sim900Descriptors(), resolverFor(map[string]gpio.PinIO{
		"STATUS": status,
		"PWRKEY": &gpiotest.Pin{N: "PWRKEY", Fn: "Out"},
		"POWER":  &gpiotest.Pin{N: "POWER", Fn: "Out"},
	}))
	p.SetVTable(gp.VTable{Setup: Sim900DSetup})
	if err := p.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	t.Cleanup(p.Close)
	return p, status
}

func TestSim900DPowerOnAndOffRoundTrip(t *testing.T) {
	p, status := newSim900D(t)
	simulateModemComingUp(status, gpio.High)
	if err := Sim900DPowerOn(p); err != nil {
		t.Fatalf("Sim900DPowerOn: %v", err)
	}
	if !p.Status() {
		t.Fatal("expected status to report on after power-on")
	}
	simulateModemComingUp(status, gpio.Low)
	if err := Sim900DPowerOff(p); err != nil {
		t.Fatalf("Sim900DPowerOff: %v", err)
	}
	if p.Status() {
		t.Fatal("expected status to report off after power-off")
	}
}

func TestSim900DPowerOnRejectsWhenAlreadyOn(t *testing.T) {
	p, status := newSim900D(t)
	status.L = gpio.High
	if err := Sim900DPowerOn(p); err != gp.ErrAlreadyOn {
		t.Errorf("Sim900DPowerOn on an already-on device = %v, want ErrAlreadyOn", err)
	}
}

func TestSim900DKeepOnArmedAtSetup(t *testing.T) {
	p, _ := newSim900D(t)
	if !p.KeepOnActive() {
		t.Error("expected Sim900DSetup to arm keep-on recovery, unlike Sim900")
	}
}
