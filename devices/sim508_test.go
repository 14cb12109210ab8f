// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package devices

import (
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	gp "github.com/indigo-embedded/gpioperiph"
)

func newSim508(t *testing.T) (*gp.Peripheral, *gpiotest.Pin) {
	t.Helper()
	status := &gpiotest.Pin{N: "STATUS", Fn: "In", L: gpio.Low, EdgesChan: make(chan gpio.Level, 1)}
	p := gp.New(gp.KindGSM, "sim508", "Sim508", sim900Descriptors(), resolverFor(map[string]gpio.PinIO{
		"STATUS": status,
		"PWRKEY": &gpiotest.Pin{N: "PWRKEY", Fn: "Out"},
		"POWER":  &gpiotest.Pin{N: "POWER", Fn: "Out"},
	}))
	p.SetVTable(gp.VTable{Setup: Sim508Setup})
	if err := p.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	t.Cleanup(p.Close)
	return p, status
}

func TestSim508PowerOnAndOffRoundTrip(t *testing.T) {
	p, status := newSim508(t)
	simulateModemComingUp(status, gpio.High)
	if err := Sim508PowerOn(p); err != nil {
		t.Fatalf("Sim508PowerOn: %v", err)
	}
	if !p.Status() {
		t.Fatal("expected status to report on after power-on")
	}
	simulateModemComingUp(status, gpio.Low)
	if err := Sim508PowerOff(p); err != nil {
		t.Fatalf("Sim508PowerOff: %v", err)
	}
	if p.Status() {
		t.Fatal("expected status to report off after power-off")
	}
}

func TestSim508PowerOnRejectsWhenAlreadyOn(t *testing.T) {
	p, status := newSim508(t)
	status.L = gpio.High
	if err := Sim508PowerOn(p); err != gp.ErrAlreadyOn {
		t.Errorf("Sim508PowerOn on an already-on device = %v, want ErrAlreadyOn", err)
	}
}

func TestSim508PowerOffRejectsWhenAlreadyOff(t *testing.T) {
	p, _ := newSim508(t)
	if err := Sim508PowerOff(p); err != gp.ErrAlreadyOff {
		t.Errorf("Sim508PowerOff on an already-off device = %v, want ErrAlreadyOff", err)
	}
}

func TestSim508PowerOnTimesOutWithoutStatus(t *testing.T) {
	p, _ := newSim508(t)
	start := time.Now()
	if err := Sim508PowerOn(p); err == nil {
		t.Fatal("expected power-on to fail when status never asserts")
	}
	if time.Since(start) < 12*time.Second {
		t.Error("expected Sim508PowerOn to wait out the full status timeout before failing")
	}
}
