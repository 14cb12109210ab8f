// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpioperiph

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func fakeResolver(pins map[string]gpio.PinIO) func(string) gpio.PinIO {
	return func(name string) gpio.PinIO {
		return pins[name]
	}
}

func TestPinPolarityActiveHigh(t *testing.T) {
	fake := &gpiotest.Pin{N: "P1", Fn: "In"}
	resolve := fakeResolver(map[string]gpio.PinIO{"P1": fake})
	d := Descriptor{Name: "P1", Function: FunctionStatus, Flags: DirIn | ActiveHigh}
	p, err := newPin(d, resolve, true)
	if err != nil {
		t.Fatalf("newPin: %v", err)
	}
	fake.L = gpio.High
	if got := p.Read(); got != 1 {
		t.Errorf("ActiveHigh Read() with raw High = %d, want 1", got)
	}
	fake.L = gpio.Low
	if got := p.Read(); got != 0 {
		t.Errorf("ActiveHigh Read() with raw Low = %d, want 0", got)
	}
}

func TestPinPolarityActiveLow(t *testing.T) {
	fake := &gpiotest.Pin{N: "P1", Fn: "In"}
	resolve := fakeResolver(map[string]gpio.PinIO{"P1": fake})
	d := Descriptor{Name: "P1", Function: FunctionStatus, Flags: DirIn | ActiveLow}
	p, err := newPin(d, resolve, true)
	if err != nil {
		t.Fatalf("newPin: %v", err)
	}
	fake.L = gpio.High
	if got := p.Read(); got != 0 {
		t.Errorf("ActiveLow Read() with raw High = %d, want 0", got)
	}
	if got := p.RawValue(); got != 1 {
		t.Errorf("RawValue must ignore polarity, got %d, want 1", got)
	}
}

func TestPinSetOutputAppliesPolarity(t *testing.T) {
	fake := &gpiotest.Pin{N: "P2", Fn: "Out"}
	resolve := fakeResolver(map[string]gpio.PinIO{"P2": fake})
	d := Descriptor{Name: "P2", Function: FunctionPowerKey, Flags: DirOut | ActiveLow | InitLow}
	p, err := newPin(d, resolve, true)
	if err != nil {
		t.Fatalf("newPin: %v", err)
	}
	if err := p.SetOutput(1); err != nil {
		t.Fatalf("SetOutput: %v", err)
	}
	if fake.L != gpio.Low {
		t.Errorf("ActiveLow SetOutput(1) should drive raw Low, got %v", fake.L)
	}
}

func TestPinConfigureInitHighIgnoresPolarity(t *testing.T) {
	fake := &gpiotest.Pin{N: "P4", Fn: "Out"}
	resolve := fakeResolver(map[string]gpio.PinIO{"P4": fake})
	d := Descriptor{Name: "P4", Function: FunctionPower, Flags: DirOut | ActiveLow | InitHigh}
	if _, err := newPin(d, resolve, true); err != nil {
		t.Fatalf("newPin: %v", err)
	}
	if fake.L != gpio.High {
		t.Errorf("InitHigh on an ActiveLow pin should still drive raw High at configure time, got %v", fake.L)
	}
}

func TestPinSetOutputOnInputPanics(t *testing.T) {
	fake := &gpiotest.Pin{N: "P3", Fn: "In"}
	resolve := fakeResolver(map[string]gpio.PinIO{"P3": fake})
	d := Descriptor{Name: "P3", Function: FunctionStatus, Flags: DirIn}
	p, err := newPin(d, resolve, true)
	if err != nil {
		t.Fatalf("newPin: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected SetOutput on input pin to panic")
		}
	}()
	_ = p.SetOutput(1)
}

func TestNewPinMandatoryMissingPanics(t *testing.T) {
	resolve := fakeResolver(nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected missing mandatory pin to panic")
		}
	}()
	_, _ = newPin(Descriptor{Name: "GONE", Flags: DirIn}, resolve, true)
}

func TestNewPinOptionalMissingReturnsError(t *testing.T) {
	resolve := fakeResolver(nil)
	_, err := newPin(Descriptor{Name: "GONE", Flags: DirIn}, resolve, false)
	if err == nil {
		t.Fatal("expected error for missing optional pin")
	}
}
