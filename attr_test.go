// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpioperiph

import (
	"context"
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestAttributeSetReadWritePin(t *testing.T) {
	aux := &gpiotest.Pin{N: "AUX", Fn: "Out"}
	p := newTestPeripheral(t, testGSMDescriptors(), map[string]gpio.PinIO{
		"STATUS": &gpiotest.Pin{N: "STATUS", Fn: "In"},
		"PWRKEY": &gpiotest.Pin{N: "PWRKEY", Fn: "Out"},
		"AUX":    aux,
	})
	attrs := NewAttributeSet(p)
	if err := attrs.WriteAttr(context.Background(), "AUX", "1"); err != nil {
		t.Fatalf("WriteAttr(AUX, 1): %v", err)
	}
	v, err := attrs.ReadAttr("AUX")
	if err != nil {
		t.Fatalf("ReadAttr(AUX): %v", err)
	}
	if v != "1\n" {
		t.Errorf("ReadAttr(AUX) = %q, want %q", v, "1\n")
	}
}

func TestAttributeSetWriteRejectsInputPin(t *testing.T) {
	p := newTestPeripheral(t, testGSMDescriptors(), map[string]gpio.PinIO{
		"STATUS": &gpiotest.Pin{N: "STATUS", Fn: "In", EdgesChan: make(chan gpio.Level, 1)},
		"PWRKEY": &gpiotest.Pin{N: "PWRKEY", Fn: "Out"},
	})
	attrs := NewAttributeSet(p)
	err := attrs.WriteAttr(context.Background(), "STATUS", "1")
	if !errors.Is(err, ErrInputPin) {
		t.Fatalf("WriteAttr(STATUS, 1) = %v, want ErrInputPin", err)
	}
}

func TestAttributeSetCommandAttributes(t *testing.T) {
	p := newTestPeripheral(t, nil, nil)
	var poweredOn bool
	p.SetVTable(VTable{PowerOn: func(*Peripheral) error { poweredOn = true; return nil }})
	attrs := NewAttributeSet(p)
	if err := attrs.WriteAttr(context.Background(), "power_on", ""); err != nil {
		t.Fatalf("WriteAttr(power_on): %v", err)
	}
	if !poweredOn {
		t.Error("expected power_on attribute write to enqueue PowerOn")
	}
	v, err := attrs.ReadAttr("power_on")
	if err != nil || v != "" {
		t.Errorf("ReadAttr(power_on) = (%q, %v), want (\"\", nil)", v, err)
	}
}

func TestAttributeSetStatusReflectsStateTable(t *testing.T) {
	p := newTestPeripheral(t, nil, nil)
	p.SetStateTable([]StateDesc{{Name: "off", ID: 0}, {Name: "on", ID: 1}}, 0)
	attrs := NewAttributeSet(p)
	v, err := attrs.ReadAttr("status")
	if err != nil {
		t.Fatalf("ReadAttr(status): %v", err)
	}
	if v != "off\n" {
		t.Errorf("ReadAttr(status) = %q, want off\\n", v)
	}
}
