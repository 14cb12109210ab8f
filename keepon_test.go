// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpioperiph

import (
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestKeepOnRecoversAfterStatusDrop(t *testing.T) {
	status := &gpiotest.Pin{N: "STATUS", Fn: "In", L: gpio.High, EdgesChan: make(chan gpio.Level, 1)}
	pwrkey := &gpiotest.Pin{N: "PWRKEY", Fn: "Out"}
	p := newTestPeripheral(t, testGSMDescriptors(), map[string]gpio.PinIO{
		"STATUS": status,
		"PWRKEY": pwrkey,
	})
	if err := status.In(gpio.PullUp, gpio.BothEdges); err != nil {
		t.Fatalf("status.In: %v", err)
	}

	powerOnCalled := make(chan struct{}, 1)
	powerOn := func(*Peripheral) error {
		select {
		case powerOnCalled <- struct{}{}:
		default:
		}
		return nil
	}
	p.SetVTable(VTable{
		Status: func(p *Peripheral) bool {
			return p.FindMandatoryPin(FunctionStatus).Read() != 0
		},
		PowerOn:         powerOn,
		CheckAndPowerOn: GenericCheckAndPowerOn,
	})

	if err := p.StartKeepOn(); err != nil {
		t.Fatalf("StartKeepOn: %v", err)
	}
	defer p.StopKeepOn()

	status.EdgesChan <- gpio.Low

	select {
	case <-powerOnCalled:
	case <-time.After(2 * time.Second):
		t.Fatal("keep-on did not enqueue PowerOn after status dropped")
	}
}

func TestStartKeepOnTwiceFails(t *testing.T) {
	status := &gpiotest.Pin{N: "STATUS", Fn: "In", L: gpio.High, EdgesChan: make(chan gpio.Level, 1)}
	p := newTestPeripheral(t, testGSMDescriptors(), map[string]gpio.PinIO{
		"STATUS": status,
		"PWRKEY": &gpiotest.Pin{N: "PWRKEY", Fn: "Out"},
	})
	p.SetVTable(VTable{Status: func(*Peripheral) bool { return true }})
	if err := status.In(gpio.PullUp, gpio.BothEdges); err != nil {
		t.Fatalf("status.In: %v", err)
	}
	if err := p.StartKeepOn(); err != nil {
		t.Fatalf("StartKeepOn: %v", err)
	}
	defer p.StopKeepOn()
	if err := p.StartKeepOn(); err != ErrKeepOnActive {
		t.Errorf("second StartKeepOn = %v, want ErrKeepOnActive", err)
	}
}

func TestStopKeepOnIsIdempotent(t *testing.T) {
	p := newTestPeripheral(t, nil, nil)
	p.StopKeepOn() // no-op, never armed
	if p.KeepOnActive() {
		t.Error("KeepOnActive should be false without StartKeepOn")
	}
}
