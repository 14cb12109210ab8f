// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpioperiph

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"periph.io/x/conn/v3/gpio"
)

// AttributeReader is implemented by anything that exposes a peripheral's
// named attributes for reading. It stands in for the original driver's
// sysfs show() callbacks: a filesystem front end is outside this package's
// scope, but the read/write surface it would expose is not.
type AttributeReader interface {
	// ReadAttr returns the current textual value of the named attribute.
	ReadAttr(name string) (string, error)
}

// AttributeWriter is implemented by anything that accepts writes to a
// peripheral's named attributes, the Go equivalent of a sysfs store()
// callback.
type AttributeWriter interface {
	// WriteAttr submits value for the named attribute. For command
	// attributes (power_on, power_off, reset, check_and_power_on, status)
	// this blocks until the resulting command completes or ctx is done.
	WriteAttr(ctx context.Context, name, value string) error
}

// PinChange is one edge notification delivered by Notifier.
type PinChange struct {
	Pin   string
	Value int
}

// Notifier is implemented by anything that can push pin-level change
// notifications to a subscriber, standing in for the original driver's
// sysfs_notify on a Pollable pin's value file.
type Notifier interface {
	// Notify starts watching pin for edges and delivers a PinChange on
	// every one until ctx is cancelled, at which point the returned
	// channel is closed. pin must carry the Pollable flag.
	Notify(ctx context.Context, pin string) (<-chan PinChange, error)
}

// commandAttrNames are the peripheral-level attributes that enqueue a
// command rather than reading or writing a pin. Reading any of them
// always returns "", matching the original driver's dummy_show.
var commandAttrNames = map[string]CommandKind{
	"power_on":           CommandPowerOn,
	"power_off":          CommandPowerOff,
	"reset":              CommandReset,
	"check_and_power_on": CommandCheckAndPowerOn,
}

// AttributeSet adapts a Peripheral to AttributeReader, AttributeWriter and
// Notifier. It is the attribute-surface equivalent of the sysfs kobject
// the original driver created per peripheral.
type AttributeSet struct {
	p *Peripheral
}

// NewAttributeSet wraps p for attribute access.
func NewAttributeSet(p *Peripheral) *AttributeSet {
	return &AttributeSet{p: p}
}

// ReadAttr implements AttributeReader.
func (a *AttributeSet) ReadAttr(name string) (string, error) {
	if name == "status" {
		if a.p.HasStateTable() {
			return a.p.StateName() + "\n", nil
		}
		if a.p.Status() {
			return "on\n", nil
		}
		return "off\n", nil
	}
	if _, ok := commandAttrNames[name]; ok {
		return "", nil
	}
	pin := a.p.Pin(name)
	if pin == nil {
		return "", fmt.Errorf("gpioperiph: peripheral %q has no attribute %q", a.p.Name, name)
	}
	return strconv.Itoa(pin.RawValue()) + "\n", nil
}

// WriteAttr implements AttributeWriter.
func (a *AttributeSet) WriteAttr(ctx context.Context, name, value string) error {
	if kind, ok := commandAttrNames[name]; ok {
		return a.runCommand(ctx, kind)
	}
	if name == "status" {
		if !a.p.HasStateTable() {
			return ErrNoStateTable
		}
		return a.p.StateTransition(ctx, strings.TrimSpace(value))
	}
	pin := a.p.Pin(name)
	if pin == nil {
		return fmt.Errorf("gpioperiph: peripheral %q has no attribute %q", a.p.Name, name)
	}
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("gpioperiph: invalid value %q for pin %q: %w", value, name, err)
	}
	return pin.SetRaw(v)
}

func (a *AttributeSet) runCommand(ctx context.Context, kind CommandKind) error {
	c, err := a.p.Enqueue(kind, 0)
	if err != nil {
		return err
	}
	return c.Wait(ctx)
}

// Notify implements Notifier.
func (a *AttributeSet) Notify(ctx context.Context, pinName string) (<-chan PinChange, error) {
	pin := a.p.Pin(pinName)
	if pin == nil {
		return nil, fmt.Errorf("gpioperiph: peripheral %q has no pin %q", a.p.Name, pinName)
	}
	if pin.Flags&Pollable == 0 {
		return nil, fmt.Errorf("gpioperiph: pin %q is not pollable", pinName)
	}
	in, ok := pin.io.(gpio.PinIn)
	if !ok {
		return nil, fmt.Errorf("gpioperiph: pin %q does not support edge detection", pinName)
	}
	ch := make(chan PinChange, 1)
	go func() {
		defer close(ch)
		for {
			if !in.WaitForEdge(keepOnEdgeTimeout) {
				select {
				case <-ctx.Done():
					return
				default:
					continue
				}
			}
			if ctx.Err() != nil {
				return
			}
			change := PinChange{Pin: pinName, Value: pin.RawValue()}
			select {
			case ch <- change:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
