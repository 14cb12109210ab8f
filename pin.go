// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpioperiph

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Function is the logical role a pin plays for its owning peripheral.
type Function uint8

// Recognized pin functions. A pin that isn't driving or observing power is
// FunctionNone.
const (
	FunctionNone Function = iota
	FunctionPower
	FunctionPowerKey
	FunctionStatus
	FunctionReset
)

func (f Function) String() string {
	switch f {
	case FunctionNone:
		return "none"
	case FunctionPower:
		return "power"
	case FunctionPowerKey:
		return "power_key"
	case FunctionStatus:
		return "status"
	case FunctionReset:
		return "reset"
	default:
		return fmt.Sprintf("Function(%d)", uint8(f))
	}
}

// Flags is a bitset describing how a pin should be configured and
// interpreted.
type Flags uint32

// Recognized pin flags. DirIn and DirOut are mutually exclusive, as are
// InitLow/InitHigh and ActiveLow/ActiveHigh.
const (
	DirIn Flags = 1 << iota
	DirOut
	InitLow
	InitHigh
	PullUp
	Deglitch
	ActiveLow
	ActiveHigh
	Pollable
)

// MaxPeripheralPins bounds the number of pins a single Peripheral may own,
// matching the original driver's static array size.
const MaxPeripheralPins = 32

// Descriptor is the declarative, board-supplied definition of a single GPIO
// line. Board description tables that enumerate descriptors per hardware
// revision are outside this package's scope; see package board for one
// illustrative example.
type Descriptor struct {
	// Name is the schematics name, e.g. "GSM_PWRKEY". It is also the name
	// used to look the underlying host pin up via gpioreg.ByName, and the
	// name exposed on the attribute surface (see AttributeSet).
	Name string
	// Description is a human-readable label, e.g. "GSM power key". A nil
	// Description is never used in Go; Descriptor lists are plain slices so
	// there is no sentinel terminator needed, unlike the original driver's
	// NULL-terminated C array.
	Description string
	Function    Function
	Flags       Flags
}

// Pin is a single configured GPIO line together with the metadata needed to
// interpret and drive it: direction, polarity, pull-up, deglitch and the
// logical function it serves for its peripheral.
//
// Read and SetOutput apply polarity to logical values; RawValue and SetRaw
// read and drive the raw hardware level without it.
type Pin struct {
	Descriptor
	io gpio.PinIO
}

// newPin resolves a Descriptor against the host's GPIO registry and
// configures it. Mandatory pins that cannot be acquired are a programming
// error: the board description is authoritative, so failure panics rather
// than returning an error.
func newPin(d Descriptor, resolve func(name string) gpio.PinIO, mandatory bool) (*Pin, error) {
	io := resolve(d.Name)
	if io == nil {
		if mandatory {
			panic(fmt.Sprintf("gpioperiph: mandatory pin %q not found", d.Name))
		}
		return nil, fmt.Errorf("gpioperiph: pin %q not found", d.Name)
	}
	p := &Pin{Descriptor: d, io: io}
	if err := p.configure(); err != nil {
		if mandatory {
			panic(fmt.Sprintf("gpioperiph: failed to configure mandatory pin %q: %v", d.Name, err))
		}
		return nil, err
	}
	return p, nil
}

// configure programs the pin's direction, pull resistor, edge detection
// (both edges for a Pollable input) and initial level per its Flags. The
// Deglitch flag is not applied: no deglitch filter is configured.
func (p *Pin) configure() error {
	if p.Flags&DirIn != 0 {
		pull := gpio.Float
		if p.Flags&PullUp != 0 {
			pull = gpio.PullUp
		}
		edge := gpio.NoEdge
		if p.Flags&Pollable != 0 {
			edge = gpio.BothEdges
		}
		return p.io.In(pull, edge)
	}
	initial := 0
	if p.Flags&InitHigh != 0 {
		initial = 1
	}
	return p.io.Out(gpio.Level(initial != 0))
}

// activeValue returns the raw value to drive or the interpretation of a raw
// read, applying ActiveLow polarity: logical = raw XOR ActiveLow.
func (p *Pin) activeValue(raw int) int {
	if p.Flags&ActiveLow != 0 {
		if raw == 0 {
			return 1
		}
		return 0
	}
	return raw
}

// activeLevel converts a logical value into the raw gpio.Level to drive.
func (p *Pin) activeLevel(logical int) gpio.Level {
	return gpio.Level(p.activeValue(logical) != 0)
}

// SetOutput drives the pin's logical value, applying polarity. It panics if
// called on an input pin.
func (p *Pin) SetOutput(value int) error {
	if p.Flags&DirIn != 0 {
		panic(fmt.Sprintf("gpioperiph: tried to output to input pin %q", p.Name))
	}
	return p.io.Out(p.activeLevel(value))
}

// SetRaw drives the pin's raw hardware level, bypassing polarity. It
// backs the per-pin attribute surface, which mirrors the original driver's
// direct gpio_set_value call rather than its polarity-aware helpers. A
// write to an input pin is a rejected request from an external caller, not
// a programming error, so it returns ErrInputPin rather than panicking;
// see SetOutput for the internal mid-sequence path, where the same
// condition genuinely is a bug.
func (p *Pin) SetRaw(value int) error {
	if p.Flags&DirIn != 0 {
		return fmt.Errorf("gpioperiph: pin %q is an input: %w", p.Name, ErrInputPin)
	}
	return p.io.Out(gpio.Level(value != 0))
}

// Read returns the pin's logical value, applying polarity. It never fails;
// a pin that cannot be read returns 0, matching gpio.PinIO's own behavior
// of failing silently on a read error.
func (p *Pin) Read() int {
	raw := 0
	if bool(p.io.Read()) {
		raw = 1
	}
	return p.activeValue(raw)
}

// RawValue returns the pin's hardware level without polarity correction. It
// exists for the attribute surface, which exposes the raw numeric value per
// spec.
func (p *Pin) RawValue() int {
	if bool(p.io.Read()) {
		return 1
	}
	return 0
}

// String implements fmt.Stringer.
func (p *Pin) String() string {
	return p.Name
}
