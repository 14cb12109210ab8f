// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpioperiph

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
)

// Kind identifies the category of peripheral a Peripheral represents.
type Kind uint8

// Recognized peripheral kinds.
const (
	KindUnknown Kind = iota
	KindGSM
	KindGPS
	KindPower
)

func (k Kind) String() string {
	switch k {
	case KindGSM:
		return "gsm"
	case KindGPS:
		return "gps"
	case KindPower:
		return "power"
	default:
		return "unknown"
	}
}

// VTable is the set of device-specific operations a driver installs on a
// Peripheral during Setup. StateTransition is non-nil if and only if the
// peripheral declares a state table.
type VTable struct {
	Setup           func(*Peripheral) error
	PowerOn         func(*Peripheral) error
	PowerOff        func(*Peripheral) error
	Reset           func(*Peripheral) error
	Status          func(*Peripheral) bool
	CheckAndPowerOn func(*Peripheral) error
	StateTransition func(*Peripheral, int) error
}

// StateDesc names one entry of a peripheral's state table.
type StateDesc struct {
	Name string
	ID   int
}

// Peripheral is a named device built from a set of Pins and a VTable of
// device-specific operations. Peripheral instances are created once from a
// Descriptor slice, set up, and torn down by Close, which drains the
// command queue first.
type Peripheral struct {
	Kind        Kind
	Name        string
	Description string

	resolve func(name string) gpio.PinIO

	mu         sync.Mutex
	descs      []Descriptor
	pinsByName map[string]*Pin
	pinsByFunc map[Function]*Pin

	vtable VTable

	stateMu      sync.RWMutex
	stateTable   []StateDesc
	currentState int

	queue *commandQueue

	keepOnMu     sync.Mutex
	keepOnActive bool
	keepOnStop   func()
}

// New creates a Peripheral from its static descriptor list. resolve maps a
// schematics pin name to a host GPIO pin, typically gpioreg.ByName; tests
// pass a function backed by periph.io/x/conn/v3/gpio/gpiotest fakes.
//
// New does not configure any pins; that happens lazily the first time a
// function is looked up via FindPin/FindMandatoryPin, mirroring how the
// original driver's device-specific setup routines request only the pins
// they actually need.
func New(kind Kind, name, description string, descs []Descriptor, resolve func(name string) gpio.PinIO) *Peripheral {
	if len(descs) > MaxPeripheralPins {
		panic(fmt.Sprintf("gpioperiph: peripheral %q declares %d pins, max is %d", name, len(descs), MaxPeripheralPins))
	}
	p := &Peripheral{
		Kind:        kind,
		Name:        name,
		Description: description,
		resolve:     resolve,
		descs:       descs,
		pinsByName:  map[string]*Pin{},
		pinsByFunc:  map[Function]*Pin{},
	}
	p.queue = newCommandQueue(p)
	return p
}

// FindPin returns the first configured Pin with the given function, or nil
// if none exists. It is a pure, reentrant lookup beyond the first call,
// which configures and caches the pin.
func (p *Peripheral) FindPin(function Function) *Pin {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.findPinLocked(function, false)
}

// FindMandatoryPin returns the first configured Pin with the given
// function. It panics if no such pin is declared: a missing mandatory pin
// is a programming error, not a recoverable condition.
func (p *Peripheral) FindMandatoryPin(function Function) *Pin {
	p.mu.Lock()
	defer p.mu.Unlock()
	pin := p.findPinLocked(function, true)
	if pin == nil {
		panic(fmt.Sprintf("gpioperiph: couldn't find mandatory pin with function %s for peripheral %q", function, p.Name))
	}
	return pin
}

// findPinLocked must be called with p.mu held.
func (p *Peripheral) findPinLocked(function Function, mandatory bool) *Pin {
	if pin, ok := p.pinsByFunc[function]; ok {
		return pin
	}
	for _, d := range p.descs {
		if d.Function != function {
			continue
		}
		pin, err := newPin(d, p.resolve, mandatory)
		if err != nil {
			return nil
		}
		p.pinsByFunc[function] = pin
		p.pinsByName[d.Name] = pin
		return pin
	}
	return nil
}

// ConfigureGeneralPins requests and configures every descriptor pin that
// carries no function, i.e. pins that exist on the board but aren't part
// of the power-sequencing vocabulary (auxiliary lines, antenna switches).
func (p *Peripheral) ConfigureGeneralPins() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, d := range p.descs {
		if d.Function != FunctionNone {
			continue
		}
		if _, ok := p.pinsByName[d.Name]; ok {
			continue
		}
		pin, err := newPin(d, p.resolve, true)
		if err != nil {
			return err
		}
		p.pinsByName[pin.Name] = pin
	}
	return nil
}

// Pin looks a pin up by its schematics name, configuring it on first
// access. It returns nil if no such pin is declared.
func (p *Peripheral) Pin(name string) *Pin {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pin, ok := p.pinsByName[name]; ok {
		return pin
	}
	for _, d := range p.descs {
		if d.Name != name {
			continue
		}
		pin, err := newPin(d, p.resolve, false)
		if err != nil {
			return nil
		}
		p.pinsByFunc[d.Function] = pin
		p.pinsByName[d.Name] = pin
		return pin
	}
	return nil
}

// Pins returns every declared pin, configuring any not yet accessed. Pins
// that fail to configure (always non-mandatory ones) are omitted.
func (p *Peripheral) Pins() []*Pin {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Pin, 0, len(p.descs))
	for _, d := range p.descs {
		pin, ok := p.pinsByName[d.Name]
		if !ok {
			var err error
			pin, err = newPin(d, p.resolve, false)
			if err != nil {
				continue
			}
			p.pinsByFunc[d.Function] = pin
			p.pinsByName[d.Name] = pin
		}
		out = append(out, pin)
	}
	return out
}

// SetVTable installs the device-specific operations. It is called once by
// a driver's setup routine.
func (p *Peripheral) SetVTable(v VTable) {
	p.vtable = v
}

// SetStateTable installs a state table, enabling StateTransition commands.
func (p *Peripheral) SetStateTable(table []StateDesc, initial int) {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()
	p.stateTable = table
	p.currentState = initial
}

// HasStateTable reports whether this peripheral declares a state table.
func (p *Peripheral) HasStateTable() bool {
	p.stateMu.RLock()
	defer p.stateMu.RUnlock()
	return p.stateTable != nil
}

// CurrentState returns the peripheral's current state ID. It is only
// meaningful if HasStateTable is true.
func (p *Peripheral) CurrentState() int {
	p.stateMu.RLock()
	defer p.stateMu.RUnlock()
	return p.currentState
}

// StateName returns the human-readable name of the current state, or ""
// if no state table is declared.
func (p *Peripheral) StateName() string {
	p.stateMu.RLock()
	defer p.stateMu.RUnlock()
	for _, s := range p.stateTable {
		if s.ID == p.currentState {
			return s.Name
		}
	}
	return ""
}

// stateIDByName looks a state up by name. It returns ErrUnknownState if
// the peripheral has no state table or no state of that name.
func (p *Peripheral) stateIDByName(name string) (int, error) {
	p.stateMu.RLock()
	defer p.stateMu.RUnlock()
	for _, s := range p.stateTable {
		if s.Name == name {
			return s.ID, nil
		}
	}
	return 0, ErrUnknownState
}

// setState forces the current state ID without validating the transition.
// It is used by StateMachine once a transition's action has succeeded.
func (p *Peripheral) setState(id int) {
	p.stateMu.Lock()
	p.currentState = id
	p.stateMu.Unlock()
}

// Status reports whether the peripheral is currently powered on.
func (p *Peripheral) Status() bool {
	if p.vtable.Status == nil {
		return false
	}
	return p.vtable.Status(p)
}

// Setup runs the peripheral's setup routine. It must be called exactly
// once, after the Peripheral has been constructed and before any command
// is enqueued.
func (p *Peripheral) Setup() error {
	if p.vtable.Setup == nil {
		return nil
	}
	return p.vtable.Setup(p)
}

// Close drains the command queue and releases the status-pin interrupt if
// keep-on is active. It must be called to cleanly retire a Peripheral.
func (p *Peripheral) Close() {
	p.queue.drain()
	p.keepOnMu.Lock()
	if p.keepOnActive && p.keepOnStop != nil {
		p.keepOnStop()
		p.keepOnActive = false
	}
	p.keepOnMu.Unlock()
}

func (p *Peripheral) String() string {
	return p.Name
}
