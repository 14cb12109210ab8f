// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpioperiph

import (
	"fmt"
	"sort"
	"sync"
)

// registry is the process-wide set of Peripherals a board's init code has
// registered. Unlike periph.io/x/host's driver registry, peripherals here
// don't depend on one another, so there is no staged loading: Register
// just records the instance, and Init sets each one up independently.
var (
	registryMu sync.Mutex
	registry   = map[string]*Peripheral{}
)

// Register adds p to the registry under its Name. It returns an error if a
// peripheral with that name already exists.
func Register(p *Peripheral) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[p.Name]; ok {
		return fmt.Errorf("gpioperiph: peripheral %q already registered", p.Name)
	}
	registry[p.Name] = p
	return nil
}

// MustRegister is like Register but panics on failure. It is meant for
// package-level board init code, where a naming collision is a programming
// error.
func MustRegister(p *Peripheral) {
	if err := Register(p); err != nil {
		panic(err)
	}
}

// Lookup returns the registered peripheral with the given name.
func Lookup(name string) (*Peripheral, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	p, ok := registry[name]
	return p, ok
}

// All returns every registered peripheral, sorted by name.
func All() []*Peripheral {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]*Peripheral, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Failure pairs a registered peripheral with the error its Setup returned.
type Failure struct {
	Peripheral *Peripheral
	Err        error
}

// Init runs Setup on every registered peripheral. It does not stop at the
// first failure: every peripheral gets a chance to come up, and the
// failures are returned together so a caller can decide whether a partial
// board bring-up is acceptable.
func Init() []Failure {
	var failures []Failure
	for _, p := range All() {
		if err := p.Setup(); err != nil {
			failures = append(failures, Failure{Peripheral: p, Err: err})
		}
	}
	return failures
}

// Shutdown closes every registered peripheral and empties the registry.
func Shutdown() {
	for _, p := range All() {
		p.Close()
	}
	registryMu.Lock()
	registry = map[string]*Peripheral{}
	registryMu.Unlock()
}
