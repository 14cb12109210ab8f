// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpioperiph

import "errors"

// Hardware-precondition and transition errors a caller can distinguish with
// errors.Is. These are the Go equivalent of the original driver's negative
// errno return codes (-ENODEV, -EAGAIN, -EINVAL, -ENOENT).
var (
	// ErrAlreadyOn is returned by PowerOn when the peripheral's status
	// already reports on. No GPIO is touched.
	ErrAlreadyOn = errors.New("gpioperiph: peripheral already on")
	// ErrAlreadyOff is returned by PowerOff when the peripheral's status
	// already reports off. No GPIO is touched.
	ErrAlreadyOff = errors.New("gpioperiph: peripheral already off")
	// ErrSameState is returned by StateTransition when target equals the
	// current state.
	ErrSameState = errors.New("gpioperiph: already in target state")
	// ErrInvalidTransition is returned by StateTransition for a (current,
	// target) pair the state table marks as forbidden.
	ErrInvalidTransition = errors.New("gpioperiph: invalid state transition")
	// ErrUnknownState is returned when a state name doesn't exist in the
	// peripheral's state table, or the peripheral has none.
	ErrUnknownState = errors.New("gpioperiph: unknown state name")
	// ErrNoStateTable is returned by a write to the status attribute of a
	// peripheral with no state table, and by a queued state-transition
	// command on a peripheral with no StateTransition operation.
	ErrNoStateTable = errors.New("gpioperiph: peripheral has no state table")
	// ErrKeepOnActive is returned when entering keep-on while already
	// active: the core must never double-request the status IRQ.
	ErrKeepOnActive = errors.New("gpioperiph: keep-on already active")
	// ErrQueueClosed is returned by Enqueue after Close has drained the
	// command queue.
	ErrQueueClosed = errors.New("gpioperiph: command queue closed")
	// ErrInputPin is returned when a write targets a pin configured as an
	// input.
	ErrInputPin = errors.New("gpioperiph: pin is an input")
)
