// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gpioperiph is a driver core for board-level peripherals (GSM
// modems, GNSS receivers, power-management ICs) whose entire control
// surface is a handful of GPIO lines: a power-enable line, a pulse-driven
// power key, a status line, and sometimes a reset line.
//
// A Peripheral is brought up, shut down and monitored by driving timed
// sequences onto those lines (see RunSequence) and observing the status
// line. Every peripheral accepts a small, serialized command vocabulary
// (PowerOn, PowerOff, Reset, CheckAndPowerOn, and for multi-state devices
// StateTransition) through a single per-peripheral worker goroutine, so
// that at most one operation ever runs against a given peripheral's pins
// at a time.
//
// Concrete device support lives in package devices. The low level GPIO
// access itself — requesting a pin, configuring direction/pull/edges,
// reading and writing levels, mapping a pin to its interrupt — is provided
// by periph.io/x/conn/v3/gpio and periph.io/x/host/v3; this package only
// ever calls through the gpio.PinIO interface.
//
// Board description (which peripherals exist on which hardware revision)
// and the user-facing attribute surface are not this package's concern;
// see AttributeSet and package board for the thin adapters this repository
// ships to exercise the core end to end.
package gpioperiph
