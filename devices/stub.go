// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package devices

import gp "github.com/indigo-embedded/gpioperiph"

// stubNoOp backs every Stub vtable entry.
func stubNoOp(*gp.Peripheral) error { return nil }

// stubStatus always reports off, matching the original driver's do-nothing
// stub used for devices (mostly PMICs) that the board wires into the
// registry for uniformity but that need no sequencing at all.
func stubStatus(*gp.Peripheral) bool { return false }

// StubSetup installs a Peripheral that does nothing: every operation
// succeeds immediately without touching any pin. It exists so that boards
// can register every physical device uniformly, even ones this package
// doesn't otherwise model.
func StubSetup(p *gp.Peripheral) error {
	p.SetVTable(gp.VTable{
		Setup:           StubSetup,
		PowerOn:         stubNoOp,
		PowerOff:        stubNoOp,
		Reset:           stubNoOp,
		Status:          stubStatus,
		CheckAndPowerOn: stubNoOp,
	})
	return nil
}
