// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package board gives one illustrative example of a board bring-up:
// revision tables that enumerate every pin for every hardware revision
// are outside this repository's scope, but a single revision's worth of
// declarations shows how a real one would be built.
package board

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	gp "github.com/indigo-embedded/gpioperiph"
	"github.com/indigo-embedded/gpioperiph/devices"
)

// gsmPins describes the GSM modem's pins on this board revision.
var gsmPins = []gp.Descriptor{
	{
		Name:        "STATUS_GSM",
		Description: "modem status pin",
		Function:    gp.FunctionStatus,
		Flags:       gp.DirIn | gp.PullUp | gp.Deglitch | gp.ActiveHigh | gp.Pollable,
	},
	{
		Name:        "PWRKEY_GSM",
		Description: "modem power key pin",
		Function:    gp.FunctionPowerKey,
		Flags:       gp.DirOut | gp.InitLow,
	},
	{
		Name:        "POWER_GSM",
		Description: "modem supply switch",
		Function:    gp.FunctionPower,
		Flags:       gp.DirOut | gp.InitLow,
	},
}

// gpsPins describes the NV08C-CSM GNSS receiver's pins.
var gpsPins = []gp.Descriptor{
	{
		Name:        "RESET_GPS",
		Description: "nv08c-csm hardware reset",
		Function:    gp.FunctionReset,
		Flags:       gp.DirOut | gp.InitHigh,
	},
	{
		Name:        "POWER_GPS",
		Description: "nv08c-csm power switch",
		Function:    gp.FunctionPower,
		Flags:       gp.DirOut | gp.InitLow,
	},
	{
		Name:        "NET_ANT",
		Description: "active antenna detect, 1 when connected",
		Function:    gp.FunctionNone,
		Flags:       gp.DirIn | gp.PullUp,
	},
}

// Board holds the peripherals registered for this revision.
type Board struct {
	GSM   *gp.Peripheral
	GPS   *gp.Peripheral
	Power *gp.Peripheral
}

// New resolves this board's pins against the host's GPIO registry, sets
// up its three peripherals (a Sim900 modem, an NV08C-CSM GNSS receiver,
// and a stub entry for the board's power-management IC) and registers
// them with package gpioperiph's process-wide registry.
func New() (*Board, error) {
	resolve := func(name string) gpio.PinIO { return gpioreg.ByName(name) }

	gsm := gp.New(gp.KindGSM, "gsm", "Sim900 GSM modem", gsmPins, resolve)
	gsm.SetVTable(gp.VTable{Setup: devices.Sim900Setup})
	if err := gsm.Setup(); err != nil {
		return nil, fmt.Errorf("board: gsm setup: %w", err)
	}

	gps := gp.New(gp.KindGPS, "gps", "NV08C-CSM GNSS receiver", gpsPins, resolve)
	gps.SetVTable(gp.VTable{Setup: devices.NV08CCSMSetup})
	if err := gps.Setup(); err != nil {
		return nil, fmt.Errorf("board: gps setup: %w", err)
	}

	power := gp.New(gp.KindPower, "power", "board PMIC", nil, resolve)
	power.SetVTable(gp.VTable{Setup: devices.StubSetup})
	if err := power.Setup(); err != nil {
		return nil, fmt.Errorf("board: power setup: %w", err)
	}

	b := &Board{GSM: gsm, GPS: gps, Power: power}
	for _, p := range []*gp.Peripheral{b.GSM, b.GPS, b.Power} {
		if err := gp.Register(p); err != nil {
			return nil, fmt.Errorf("board: %w", err)
		}
	}
	return b, nil
}
