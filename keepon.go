// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpioperiph

import (
	"context"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// keepOnEdgeTimeout bounds how long the keep-on watcher blocks in
// WaitForEdge before re-checking for cancellation. It is not a debounce
// interval; StopKeepOn latency is bounded by this value.
const keepOnEdgeTimeout = 2 * time.Second

// StartKeepOn arms automatic recovery: whenever the status pin reports the
// peripheral has gone off, a CheckAndPowerOn command is enqueued to bring
// it back. It requires a Status-function pin that supports edge
// notification (Flags Pollable). Calling it twice without an intervening
// StopKeepOn returns ErrKeepOnActive, mirroring the original driver's
// refusal to install its status IRQ handler a second time.
func (p *Peripheral) StartKeepOn() error {
	p.keepOnMu.Lock()
	defer p.keepOnMu.Unlock()
	if p.keepOnActive {
		return ErrKeepOnActive
	}
	statusPin := p.FindPin(FunctionStatus)
	if statusPin == nil {
		return fmt.Errorf("gpioperiph: peripheral %q has no status pin to keep on", p.Name)
	}
	in, ok := statusPin.io.(gpio.PinIn)
	if !ok {
		return fmt.Errorf("gpioperiph: status pin %q does not support edge detection", statusPin.Name)
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.keepOnActive = true
	p.keepOnStop = cancel
	go p.watchStatus(ctx, in)
	return nil
}

// StopKeepOn disarms automatic recovery. It is a no-op if keep-on isn't
// active.
func (p *Peripheral) StopKeepOn() {
	p.keepOnMu.Lock()
	defer p.keepOnMu.Unlock()
	if !p.keepOnActive {
		return
	}
	p.keepOnStop()
	p.keepOnActive = false
	p.keepOnStop = nil
}

// KeepOnActive reports whether automatic recovery is currently armed.
func (p *Peripheral) KeepOnActive() bool {
	p.keepOnMu.Lock()
	defer p.keepOnMu.Unlock()
	return p.keepOnActive
}

// watchStatus is the keep-on background goroutine. It polls WaitForEdge in
// a loop so that ctx cancellation is observed within keepOnEdgeTimeout,
// following the same shape as a status-IRQ handler: each edge is a
// notification to re-examine status, not a value to trust on its own.
func (p *Peripheral) watchStatus(ctx context.Context, in gpio.PinIn) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !in.WaitForEdge(keepOnEdgeTimeout) {
			continue
		}
		if ctx.Err() != nil {
			return
		}
		p.handleStatusEdge()
	}
}

// handleStatusEdge runs on every observed status transition. If the
// peripheral now reports off, it enqueues a CheckAndPowerOn without
// waiting for it to finish: blocking the edge watcher on a multi-second
// power sequence would swallow further edges.
func (p *Peripheral) handleStatusEdge() {
	if p.Status() {
		return
	}
	_, _ = p.queue.enqueue(CommandCheckAndPowerOn, 0)
}
