// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpioperiph

import (
	"context"
	"fmt"
	"sync"
)

// CommandKind enumerates the operations a Peripheral accepts through its
// command queue.
type CommandKind uint8

// Recognized command kinds.
const (
	CommandNoOp CommandKind = iota
	CommandPowerOn
	CommandPowerOff
	CommandReset
	CommandCheckAndPowerOn
	CommandStateTransition
)

func (k CommandKind) String() string {
	switch k {
	case CommandPowerOn:
		return "power_on"
	case CommandPowerOff:
		return "power_off"
	case CommandReset:
		return "reset"
	case CommandCheckAndPowerOn:
		return "check_and_power_on"
	case CommandStateTransition:
		return "state_transition"
	default:
		return "no_op"
	}
}

// Completion is a one-shot signal that a command has finished executing.
// It owns the command's result for as long as the caller holds a reference
// to it; there is no separate free step to run once the result has been
// observed, unlike the original kernel driver, which had to defer freeing
// command storage out of its interrupt-unsafe worker context. Here the
// garbage collector retires the command the moment its Completion is
// dropped.
type Completion struct {
	done chan struct{}
	err  error
}

// Wait blocks until the command completes or ctx is cancelled, whichever
// comes first. A cancelled wait does not cancel the command itself: it
// keeps running to completion on the peripheral's worker, since partial
// pin sequences would leave the hardware electrically undefined.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done reports whether the command has finished, without blocking.
func (c *Completion) Done() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// commandQueueDepth bounds the number of commands that may be pending for
// a single peripheral at once. It is a resource-shortage backstop, not a
// throughput target: peripherals are power-sequenced at most a few times a
// minute.
const commandQueueDepth = 64

type command struct {
	kind       CommandKind
	arg        int
	completion *Completion
}

// commandQueue is a peripheral's FIFO, single-worker command queue. At
// most one command executes at a time; commands submitted in order
// complete in the same order.
type commandQueue struct {
	p *Peripheral

	mu     sync.Mutex
	ch     chan *command
	closed bool
	wg     sync.WaitGroup
}

func newCommandQueue(p *Peripheral) *commandQueue {
	q := &commandQueue{
		p:  p,
		ch: make(chan *command, commandQueueDepth),
	}
	q.wg.Add(1)
	go q.run()
	return q
}

// enqueue creates a command record and submits it. It never blocks: if the
// queue is full the enqueue is aborted and an error is returned, leaving no
// partial state behind. This is also what makes enqueue safe to call from
// a status-edge notification, which must not block.
func (q *commandQueue) enqueue(kind CommandKind, arg int) (*Completion, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil, ErrQueueClosed
	}
	c := &Completion{done: make(chan struct{})}
	select {
	case q.ch <- &command{kind: kind, arg: arg, completion: c}:
		return c, nil
	default:
		return nil, fmt.Errorf("gpioperiph: command queue full for peripheral %q", q.p.Name)
	}
}

// drain closes the queue to new commands and waits for the worker to
// finish every command already submitted.
func (q *commandQueue) drain() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()
	q.wg.Wait()
}

func (q *commandQueue) run() {
	defer q.wg.Done()
	for cmd := range q.ch {
		cmd.completion.err = q.dispatch(cmd)
		close(cmd.completion.done)
	}
}

func (q *commandQueue) dispatch(cmd *command) error {
	v := q.p.vtable
	switch cmd.kind {
	case CommandNoOp:
		return nil
	case CommandPowerOn:
		return requireOp("power_on", v.PowerOn, q.p.Name)(q.p)
	case CommandPowerOff:
		return requireOp("power_off", v.PowerOff, q.p.Name)(q.p)
	case CommandReset:
		return requireOp("reset", v.Reset, q.p.Name)(q.p)
	case CommandCheckAndPowerOn:
		return requireOp("check_and_power_on", v.CheckAndPowerOn, q.p.Name)(q.p)
	case CommandStateTransition:
		if v.StateTransition == nil {
			return ErrNoStateTable
		}
		return v.StateTransition(q.p, cmd.arg)
	default:
		return fmt.Errorf("gpioperiph: unknown command %v", cmd.kind)
	}
}

// requireOp returns op, or a function reporting its absence as an error if
// op is nil. A peripheral with an incomplete vtable is a setup-time bug in
// its driver, but the command-queue worker must not take the whole process
// down over it, so it surfaces as a completion error rather than a panic.
func requireOp(name string, op func(*Peripheral) error, peripheral string) func(*Peripheral) error {
	if op != nil {
		return op
	}
	return func(*Peripheral) error {
		return fmt.Errorf("gpioperiph: peripheral %q has no %s operation", peripheral, name)
	}
}

// Enqueue submits a command to the peripheral's queue and returns its
// completion handle without waiting for it to run.
func (p *Peripheral) Enqueue(kind CommandKind, arg int) (*Completion, error) {
	return p.queue.enqueue(kind, arg)
}

// PowerOn enqueues and waits for a PowerOn command.
func (p *Peripheral) PowerOn(ctx context.Context) error {
	return p.runAndWait(ctx, CommandPowerOn, 0)
}

// PowerOff enqueues and waits for a PowerOff command.
func (p *Peripheral) PowerOff(ctx context.Context) error {
	return p.runAndWait(ctx, CommandPowerOff, 0)
}

// Reset enqueues and waits for a Reset command.
func (p *Peripheral) Reset(ctx context.Context) error {
	return p.runAndWait(ctx, CommandReset, 0)
}

// CheckAndPowerOn enqueues and waits for a CheckAndPowerOn command.
func (p *Peripheral) CheckAndPowerOn(ctx context.Context) error {
	return p.runAndWait(ctx, CommandCheckAndPowerOn, 0)
}

// StateTransition enqueues and waits for a StateTransition command
// targeting the state named target.
func (p *Peripheral) StateTransition(ctx context.Context, target string) error {
	id, err := p.stateIDByName(target)
	if err != nil {
		return err
	}
	return p.runAndWait(ctx, CommandStateTransition, id)
}

func (p *Peripheral) runAndWait(ctx context.Context, kind CommandKind, arg int) error {
	c, err := p.queue.enqueue(kind, arg)
	if err != nil {
		return err
	}
	return c.Wait(ctx)
}
