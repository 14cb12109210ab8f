// Copyright 2026 The Gpioperiph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpioperiph

// Transition describes one edge of a peripheral's state graph: moving from
// From to To runs Action (if any), and only takes effect if Action
// succeeds.
type Transition struct {
	From   int
	To     int
	Action func(*Peripheral) error
}

// StateMachine is a reusable, table-driven state-transition dispatcher.
// The original driver hardcoded one device's transition switch statement;
// here any peripheral that calls SetStateTable can get its own
// StateMachine built from a declarative Transition list, and install its
// Transition method as VTable.StateTransition.
type StateMachine struct {
	edges map[stateEdge]Transition
}

type stateEdge struct {
	from int
	to   int
}

// NewStateMachine builds a StateMachine from a list of allowed edges. Edges
// not present are rejected by Transition with ErrInvalidTransition.
func NewStateMachine(transitions []Transition) *StateMachine {
	m := &StateMachine{edges: make(map[stateEdge]Transition, len(transitions))}
	for _, t := range transitions {
		m.edges[stateEdge{t.From, t.To}] = t
	}
	return m
}

// Transition drives p from its current state to target. It returns
// ErrSameState if target is already current, ErrInvalidTransition if no
// edge connects them, or the error from the edge's Action. The state only
// advances once Action returns nil.
func (m *StateMachine) Transition(p *Peripheral, target int) error {
	current := p.CurrentState()
	if current == target {
		return ErrSameState
	}
	t, ok := m.edges[stateEdge{current, target}]
	if !ok {
		return ErrInvalidTransition
	}
	if t.Action != nil {
		if err := t.Action(p); err != nil {
			return err
		}
	}
	p.setState(target)
	return nil
}
