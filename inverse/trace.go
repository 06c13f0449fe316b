// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package inverse

import (
	"fmt"
	"math/big"
)

type (
	// Event is one narrated step of a solve. Events are delivered in order: all
	// reductions first, then all substitutions. Their integers are shared with
	// the solver and must not be modified.
	Event interface {
		fmt.Stringer
		StepIndex() int
		isEvent()
	}

	// Reduction is one application of Euclid's division lemma:
	// Remainder = Large - Quotient * Small.
	Reduction struct {
		Step int
		Remainder,
		Large,
		Quotient,
		Small *big.Int
	}

	// Substitution is one linear combination of the back-substitution:
	// gcd = P * Left + Q * Right, where Left = r[K] and Right = r[K+1].
	Substitution struct {
		Step int
		K    int
		P,
		Left,
		Q,
		Right *big.Int
	}

	Sink interface {
		Emit(ev Event)
	}

	SinkFunc func(ev Event)

	// Trace is a Sink that buffers every event so the sequence can be rendered
	// or replayed after the solve has finished.
	Trace struct {
		events []Event
	}
)

func (r *Reduction) StepIndex() int { return r.Step }

func (r *Reduction) String() string {
	return fmt.Sprintf("%s = %s - %s * %s", r.Remainder, r.Large, r.Quotient, r.Small)
}

func (*Reduction) isEvent() {}

func (s *Substitution) StepIndex() int { return s.Step }

func (s *Substitution) String() string {
	return fmt.Sprintf("%s * %s + %s * %s", s.P, s.Left, s.Q, s.Right)
}

func (*Substitution) isEvent() {}

func (f SinkFunc) Emit(ev Event) { f(ev) }

func NewTrace() *Trace {
	return &Trace{events: make([]Event, 0)}
}

func (t *Trace) Emit(ev Event) {
	t.events = append(t.events, ev)
}

func (t *Trace) Len() int {
	return len(t.events)
}

// Events returns the buffered events in emission order.
func (t *Trace) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

func (t *Trace) Reductions() []*Reduction {
	out := make([]*Reduction, 0, len(t.events))
	for _, ev := range t.events {
		if r, ok := ev.(*Reduction); ok {
			out = append(out, r)
		}
	}
	return out
}

func (t *Trace) Substitutions() []*Substitution {
	out := make([]*Substitution, 0, len(t.events))
	for _, ev := range t.events {
		if s, ok := ev.(*Substitution); ok {
			out = append(out, s)
		}
	}
	return out
}

// Replay sends the buffered events to sink, in order. It may be called any number of times.
func (t *Trace) Replay(sink Sink) {
	for _, ev := range t.events {
		sink.Emit(ev)
	}
}

func (t *Trace) Reset() {
	t.events = t.events[:0]
}
