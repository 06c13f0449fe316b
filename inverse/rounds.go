// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package inverse

import (
	"context"
)

type (
	round interface {
		Start() *Error
		RoundNumber() int
		// NextRound returns nil after the last round.
		NextRound() round
	}

	base struct {
		*Parameters
		ctx     context.Context
		save    *SaveData
		temp    *localTempData
		started bool
		number  int
	}

	// round1 normalizes the number into [0, modulus).
	round1 struct {
		*base
	}
	// round2 runs the forward Euclidean reduction.
	round2 struct {
		*round1
	}
	// round3 checks the GCD, back-substitutes and reduces the inverse.
	round3 struct {
		*round2
	}
)

var (
	_ round = (*round1)(nil)
	_ round = (*round2)(nil)
	_ round = (*round3)(nil)
)

func (round *base) RoundNumber() int {
	return round.number
}

func (round *base) setPhase(phase Phase) {
	round.save.Phase = phase
}

// WrapError records the active phase and round number alongside err.
func (round *base) WrapError(err error) *Error {
	return NewError(err, TaskName, round.save.Phase, round.number)
}
