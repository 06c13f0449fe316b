// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package inverse

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/readygo67/modinverse/common"
)

// Start applies Euclid's division lemma until the remainder is 0. Remainders
// strictly decrease and stay non-negative, so the loop ends after
// O(log(modulus)) steps.
func (round *round2) Start() *Error {
	if round.started {
		return round.WrapError(errors.New("round already started"))
	}
	round.number = 2
	round.started = true
	round.setPhase(PhaseForwardReducing)

	rs := round.temp.remainders
	large, small := rs[0], rs[1]
	for step := 1; ; step++ {
		if err := round.ctx.Err(); err != nil {
			return round.WrapError(errors.Wrapf(err, "forward reduction interrupted at step %d", step))
		}
		if round.maxSteps > 0 && step > round.maxSteps {
			return round.WrapError(errors.Wrapf(ErrStepLimit, "no zero remainder after %d steps", round.maxSteps))
		}

		// large = quotient * small + remainder, 0 <= remainder < small
		quotient, remainder := common.FloorDivMod(large, small)
		round.temp.quotients = append(round.temp.quotients, quotient)
		round.temp.remainders = append(round.temp.remainders, remainder)
		round.emit(&Reduction{
			Step:      step,
			Remainder: remainder,
			Large:     large,
			Quotient:  quotient,
			Small:     small,
		})

		if remainder.Sign() == 0 {
			break
		}
		large, small = small, remainder
	}

	n := len(round.temp.quotients)
	round.save.Steps = n
	round.save.GCD = new(big.Int).Set(round.temp.remainders[n])
	common.Logger.Debugf("%s forward reduction of (%s, %s) took %d steps, gcd %s",
		TaskName, round.save.Normalized, round.modulus, n, round.save.GCD)
	return nil
}

func (round *round2) NextRound() round {
	round.started = false
	return &round3{round}
}
