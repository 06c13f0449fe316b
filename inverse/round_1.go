// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package inverse

import (
	"context"
	"math/big"

	"github.com/pkg/errors"

	"github.com/readygo67/modinverse/common"
)

func newRound1(ctx context.Context, params *Parameters, save *SaveData, temp *localTempData) round {
	return &round1{
		&base{params, ctx, save, temp, false, 1}}
}

func (round *round1) Start() *Error {
	if round.started {
		return round.WrapError(errors.New("round already started"))
	}
	round.number = 1
	round.started = true
	round.setPhase(PhaseNormalizing)

	// negative inputs become the congruent member of [0, modulus)
	s := common.ModInt(round.modulus).Mod(round.input)
	round.save.Normalized = s
	common.Logger.Debugf("%s normalized %s to %s (mod %s)", TaskName, round.input, s, round.modulus)

	if s.Sign() == 0 {
		return round.WrapError(errors.Wrapf(ErrZeroHasNoInverse, "%s is congruent to 0 modulo %s", round.input, round.modulus))
	}

	round.temp.remainders = []*big.Int{new(big.Int).Set(round.modulus), new(big.Int).Set(s)}
	round.temp.quotients = make([]*big.Int, 0)
	return nil
}

func (round *round1) NextRound() round {
	round.started = false
	return &round2{round}
}
