// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package inverse

import (
	"context"
	"math/big"
	"time"

	"github.com/readygo67/modinverse/common"
)

// Solve finds q in [0, modulus) with number*q ≡ 1 (mod modulus) using the
// extended Euclidean algorithm, reporting each step to the Sink given with
// WithSink.
//
// The returned error is an *Error matching one of ErrInvalidModulus,
// ErrInvalidNumber, ErrZeroHasNoInverse, ErrNoInverseExists or ErrStepLimit
// under errors.Is. Once the input is valid the SaveData is returned even on
// failure, filled up to the failing phase.
func Solve(number, modulus *big.Int, opts ...Option) (*SaveData, error) {
	return SolveWithContext(context.Background(), number, modulus, opts...)
}

// SolveWithContext is like Solve but stops between reduction steps once ctx is done.
func SolveWithContext(ctx context.Context, number, modulus *big.Int, opts ...Option) (*SaveData, error) {
	params, err := NewParameters(number, modulus, opts...)
	if err != nil {
		return nil, err
	}
	return Run(ctx, params)
}

// Run drives validated parameters through the normalization, reduction and
// back-substitution rounds. params must come from NewParameters or
// ParseParameters; nil is rejected with ErrNilParameters.
func Run(ctx context.Context, params *Parameters) (*SaveData, error) {
	if params == nil {
		return nil, validationError(ErrNilParameters, "build them with NewParameters or ParseParameters", nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	save := NewSaveData(params)
	temp := &localTempData{}
	start := time.Now()

	var rnd round = newRound1(ctx, params, save, temp)
	for rnd != nil {
		if err := rnd.Start(); err != nil {
			save.Phase = PhaseFailed
			common.Logger.Debugf("%s round %d failed: %s", TaskName, rnd.RoundNumber(), err.Cause())
			return save, err
		}
		rnd = rnd.NextRound()
	}
	save.Phase = PhaseDone
	common.Logger.Infof("%s inverse of %s mod %s is %s (%d steps, took %s)",
		TaskName, save.Number, save.Modulus, save.Inverse, save.Steps, time.Since(start))
	return save, nil
}
