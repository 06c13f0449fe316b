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

// Start checks that the GCD is 1 and then walks the quotients backwards.
//
// With r[k+1] = r[k-1] - q[k]*r[k], a combination 1 = p*r[k] + q*r[k+1]
// becomes 1 = q*r[k-1] + (p - q*q[k])*r[k]. Starting from
// 1 = r[n-2] - q[n-1]*r[n-1] and stopping at r[0], r[1] leaves the
// coefficient of the number in q.
func (round *round3) Start() *Error {
	if round.started {
		return round.WrapError(errors.New("round already started"))
	}
	round.number = 3
	round.started = true
	round.setPhase(PhaseCheckingGCD)

	rs, qs := round.temp.remainders, round.temp.quotients
	n := len(qs)
	if gcd := rs[n]; gcd.Cmp(one) != 0 {
		err := round.WrapError(errors.Wrapf(ErrNoInverseExists,
			"%s and %s are not coprime, gcd is %s", round.save.Normalized, round.modulus, gcd))
		err.gcd = new(big.Int).Set(gcd)
		return err
	}

	round.setPhase(PhaseBackSubstituting)
	var p, q *big.Int
	if n == 1 {
		// the normalized number is 1 and divides the modulus outright
		p, q = new(big.Int).Set(zero), big.NewInt(1)
		round.emit(&Substitution{Step: 1, K: 0, P: p, Left: rs[0], Q: q, Right: rs[1]})
	} else {
		// qs[i-1] holds q[i]
		p, q = big.NewInt(1), new(big.Int).Neg(qs[n-2])
		round.emit(&Substitution{Step: 1, K: n - 2, P: p, Left: rs[n-2], Q: q, Right: rs[n-1]})
		for k, step := n-2, 2; k >= 1; k, step = k-1, step+1 {
			next := new(big.Int).Mul(q, qs[k-1])
			p, q = q, next.Sub(p, next)
			round.emit(&Substitution{Step: step, K: k - 1, P: p, Left: rs[k-1], Q: q, Right: rs[k]})
		}
	}

	// events keep p and q, the result gets its own copies
	mod := common.ModInt(round.modulus)
	inverse := mod.Mod(q)
	if check := mod.Mul(round.save.Normalized, inverse); check.Cmp(one) != 0 {
		return round.WrapError(errors.Errorf("%s * %s is %s modulo %s, not 1", round.save.Normalized, inverse, check, round.modulus))
	}
	round.save.CoefModulus = new(big.Int).Set(p)
	round.save.CoefNumber = new(big.Int).Set(q)
	round.save.Inverse = inverse
	common.Logger.Debugf("%s back-substitution: %s * %s + %s * %s = 1",
		TaskName, p, round.modulus, q, round.save.Normalized)
	return nil
}

func (round *round3) NextRound() round {
	round.started = false
	return nil
}
