// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

var one = big.NewInt(1)

// ErrNotAnInteger is returned by ParseInt for text that is not a base-10 integer.
var ErrNotAnInteger = errors.New("not a base-10 integer")

// ParseInt converts base-10 text, with an optional leading minus sign, into a
// *big.Int. Surrounding whitespace is ignored; a leading plus sign is not
// accepted.
func ParseInt(s string) (*big.Int, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "+") {
		return nil, errors.Wrapf(ErrNotAnInteger, "%q", s)
	}
	n, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return nil, errors.Wrapf(ErrNotAnInteger, "%q", s)
	}
	return n, nil
}

// FloorDivMod returns q = floor(x / y) and r = x - q*y, so r carries the sign of y.
// It panics if y is zero, like big.Int.DivMod.
func FloorDivMod(x, y *big.Int) (q, r *big.Int) {
	q, r = new(big.Int), new(big.Int)
	q.DivMod(x, y, r) // euclidean: 0 <= r < |y|
	if y.Sign() < 0 && r.Sign() != 0 {
		q.Sub(q, one)
		r.Add(r, y)
	}
	return
}

// modInt is a *big.Int that performs all of its arithmetic with modular reduction.
// The modulus is expected to be positive, so every result lies in [0, modulus).
type modInt big.Int

func ModInt(mod *big.Int) *modInt {
	return (*modInt)(new(big.Int).Set(mod))
}

// Mod reduces x into [0, modulus) using floor semantics.
func (mi *modInt) Mod(x *big.Int) *big.Int {
	_, r := FloorDivMod(x, mi.i())
	return r
}

func (mi *modInt) Mul(x, y *big.Int) *big.Int {
	i := new(big.Int).Mul(x, y)
	return mi.Mod(i)
}

func (mi *modInt) i() *big.Int {
	return (*big.Int)(mi)
}
