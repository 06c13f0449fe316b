// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package inversetest generates random (number, modulus) inputs for solver
// tests. Every pair comes with the answer the solver must reach.
package inversetest

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

var one = big.NewInt(1)

// Pair is a solver input together with the GCD of its normalized number and
// modulus.
type Pair struct {
	Number,
	Modulus,
	GCD *big.Int
}

// Coprime reports whether the pair has a multiplicative inverse.
func (p Pair) Coprime() bool {
	return p.GCD.Cmp(one) == 0
}

// Below returns a uniform value in [0, bound). bound must be positive.
func Below(t testing.TB, bound *big.Int) *big.Int {
	t.Helper()
	require.True(t, bound.Sign() > 0, "bound %s is not positive", bound)
	n, err := rand.Int(rand.Reader, bound)
	require.NoError(t, err)
	return n
}

// Modulus returns a random modulus of exactly bits bits, bits >= 2.
func Modulus(t testing.TB, bits int) *big.Int {
	t.Helper()
	require.True(t, bits >= 2, "a modulus needs at least 2 bits, got %d", bits)
	m := Below(t, new(big.Int).Lsh(one, uint(bits)))
	return m.SetBit(m, bits-1, 1)
}

// Prime returns a random prime of exactly bits bits.
func Prime(t testing.TB, bits int) *big.Int {
	t.Helper()
	p, err := rand.Prime(rand.Reader, bits)
	require.NoError(t, err)
	return p
}

// CoprimePair returns a number in (-modulus, modulus) that is invertible
// modulo a random bits-bit modulus. Half of the numbers are negative.
func CoprimePair(t testing.TB, bits int) Pair {
	t.Helper()
	modulus := Modulus(t, bits)
	gcd := new(big.Int)
	for {
		number := Below(t, modulus)
		if number.Sign() == 0 || gcd.GCD(nil, nil, number, modulus).Cmp(one) != 0 {
			continue
		}
		if number.Bit(0) == 1 {
			number.Neg(number)
		}
		return Pair{Number: number, Modulus: modulus, GCD: big.NewInt(1)}
	}
}

// SharedFactorPair returns a pair with no inverse whose GCD is a random
// prime of factorBits bits. The number is never a multiple of the modulus,
// so the solver reaches its GCD check instead of stopping at zero.
func SharedFactorPair(t testing.TB, bits, factorBits int) Pair {
	t.Helper()
	require.True(t, bits > factorBits+1, "a %d-bit modulus cannot hold a %d-bit factor and a cofactor", bits, factorBits)
	factor := Prime(t, factorBits)
	cofactors := CoprimePair(t, bits-factorBits)
	number := new(big.Int).Mul(cofactors.Number, factor)
	modulus := new(big.Int).Mul(cofactors.Modulus, factor)
	return Pair{Number: number, Modulus: modulus, GCD: factor}
}
