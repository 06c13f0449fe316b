// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package inversetest_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/readygo67/modinverse/inverse/inversetest"
)

func TestBelow(t *testing.T) {
	bound := big.NewInt(1000)
	for i := 0; i < 100; i++ {
		n := inversetest.Below(t, bound)
		assert.True(t, n.Sign() >= 0)
		assert.True(t, n.Cmp(bound) < 0)
	}
}

func TestModulusBitLength(t *testing.T) {
	for _, bits := range []int{2, 3, 64, 1024} {
		assert.Equal(t, bits, inversetest.Modulus(t, bits).BitLen())
	}
}

func TestPrime(t *testing.T) {
	p := inversetest.Prime(t, 64)
	assert.True(t, p.ProbablyPrime(30))
	assert.Equal(t, 64, p.BitLen())
}

func TestCoprimePair(t *testing.T) {
	negatives := 0
	for i := 0; i < 100; i++ {
		pair := inversetest.CoprimePair(t, 16)
		assert.True(t, pair.Coprime())
		abs := new(big.Int).Abs(pair.Number)
		assert.True(t, abs.Sign() > 0 && abs.Cmp(pair.Modulus) < 0, "%s", pair.Number)
		assert.Equal(t, int64(1), new(big.Int).GCD(nil, nil, abs, pair.Modulus).Int64())
		if pair.Number.Sign() < 0 {
			negatives++
		}
	}
	assert.True(t, negatives > 0 && negatives < 100, "%d negative numbers", negatives)
}

func TestSharedFactorPair(t *testing.T) {
	for i := 0; i < 50; i++ {
		pair := inversetest.SharedFactorPair(t, 128, 32)
		assert.False(t, pair.Coprime())
		abs := new(big.Int).Abs(pair.Number)
		assert.Equal(t, pair.GCD.String(), new(big.Int).GCD(nil, nil, abs, pair.Modulus).String())
		assert.NotEqual(t, 0, new(big.Int).Mod(pair.Number, pair.Modulus).Sign())
	}
}
