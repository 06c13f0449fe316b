// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package inverse

import (
	"math/big"
)

type (
	// SaveData is what a solve leaves behind. On failure it holds whatever was
	// established before the failing phase: Normalized is set once round 1 ran,
	// GCD and Steps once the forward reduction finished.
	SaveData struct {
		Number,
		Modulus *big.Int

		// Number mod Modulus, in [0, Modulus)
		Normalized *big.Int

		// GCD of Number and Modulus, the last nonzero remainder
		GCD   *big.Int
		Steps int

		// Bézout coefficients: CoefModulus*Modulus + CoefNumber*Normalized == GCD
		CoefModulus,
		CoefNumber *big.Int

		// CoefNumber reduced into [0, Modulus)
		Inverse *big.Int

		Phase Phase
	}

	// localTempData is owned by one solve and dropped when it returns.
	localTempData struct {
		// r[0] = modulus, r[1] = normalized number, r[i+1] = r[i-1] mod r[i];
		// the final element is the zero that stopped the reduction
		remainders []*big.Int
		// quotients[i-1] = floor(r[i-1] / r[i])
		quotients []*big.Int
	}
)

func NewSaveData(params *Parameters) *SaveData {
	return &SaveData{
		Number:  params.Number(),
		Modulus: params.Modulus(),
		Phase:   PhaseStart,
	}
}

// Found reports whether the solve reached PhaseDone with an inverse.
func (save *SaveData) Found() bool {
	return save != nil && save.Phase == PhaseDone && save.Inverse != nil
}
