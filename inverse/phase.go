// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package inverse

// Phase is a state of the solver:
//
//	Start -> Validating -> Normalizing -> ForwardReducing -> CheckingGCD
//	      -> BackSubstituting -> Done
//
// Any state before Done may move to Failed.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseValidating
	PhaseNormalizing
	PhaseForwardReducing
	PhaseCheckingGCD
	PhaseBackSubstituting
	PhaseDone
	PhaseFailed
)

var phaseNames = [...]string{
	PhaseStart:            "start",
	PhaseValidating:       "validating",
	PhaseNormalizing:      "normalizing",
	PhaseForwardReducing:  "forward-reducing",
	PhaseCheckingGCD:      "checking-gcd",
	PhaseBackSubstituting: "back-substituting",
	PhaseDone:             "done",
	PhaseFailed:           "failed",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Terminal reports whether no further transition can happen.
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseFailed
}
