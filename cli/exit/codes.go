// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package exit lists the process exit codes of the modinverse command.
// Scripts depend on these values; never renumber them.
package exit

import "fmt"

// Code is a process exit code.
type Code struct {
	code int
}

var names = map[int]string{
	0: "success",
	1: "usage error",
	2: "invalid modulus",
	3: "modulus too small",
	4: "invalid number",
	5: "zero has no inverse",
	6: "no inverse exists",
	7: "aborted",
}

// Int returns the value to pass to os.Exit.
func (c Code) Int() int { return c.code }

func (c Code) String() string {
	if name, ok := names[c.code]; ok {
		return fmt.Sprintf("%d (%s)", c.code, name)
	}
	return fmt.Sprintf("%d", c.code)
}

// Success (0) means the inverse was found and printed.
func Success() Code { return Code{0} }

// UsageError (1) means the wrong number of arguments or an invalid flag.
func UsageError() Code { return Code{1} }

// InvalidModulus (2) means the modulus is not an integer.
func InvalidModulus() Code { return Code{2} }

// ModulusTooSmall (3) means the modulus is an integer not greater than 1.
func ModulusTooSmall() Code { return Code{3} }

// InvalidNumber (4) means the number is not an integer.
func InvalidNumber() Code { return Code{4} }

// ZeroHasNoInverse (5) means the number is congruent to 0.
func ZeroHasNoInverse() Code { return Code{5} }

// NoInverse (6) means the number and the modulus share a factor.
func NoInverse() Code { return Code{6} }

// Aborted (7) means the computation hit the step ceiling or the deadline.
func Aborted() Code { return Code{7} }
