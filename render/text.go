// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package render

import (
	"io"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/otiai10/primes"
	"github.com/pkg/errors"

	"github.com/readygo67/modinverse/common"
	"github.com/readygo67/modinverse/inverse"
)

const (
	banner = "ARBITRARY PRECISION MULTIPLICATIVE INVERSE"
	rule   = "-----"
)

// textRenderer narrates a solve step by step.
type textRenderer struct{}

func (*textRenderer) Render(w io.Writer, tr *Transcript) error {
	p := &printer{w: w}
	p.printf("%s\n%s\n\n", rule, banner)
	if tr.Save == nil {
		renderRejected(p, tr)
	} else {
		narrate(p, tr)
	}
	p.printf("%s\n", rule)
	return p.err
}

func narrate(p *printer, tr *Transcript) {
	save := tr.Save

	p.printf("You entered the following.\n")
	p.printf("number  = %s\nmodulus = %s\n\n", save.Number, save.Modulus)
	if save.Normalized == nil {
		p.printf("%s\n", cause(tr.Err))
		return
	}
	p.printf("Correcting input argument.\n")
	p.printf("number  = %s\nmodulus = %s\n\n", save.Normalized, save.Modulus)
	if errors.Is(tr.Err, inverse.ErrZeroHasNoInverse) {
		p.printf("0 does not have a multiplicative inverse with respect to any modulus.\n")
		return
	}

	p.printf("Executing Euclid's algorithm.\n")
	for _, r := range tr.Reductions() {
		p.printf("#%6d:\t%s\n", r.Step, r)
	}
	p.printf("\n")
	if save.GCD == nil {
		p.printf("computation aborted: %s\n", cause(tr.Err))
		return
	}

	p.printf("greatest common divisor of\n(%s, %s)\n=\n%s\n\n", save.Normalized, save.Modulus, save.GCD)
	if errors.Is(tr.Err, inverse.ErrNoInverseExists) {
		p.printf("The multiplicative inverse of\n%s\nwith respect to the modulus\n%s\ndoes not exist.\n",
			save.Normalized, save.Modulus)
		if factors := sharedPrimeFactors(save.GCD); len(factors) > 0 {
			p.printf("shared prime factors: %s\n", strings.Join(factors, ", "))
		}
		return
	}

	p.printf("Calculating multiplicative inverse.\n")
	for i, s := range tr.Substitutions() {
		if i == 0 {
			p.printf("%s", save.GCD)
		}
		p.printf("\t= %s\n", s)
	}
	p.printf("\n")
	if !save.Found() {
		p.printf("computation aborted: %s\n", cause(tr.Err))
		return
	}
	p.printf("multiplicative inverse of\n%s\nwith respect to the modulus\n%s\n=\n%s\n",
		save.Normalized, save.Modulus, save.Inverse)
}

func renderRejected(p *printer, tr *Transcript) {
	switch {
	case errors.Is(tr.Err, common.ErrNotAnInteger) && errors.Is(tr.Err, inverse.ErrInvalidModulus):
		p.printf("%s is not a valid natural number.\n", tr.Modulus)
	case errors.Is(tr.Err, inverse.ErrInvalidModulus):
		m := tr.Modulus
		if n, err := common.ParseInt(m); err == nil {
			m = n.String()
		}
		p.printf("%s is not a valid modulus.\n", m)
	case errors.Is(tr.Err, inverse.ErrInvalidNumber):
		p.printf("%s is not a valid natural number.\n", tr.Number)
	case tr.Err != nil:
		p.printf("%s\n", cause(tr.Err))
	}
}

// maxFactorable bounds the GCDs sharedPrimeFactors will trial-divide.
const maxFactorable = 1 << 40

// sharedPrimeFactors lists the distinct primes dividing gcd in increasing
// order, or nothing when gcd is too large to factor quickly.
func sharedPrimeFactors(gcd *big.Int) []string {
	if gcd == nil || !gcd.IsInt64() || gcd.Int64() < 2 || gcd.Int64() > maxFactorable {
		return nil
	}
	seen := make(map[int64]struct{})
	distinct := make([]int64, 0)
	for _, f := range primes.Factorize(gcd.Int64()).All() {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		distinct = append(distinct, f)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })
	out := make([]string, len(distinct))
	for i, f := range distinct {
		out[i] = strconv.FormatInt(f, 10)
	}
	return out
}
