// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package inverse

import (
	"fmt"
	"math/big"

	"github.com/readygo67/modinverse/common"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

type (
	// Parameters holds validated solver input. Build it with NewParameters or
	// ParseParameters; the zero value is not usable.
	Parameters struct {
		input,
		modulus *big.Int
		sink     Sink
		maxSteps int
	}

	Option func(*Parameters)
)

// WithSink delivers every trace event to sink, synchronously.
func WithSink(sink Sink) Option {
	return func(params *Parameters) {
		params.sink = sink
	}
}

// WithMaxSteps bounds the number of forward reduction steps; 0 means unbounded.
func WithMaxSteps(n int) Option {
	return func(params *Parameters) {
		if n < 0 {
			n = 0
		}
		params.maxSteps = n
	}
}

// NewParameters checks the modulus first, then the number. The modulus must be
// greater than 1.
func NewParameters(number, modulus *big.Int, opts ...Option) (*Parameters, error) {
	if modulus == nil {
		return nil, validationError(ErrInvalidModulus, "modulus is nil", nil)
	}
	if modulus.Cmp(one) <= 0 {
		return nil, validationError(ErrInvalidModulus, fmt.Sprintf("%s is not a valid modulus", modulus), nil)
	}
	if number == nil {
		return nil, validationError(ErrInvalidNumber, "number is nil", nil)
	}
	params := &Parameters{
		input:   new(big.Int).Set(number),
		modulus: new(big.Int).Set(modulus),
	}
	for _, opt := range opts {
		opt(params)
	}
	return params, nil
}

// ParseParameters parses base-10 arguments. The modulus is parsed and checked
// before the number is looked at.
func ParseParameters(number, modulus string, opts ...Option) (*Parameters, error) {
	m, err := common.ParseInt(modulus)
	if err != nil {
		return nil, validationError(ErrInvalidModulus, "", err)
	}
	if m.Cmp(one) <= 0 {
		return nil, validationError(ErrInvalidModulus, fmt.Sprintf("%s is not a valid modulus", m), nil)
	}
	n, err := common.ParseInt(number)
	if err != nil {
		return nil, validationError(ErrInvalidNumber, "", err)
	}
	return NewParameters(n, m, opts...)
}

func (params *Parameters) Number() *big.Int {
	return new(big.Int).Set(params.input)
}

func (params *Parameters) Modulus() *big.Int {
	return new(big.Int).Set(params.modulus)
}

func (params *Parameters) MaxSteps() int {
	return params.maxSteps
}

func (params *Parameters) emit(ev Event) {
	if params.sink != nil {
		params.sink.Emit(ev)
	}
}
