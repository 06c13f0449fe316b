// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package inverse

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// TaskName identifies this package in *Error values.
const TaskName = "modinverse"

// Outcomes a solve can fail with. None of them is fatal: each ends only the
// invocation that produced it.
var (
	ErrInvalidModulus   = errors.New("invalid modulus")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrZeroHasNoInverse = errors.New("0 has no multiplicative inverse")
	ErrNoInverseExists  = errors.New("multiplicative inverse does not exist")
	ErrStepLimit        = errors.New("reduction step limit exceeded")
	ErrNilParameters    = errors.New("nil parameters")
)

type Error struct {
	cause error
	task  string
	phase Phase
	round int
	gcd   *big.Int
}

func NewError(err error, task string, phase Phase, round int) *Error {
	return &Error{cause: err, task: task, phase: phase, round: round}
}

func (err *Error) Unwrap() error { return err.cause }

func (err *Error) Cause() error { return err.cause }

func (err *Error) Task() string { return err.task }

// Phase is the solver state that was active when the error was raised.
func (err *Error) Phase() Phase { return err.phase }

func (err *Error) Round() int { return err.round }

// GCD is set for ErrNoInverseExists and is nil otherwise.
func (err *Error) GCD() *big.Int {
	if err.gcd == nil {
		return nil
	}
	return new(big.Int).Set(err.gcd)
}

func (err *Error) Error() string {
	if err == nil || err.cause == nil {
		return "Error is nil"
	}
	if err.round > 0 {
		return fmt.Sprintf("task %s, phase %s, round %d: %s", err.task, err.phase, err.round, err.cause.Error())
	}
	return fmt.Sprintf("task %s, phase %s: %s", err.task, err.phase, err.cause.Error())
}

// inputError rejects a raw argument. It matches its kind (ErrInvalidModulus or
// ErrInvalidNumber) under errors.Is and unwraps to the parse failure, if any.
type inputError struct {
	kind   error
	reason string
	err    error
}

func (e *inputError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.kind, e.err)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.reason)
}

func (e *inputError) Is(target error) bool { return target == e.kind }

func (e *inputError) Unwrap() error { return e.err }

func validationError(kind error, reason string, parseErr error) *Error {
	return NewError(&inputError{kind: kind, reason: reason, err: parseErr}, TaskName, PhaseValidating, 0)
}
