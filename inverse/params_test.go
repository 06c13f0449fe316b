// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package inverse_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readygo67/modinverse/common"
	. "github.com/readygo67/modinverse/inverse"
)

func TestParseParameters(t *testing.T) {
	params, err := ParseParameters("-4", "7", WithMaxSteps(10))
	require.NoError(t, err)
	assert.Equal(t, int64(-4), params.Number().Int64())
	assert.Equal(t, int64(7), params.Modulus().Int64())
	assert.Equal(t, 10, params.MaxSteps())

	save, err := Run(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(5), save.Inverse.Int64())
	assert.Equal(t, int64(3), save.Normalized.Int64())
}

func TestParseParametersBadModulus(t *testing.T) {
	_, err := ParseParameters("3", "eleven")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidModulus))
	assert.True(t, errors.Is(err, common.ErrNotAnInteger))

	for _, m := range []string{"1", "0", "-5"} {
		_, err = ParseParameters("3", m)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidModulus), m)
		assert.False(t, errors.Is(err, common.ErrNotAnInteger), m)
	}

	// both bad: the modulus wins
	_, err = ParseParameters("x", "y")
	assert.True(t, errors.Is(err, ErrInvalidModulus))
	assert.False(t, errors.Is(err, ErrInvalidNumber))
}

func TestParseParametersBadNumber(t *testing.T) {
	_, err := ParseParameters("3.5", "11")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidNumber))
	assert.True(t, errors.Is(err, common.ErrNotAnInteger))
	assert.False(t, errors.Is(err, ErrInvalidModulus))
}

func TestWithMaxStepsNegative(t *testing.T) {
	params, err := ParseParameters("3", "11", WithMaxSteps(-1))
	require.NoError(t, err)
	assert.Equal(t, 0, params.MaxSteps())
}

func TestParseParametersRejectsPlusSign(t *testing.T) {
	_, err := ParseParameters("+5", "7")
	assert.True(t, errors.Is(err, ErrInvalidNumber), "%v", err)
	_, err = ParseParameters("5", "+7")
	assert.True(t, errors.Is(err, ErrInvalidModulus), "%v", err)
	assert.True(t, errors.Is(err, common.ErrNotAnInteger), "%v", err)
}

func TestRunNilParameters(t *testing.T) {
	save, err := Run(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, save)
	assert.True(t, errors.Is(err, ErrNilParameters), "%v", err)
	var ierr *Error
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, PhaseValidating, ierr.Phase())
}
