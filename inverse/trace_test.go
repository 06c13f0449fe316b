// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package inverse_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/readygo67/modinverse/inverse"
)

func eventStrings(events []Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.String()
	}
	return out
}

func TestTraceTenModSeventeen(t *testing.T) {
	trace := NewTrace()
	save, err := Solve(big.NewInt(10), big.NewInt(17), WithSink(trace))
	require.NoError(t, err)
	assert.Equal(t, int64(12), save.Inverse.Int64())
	assert.Equal(t, 4, save.Steps)

	assert.Equal(t, []string{
		"7 = 17 - 1 * 10",
		"3 = 10 - 1 * 7",
		"1 = 7 - 2 * 3",
		"0 = 3 - 3 * 1",
		"1 * 7 + -2 * 3",
		"-2 * 10 + 3 * 7",
		"3 * 17 + -5 * 10",
	}, eventStrings(trace.Events()))

	for i, r := range trace.Reductions() {
		assert.Equal(t, i+1, r.Step)
		assert.Equal(t, i+1, r.StepIndex())
	}
	subs := trace.Substitutions()
	require.Len(t, subs, 3)
	for i, s := range subs {
		assert.Equal(t, i+1, s.Step)
		assert.Equal(t, 2-i, s.K)
	}
	last := subs[len(subs)-1]
	assert.Equal(t, save.CoefModulus.String(), last.P.String())
	assert.Equal(t, save.CoefNumber.String(), last.Q.String())
}

func TestTraceThreeModEleven(t *testing.T) {
	trace := NewTrace()
	_, err := Solve(big.NewInt(3), big.NewInt(11), WithSink(trace))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2 = 11 - 3 * 3",
		"1 = 3 - 1 * 2",
		"0 = 2 - 2 * 1",
		"1 * 3 + -1 * 2",
		"-1 * 11 + 4 * 3",
	}, eventStrings(trace.Events()))
}

func TestTraceSingleStep(t *testing.T) {
	trace := NewTrace()
	save, err := Solve(big.NewInt(1), big.NewInt(5), WithSink(trace))
	require.NoError(t, err)
	assert.Equal(t, int64(1), save.Inverse.Int64())
	assert.Equal(t, 1, save.Steps)
	assert.Equal(t, []string{
		"0 = 5 - 5 * 1",
		"0 * 5 + 1 * 1",
	}, eventStrings(trace.Events()))
}

func TestTraceSubstitutionsEvaluateToGCD(t *testing.T) {
	for _, c := range [][2]int64{{10, 17}, {3, 11}, {-4, 7}, {1, 5}, {2, 5}, {89, 144}, {123456, 1000003}} {
		trace := NewTrace()
		_, err := Solve(big.NewInt(c[0]), big.NewInt(c[1]), WithSink(trace))
		require.NoError(t, err)
		require.NotEmpty(t, trace.Substitutions())
		for _, s := range trace.Substitutions() {
			sum := new(big.Int).Mul(s.P, s.Left)
			sum.Add(sum, new(big.Int).Mul(s.Q, s.Right))
			assert.Equal(t, int64(1), sum.Int64(), "%v: %s", c, s)
		}
		for _, r := range trace.Reductions() {
			back := new(big.Int).Mul(r.Quotient, r.Small)
			back.Sub(r.Large, back)
			assert.Equal(t, r.Remainder.String(), back.String(), "%v: %s", c, r)
			assert.True(t, r.Remainder.Sign() >= 0)
			assert.True(t, r.Remainder.Cmp(r.Small) < 0)
		}
	}
}

func TestTraceStopsAtFailure(t *testing.T) {
	trace := NewTrace()
	_, err := Solve(big.NewInt(6), big.NewInt(9), WithSink(trace))
	require.Error(t, err)
	assert.Equal(t, []string{
		"3 = 9 - 1 * 6",
		"0 = 6 - 2 * 3",
	}, eventStrings(trace.Events()))
	assert.Empty(t, trace.Substitutions())

	trace.Reset()
	_, err = Solve(big.NewInt(0), big.NewInt(7), WithSink(trace))
	require.Error(t, err)
	assert.Equal(t, 0, trace.Len())
}

func TestTraceReplay(t *testing.T) {
	trace := NewTrace()
	_, err := Solve(big.NewInt(10), big.NewInt(17), WithSink(trace))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		var steps []int
		trace.Replay(SinkFunc(func(ev Event) {
			steps = append(steps, ev.StepIndex())
		}))
		assert.Equal(t, []int{1, 2, 3, 4, 1, 2, 3}, steps)
	}

	events := trace.Events()
	events[0] = nil
	assert.NotNil(t, trace.Events()[0], "Events must return a copy")
}

func TestSinkFuncReceivesEventsInOrder(t *testing.T) {
	var kinds []string
	sink := SinkFunc(func(ev Event) {
		switch ev.(type) {
		case *Reduction:
			kinds = append(kinds, "reduction")
		case *Substitution:
			kinds = append(kinds, "substitution")
		}
	})
	_, err := Solve(big.NewInt(3), big.NewInt(11), WithSink(sink))
	require.NoError(t, err)
	assert.Equal(t, []string{"reduction", "reduction", "reduction", "substitution", "substitution"}, kinds)
}

func TestTraceSurvivesResultMutation(t *testing.T) {
	trace := NewTrace()
	save, err := Solve(big.NewInt(10), big.NewInt(17), WithSink(trace))
	require.NoError(t, err)
	before := eventStrings(trace.Events())

	for _, n := range []*big.Int{
		save.Number, save.Modulus, save.Normalized, save.GCD,
		save.CoefModulus, save.CoefNumber, save.Inverse,
	} {
		n.SetInt64(999)
	}
	assert.Equal(t, before, eventStrings(trace.Events()))
	assert.Equal(t, "7 = 17 - 1 * 10", trace.Events()[0].String())
	assert.Equal(t, "3 * 17 + -5 * 10", trace.Events()[len(before)-1].String())
}

func TestTraceSurvivesResultMutationSingleStep(t *testing.T) {
	trace := NewTrace()
	save, err := Solve(big.NewInt(6), big.NewInt(5), WithSink(trace))
	require.NoError(t, err)
	save.Normalized.SetInt64(999)
	save.CoefModulus.SetInt64(999)
	save.CoefNumber.SetInt64(999)
	assert.Equal(t, []string{"0 = 5 - 5 * 1", "0 * 5 + 1 * 1"}, eventStrings(trace.Events()))
}
