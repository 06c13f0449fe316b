// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package render

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// jsonRenderer emits one JSON object per solve. Integers are decimal strings
// so no precision is lost.
type jsonRenderer struct{}

func (*jsonRenderer) Render(w io.Writer, tr *Transcript) error {
	s, err := TranscriptStruct(tr)
	if err != nil {
		return err
	}
	bz, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "marshalling transcript")
	}
	if _, err = w.Write(append(bz, '\n')); err != nil {
		return errors.Wrap(err, "writing transcript")
	}
	return nil
}

// TranscriptStruct converts a Transcript into a protobuf Struct.
func TranscriptStruct(tr *Transcript) (*structpb.Struct, error) {
	fields := map[string]interface{}{
		"number":  tr.Number,
		"modulus": tr.Modulus,
		"outcome": tr.Outcome(),
	}
	if save := tr.Save; save != nil {
		fields["phase"] = save.Phase.String()
		putInt(fields, "normalized", save.Normalized)
		putInt(fields, "gcd", save.GCD)
		putInt(fields, "inverse", save.Inverse)
		putInt(fields, "coefModulus", save.CoefModulus)
		putInt(fields, "coefNumber", save.CoefNumber)
		if save.GCD != nil {
			fields["steps"] = save.Steps
		}
	}

	reductions := make([]interface{}, 0)
	for _, r := range tr.Reductions() {
		reductions = append(reductions, map[string]interface{}{
			"step":      r.Step,
			"remainder": r.Remainder.String(),
			"large":     r.Large.String(),
			"quotient":  r.Quotient.String(),
			"small":     r.Small.String(),
		})
	}
	fields["reductions"] = reductions

	substitutions := make([]interface{}, 0)
	for _, s := range tr.Substitutions() {
		substitutions = append(substitutions, map[string]interface{}{
			"step":  s.Step,
			"k":     s.K,
			"p":     s.P.String(),
			"left":  s.Left.String(),
			"q":     s.Q.String(),
			"right": s.Right.String(),
		})
	}
	fields["substitutions"] = substitutions

	if tr.Err != nil {
		fields["error"] = cause(tr.Err).Error()
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "building transcript struct")
	}
	return s, nil
}

func putInt(fields map[string]interface{}, key string, v *big.Int) {
	if v != nil {
		fields[key] = v.String()
	}
}
