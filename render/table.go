// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// tableRenderer prints the reduction and back-substitution steps as two
// tables followed by the result.
type tableRenderer struct{}

func (*tableRenderer) Render(w io.Writer, tr *Transcript) error {
	p := &printer{w: w}
	p.printf("number:  %s\nmodulus: %s\n", tr.Number, tr.Modulus)
	if save := tr.Save; save != nil && save.Normalized != nil {
		p.printf("normalized: %s\n", save.Normalized)
	}
	if p.err != nil {
		return p.err
	}

	if reductions := tr.Reductions(); len(reductions) > 0 {
		p.printf("\nEuclid's algorithm (remainder = large - quotient * small)\n")
		rows := make([][]string, len(reductions))
		for i, r := range reductions {
			rows[i] = []string{strconv.Itoa(r.Step), r.Remainder.String(), r.Large.String(), r.Quotient.String(), r.Small.String()}
		}
		writeTable(w, []string{"step", "remainder", "large", "quotient", "small"}, rows)
	}
	if subs := tr.Substitutions(); len(subs) > 0 {
		p.printf("\nback-substitution (gcd = p * r[k] + q * r[k+1])\n")
		rows := make([][]string, len(subs))
		for i, s := range subs {
			rows[i] = []string{strconv.Itoa(s.Step), strconv.Itoa(s.K), s.P.String(), s.Left.String(), s.Q.String(), s.Right.String()}
		}
		writeTable(w, []string{"step", "k", "p", "r[k]", "q", "r[k+1]"}, rows)
	}

	p.printf("\n")
	if save := tr.Save; save != nil && save.GCD != nil {
		p.printf("gcd: %s\n", save.GCD)
	}
	if save := tr.Save; save.Found() {
		p.printf("inverse: %s\n", save.Inverse)
	} else {
		p.printf("%s: %s\n", tr.Outcome(), cause(tr.Err))
	}
	return p.err
}

func writeTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}
