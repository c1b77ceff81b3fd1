package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/zephyrtronium/notation"
)

var failure = color.New(color.FgRed)

// row is one line of output.
type row struct {
	input   string
	postfix string
	prefix  string
	result  string
	err     error
}

func evalRows[T any](alg *notation.Algebra[T], show func(T) string, ins []input) []row {
	rows := make([]row, 0, len(ins))
	for _, in := range ins {
		rw := row{input: in.src}
		e, err := alg.Parse(in.src, in.f)
		if err != nil {
			rw.err = err
			rows = append(rows, rw)
			continue
		}
		rw.postfix = e.Postfix()
		rw.prefix, rw.err = e.Text(notation.Prefix)
		if rw.err == nil {
			var r T
			r, rw.err = e.Evaluate()
			if rw.err == nil {
				rw.result = show(r)
			}
		}
		rows = append(rows, rw)
	}
	return rows
}

// writeRows prints rows as columns. The result column is last, so colored
// errors do not disturb alignment.
func writeRows(w io.Writer, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', tabwriter.Debug)
	fmt.Fprintln(tw, "Original\t Postfix\t Prefix\t Output")
	for _, r := range rows {
		res := r.result
		if r.err != nil {
			res = failure.Sprint("error: ", r.err)
		}
		fmt.Fprintf(tw, "%s\t %s\t %s\t %s\n", r.input, r.postfix, r.prefix, res)
	}
	return tw.Flush()
}
