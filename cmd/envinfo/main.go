// Command envinfo parses UST envelope strings and prints their timing,
// validity, and canonical form.
//
// Usage:
//
//	envinfo [flags] envelope ...
//
// Without arguments it prints the default envelope.
//
// Examples:
//
//	envinfo "0,5,35,0,100,100,0,%,10"
//	envinfo -length 480 "0,5,35,0,100,100,0,%" "0,100,400,0,100,100,0,%"
//	envinfo -zero -normalize "0,5,35,0,80,80,0,%,0,10"
//	envinfo -params "1,2,3,4,5,6,7,%,8"
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ust/envelope"
)

type options struct {
	length    float64
	zero      bool
	removeP5  bool
	normalize bool
	params    bool
}

type row struct {
	input  string
	env    envelope.Envelope
	scale  float64
	valid  bool
	normOK bool
}

func main() {
	var opts options
	flag.Float64Var(&opts.length, "length", 0, "note length in ms to check validity against (0 disables)")
	flag.BoolVar(&opts.zero, "zero", false, "collapse timings between equal volumes")
	flag.BoolVar(&opts.removeP5, "remove-p5", false, "drop p5 and v5")
	flag.BoolVar(&opts.normalize, "normalize", false, "scale volumes so the highest is 100")
	flag.BoolVar(&opts.params, "params", false, "print all ten parameters")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: envinfo [flags] envelope ...\n\n")
		fmt.Fprintf(os.Stderr, "Parses UST envelope strings and prints their timing and canonical form.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints the default envelope.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  envinfo \"0,5,35,0,100,100,0,%%,10\"\n")
		fmt.Fprintf(os.Stderr, "  envinfo -length 480 \"0,5,35,0,100,100,0,%%\"\n")
		fmt.Fprintf(os.Stderr, "  envinfo -zero -normalize \"0,5,35,0,80,80,0,%%,0,10\"\n")
	}
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{envelope.Default}
	}

	rows, failed := analyze(inputs, opts, os.Stderr)
	if err := printRows(os.Stdout, rows, opts); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}
}

// analyze parses and transforms each input. Inputs that fail to parse are
// reported on errw and skipped.
func analyze(inputs []string, opts options, errw io.Writer) ([]row, bool) {
	var (
		rows   []row
		failed bool
	)
	for _, in := range inputs {
		env, err := envelope.Parse(in)
		if err != nil {
			_, _ = fmt.Fprintf(errw, "error: %q: %v\n", in, err)
			failed = true
			continue
		}

		r := row{input: in}
		if opts.removeP5 {
			env.RemoveP5()
		}
		if opts.zero {
			env.ZeroPValues()
		}
		if opts.normalize {
			scale, err := env.Normalize()
			if err != nil {
				_, _ = fmt.Fprintf(errw, "warning: %q: %v\n", in, err)
			} else {
				r.scale, r.normOK = scale, true
			}
		}
		r.env = env
		r.valid = env.IsValidWith(opts.length)
		rows = append(rows, r)
	}
	return rows, failed
}

func printRows(w io.Writer, rows []row, opts options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"Envelope", "Length [ms]"}
	if opts.length > 0 {
		header = append(header, "Valid")
	}
	if opts.normalize {
		header = append(header, "Scale")
	}
	header = append(header, "Result")
	if opts.params {
		header = append(header, "p1", "p2", "p3", "v1", "v2", "v3", "v4", "p4", "p5", "v5")
	}

	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}
	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat("-", len(h))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(rule, "\t")); err != nil {
		return err
	}

	for _, r := range rows {
		cols := []string{r.input, formatParam(r.env.Length())}
		if opts.length > 0 {
			cols = append(cols, strconv.FormatBool(r.valid))
		}
		if opts.normalize {
			if r.normOK {
				cols = append(cols, strconv.FormatFloat(r.scale, 'f', 4, 64))
			} else {
				cols = append(cols, "-")
			}
		}
		cols = append(cols, r.env.String())
		if opts.params {
			for _, p := range r.env.Params() {
				cols = append(cols, formatParam(p))
			}
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cols, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func formatParam(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
