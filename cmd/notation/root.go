package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/notation"
)

// options holds flags shared by all subcommands.
type options struct {
	inname  string
	from    string
	algebra string
	prec    uint
	verb    string
	verbose bool

	logger *zap.Logger
}

// newRootCmd creates the command tree. If logger is nil, the logger is built
// from the --verbose flag.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	o := &options{logger: logger}
	root := &cobra.Command{
		Use:           "notation [expressions...]",
		Short:         "notation - evaluate expressions written in infix, prefix, or postfix notation",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.logger != nil {
				return nil
			}
			var err error
			if o.verbose {
				o.logger, err = zap.NewDevelopment()
			} else {
				o.logger, err = zap.NewProduction()
			}
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ins, err := o.inputs(cmd, args)
			if err != nil {
				return err
			}
			eval, err := o.evaluator()
			if err != nil {
				return err
			}
			rows := eval(ins)
			failed := 0
			for _, r := range rows {
				if r.err != nil {
					failed++
					o.logger.Debug("expression failed", zap.String("input", r.input), zap.Error(r.err))
					continue
				}
				o.logger.Debug("expression evaluated",
					zap.String("input", r.input),
					zap.String("postfix", r.postfix),
					zap.String("result", r.result),
				)
			}
			if err := writeRows(cmd.OutOrStdout(), rows); err != nil {
				o.logger.Error("writing results", zap.Error(err))
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(rows))
			}
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&o.inname, "in", "", "input file, one expression per line or a .yaml batch (default stdin if no args given)")
	pf.StringVar(&o.from, "from", "infix", "notation of the input: infix, prefix, or postfix")
	pf.StringVar(&o.algebra, "algebra", "bool", "algebra of the expressions: bool or arith")
	pf.UintVarP(&o.prec, "prec", "p", 64, "precision of arith calculations in bits")
	pf.BoolVar(&o.verbose, "verbose", false, "log each expression")
	root.Flags().StringVar(&o.verb, "fmt", "%g", "arith result formatting string")

	root.AddCommand(newConvertCmd(o))
	return root
}

// inputs gathers expressions from the input file and arguments.
func (o *options) inputs(cmd *cobra.Command, args []string) ([]input, error) {
	f, err := notation.ParseFormat(o.from)
	if err != nil {
		return nil, err
	}
	ins, err := readInputs(cmd.InOrStdin(), o.inname, len(args) == 0, f)
	if err != nil {
		o.logger.Error("reading input", zap.String("in", o.inname), zap.Error(err))
		return nil, err
	}
	for _, arg := range args {
		ins = append(ins, input{src: arg, f: f})
	}
	return ins, nil
}

// evaluator selects the algebra named by the --algebra flag.
func (o *options) evaluator() (func([]input) []row, error) {
	switch o.algebra {
	case "bool":
		return func(ins []input) []row {
			return evalRows(notation.Boolean, showBool, ins)
		}, nil
	case "arith":
		alg := notation.Arithmetic(o.prec)
		show := func(r *big.Float) string { return fmt.Sprintf(o.verb, r) }
		return func(ins []input) []row {
			return evalRows(alg, show, ins)
		}, nil
	default:
		return nil, fmt.Errorf("unknown algebra %q (want bool or arith)", o.algebra)
	}
}

// converter selects the conversion for the algebra named by the --algebra
// flag.
func (o *options) converter() (func(src string, from, to notation.Format) (string, error), error) {
	switch o.algebra {
	case "bool":
		return notation.Boolean.Convert, nil
	case "arith":
		return notation.Arithmetic(o.prec).Convert, nil
	default:
		return nil, fmt.Errorf("unknown algebra %q (want bool or arith)", o.algebra)
	}
}

func showBool(r bool) string {
	if r {
		return "1"
	}
	return "0"
}
