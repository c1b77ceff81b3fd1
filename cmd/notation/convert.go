package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zephyrtronium/notation"
)

func newConvertCmd(o *options) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert [expressions...]",
		Short: "Write expressions in another notation",
		RunE: func(cmd *cobra.Command, args []string) error {
			dst, err := notation.ParseFormat(to)
			if err != nil {
				return err
			}
			conv, err := o.converter()
			if err != nil {
				return err
			}
			ins, err := o.inputs(cmd, args)
			if err != nil {
				return err
			}
			failed := 0
			for _, in := range ins {
				s, err := conv(in.src, in.f, dst)
				if err != nil {
					failed++
					o.logger.Warn("conversion failed", zap.String("input", in.src), zap.Stringer("from", in.f), zap.Error(err))
					fmt.Fprintf(cmd.OutOrStdout(), "%s\n", failure.Sprint(err))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(ins))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "postfix", "notation of the output: infix, prefix, or postfix")
	return cmd
}
