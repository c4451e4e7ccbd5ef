package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matstack/matstack/algebra"
	"github.com/matstack/matstack/numeric"
)

func prodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prod <file>",
		Short: "Multiply the document's matrices left to right and print the product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := loadMatrices(args[0])
			if err != nil {
				return err
			}

			vs := make([]*numeric.Matrix, len(ms))
			for i, nm := range ms {
				log.WithField("matrix", nm.name).Debugf("%dx%d", nm.m.Rows(), nm.m.Cols())
				vs[i] = nm.m
			}

			p, err := algebra.Prod(vs...)
			if err != nil {
				return err
			}

			fmt.Printf("%dx%d, nnz=%d\n%s", p.Rows(), p.Cols(), p.Pattern().NNZ(), p)

			return nil
		},
	}
}
