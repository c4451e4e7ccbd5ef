package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matstack/matstack/sparsity"
)

func spyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spy <file> <matrix> <out-image>",
		Short: "Render a matrix's sparsity pattern as a spy image",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := loadMatrices(args[0])
			if err != nil {
				return err
			}

			for _, nm := range ms {
				if nm.name != args[1] {
					continue
				}
				if err = sparsity.Spy(nm.m.Pattern(), args[2]); err != nil {
					return err
				}
				log.WithField("out", args[2]).Debug("spy image written")

				return nil
			}

			return fmt.Errorf("%s: no matrix named %q", args[0], args[1])
		},
	}
}
