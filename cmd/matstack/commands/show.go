package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var values bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "List the matrices of a document with their shapes and sparsity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := loadMatrices(args[0])
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Name", "Rows", "Cols", "NNZ"})
			for _, nm := range ms {
				table.Append([]string{
					nm.name,
					fmt.Sprint(nm.m.Rows()),
					fmt.Sprint(nm.m.Cols()),
					fmt.Sprint(nm.m.Pattern().NNZ()),
				})
			}
			table.Render()

			if values {
				for _, nm := range ms {
					fmt.Printf("%s =\n%s", nm.name, nm.m)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&values, "values", false, "also print matrix entries")

	return cmd
}
