package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/matstack/matstack/docio"
)

func backendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List available document backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Name", "Description"})

			for _, name := range docio.Available() {
				if err := docio.LoadPlugin(name); err != nil {
					return err
				}
				doc, err := docio.Doc(name)
				if err != nil {
					return err
				}
				table.Append([]string{name, doc})
			}

			table.Render()

			return nil
		},
	}
}
