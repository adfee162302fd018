package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/version"
)

const shortF = "short"

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			short, err := cmd.Flags().GetBool(shortF)
			if err != nil {
				return err
			}
			if short {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), info.Short())
				return err
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Field", "Value"})
			table.AppendBulk(info.Rows())
			table.Render()
			return nil
		},
	}
	cmd.Flags().Bool(shortF, false, "Print only the short version")
	return cmd
}
