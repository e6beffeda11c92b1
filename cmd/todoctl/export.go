package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

func exportCmd(connect func() (*services, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the owner's tasks as semicolon separated CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")

			svc, err := connect()
			if err != nil {
				return err
			}
			defer svc.Close()

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return svc.transfer.ExportCSV(cmd.Context(), owner, w)
		},
	}

	cmd.Flags().StringP("out", "o", "", "Output file, stdout when empty or -")
	return cmd
}
