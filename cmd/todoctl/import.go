package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func importCmd(connect func() (*services, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import tasks from a CSV file, or stdin when the file is -",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			svc, err := connect()
			if err != nil {
				return err
			}
			defer svc.Close()

			imported, err := svc.transfer.ImportCSV(cmd.Context(), owner, r)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d tasks\n", imported)
			return nil
		},
	}
}
