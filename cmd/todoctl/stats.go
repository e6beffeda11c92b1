package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statsCmd(connect func() (*services, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print task counts per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}

			svc, err := connect()
			if err != nil {
				return err
			}
			defer svc.Close()

			stats, err := svc.tasks.Stats(cmd.Context(), owner)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total:       %d\n", stats.Total)
			fmt.Fprintf(out, "todo:        %d\n", stats.Todo)
			fmt.Fprintf(out, "in progress: %d\n", stats.InProgress)
			fmt.Fprintf(out, "done:        %d\n", stats.Done)
			return nil
		},
	}
}
