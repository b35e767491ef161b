package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/timesheet-relay/internal/service/reconciler"
)

func statusOfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status-of <hours>",
		Short: "Show the work status a weekly total maps to",
		Long: `Print the status a timesheet gets for the given total. The value differs
between task writes and task deletion for a total of zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := strconv.ParseFloat(args[0], 64)
			if err != nil || total < 0 {
				return fmt.Errorf("status-of: %q is not a non-negative number", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total:         %g\n", total)
			fmt.Fprintf(out, "create/update: %s\n", reconciler.DeriveStatus(total))
			fmt.Fprintf(out, "delete:        %s\n", reconciler.StatusAfterDelete(total))
			return nil
		},
	}
}
