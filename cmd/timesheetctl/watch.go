package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/timesheet-relay/internal/relay"
)

func watchCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print live updates as they arrive",
		Long: `Subscribe to the relay's live update stream and print the JSON payload of
every frame. Keep-alive pings are skipped. Stops on interrupt, when the
server closes the stream, or after --count frames.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.endpoint(), nil)
			if err != nil {
				return err
			}
			req.Header.Set("Accept", "text/event-stream")

			// No client timeout: the stream is open-ended.
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("watch: %s", resp.Status)
			}

			out := cmd.OutOrStdout()
			rd := relay.NewReader(resp.Body)
			for n := 0; limit <= 0 || n < limit; n++ {
				data, err := rd.Next()
				if err != nil {
					if errors.Is(err, io.EOF) || ctx.Err() != nil {
						return nil
					}
					return fmt.Errorf("watch: %w", err)
				}
				fmt.Fprintln(out, string(data))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "count", "n", 0, "Stop after this many frames (0 = unlimited)")

	return cmd
}
