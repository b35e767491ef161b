package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

type publishRequest struct {
	Event string `json:"event"`
	Model string `json:"model,omitempty"`
}

type publishResponse struct {
	Success         bool   `json:"success"`
	ClientsNotified int    `json:"clientsNotified"`
	Error           string `json:"error"`
}

func publishCmd(opts *options) *cobra.Command {
	var req publishRequest

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Send a change notification to the relay",
		Example: `  timesheetctl publish --event entry.update --model timesheet
  timesheetctl publish --event entry.delete -s https://relay.internal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := json.Marshal(req)
			if err != nil {
				return err
			}

			httpReq, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, opts.endpoint(), bytes.NewReader(body))
			if err != nil {
				return err
			}
			httpReq.Header.Set("Content-Type", "application/json")

			resp, err := opts.client().Do(httpReq)
			if err != nil {
				return fmt.Errorf("publish: %w", err)
			}
			defer resp.Body.Close()

			var out publishResponse
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				return fmt.Errorf("publish: %s: decode response: %w", resp.Status, err)
			}
			if resp.StatusCode != http.StatusOK || !out.Success {
				return fmt.Errorf("publish: %s: %s", resp.Status, out.Error)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s relayed to %d subscriber(s)\n", req.Event, out.ClientsNotified)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Event, "event", "e", "", "Event name, e.g. entry.update (required)")
	cmd.Flags().StringVarP(&req.Model, "model", "m", "", "Model the event refers to")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}
