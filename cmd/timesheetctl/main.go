// Command timesheetctl is an operator tool for the timesheet relay: it can
// emit change notifications, watch the live update stream and show how a
// weekly total maps to a work status.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

const (
	defaultServer = "http://localhost:8080"
	webhookPath   = "/api/webhooks/timesheet"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options are the flags shared by every subcommand.
type options struct {
	server  string
	timeout time.Duration
}

func (o *options) endpoint() string {
	return strings.TrimRight(o.server, "/") + webhookPath
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "timesheetctl",
		Short:         "Operate the timesheet relay",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.server, "server", "s", envOr("TIMESHEET_RELAY_URL", defaultServer), "Relay base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout for non-streaming calls")

	cmd.AddCommand(publishCmd(opts))
	cmd.AddCommand(watchCmd(opts))
	cmd.AddCommand(statusOfCmd())

	return cmd
}

func (o *options) client() *http.Client {
	return &http.Client{Timeout: o.timeout}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
