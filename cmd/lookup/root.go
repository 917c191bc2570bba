package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unclebandit/customer-lookup/internal/client"
	"github.com/unclebandit/customer-lookup/internal/config"
	"github.com/unclebandit/customer-lookup/internal/lookup"
	"github.com/unclebandit/customer-lookup/internal/page"
)

type rootOptions struct {
	baseURL string
	timeout time.Duration
}

func newRootCmd(cfg *config.Config, log *zap.Logger) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "lookup",
		Short:        "Look up customers by id",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", cfg.Lookup.BaseURL, "customer API base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", cfg.Lookup.Timeout, "per-request timeout (0 disables)")

	cmd.AddCommand(
		newFindCmd(opts, log),
		newInteractiveCmd(opts, log),
		newEnqueueCmd(cfg, log),
	)
	return cmd
}

// mount builds a terminal page and a widget on top of it.
func mount(cmd *cobra.Command, opts *rootOptions, log *zap.Logger, onResult func(*page.Terminal, lookup.Result)) (*page.Terminal, *lookup.Widget, error) {
	term := page.NewTerminal(cmd.OutOrStdout(),
		lookup.InputCustomerID, lookup.OutputName, lookup.OutputCity, lookup.OutputEmail)
	api := client.New(opts.baseURL, client.WithTimeout(opts.timeout), client.WithLogger(log))

	widget, err := lookup.New(term, api,
		lookup.WithLogger(log),
		lookup.OnResult(func(r lookup.Result) { onResult(term, r) }),
	)
	if err != nil {
		return nil, nil, err
	}
	return term, widget, nil
}
