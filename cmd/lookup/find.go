package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unclebandit/customer-lookup/internal/lookup"
	"github.com/unclebandit/customer-lookup/internal/page"
)

func newFindCmd(opts *rootOptions, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "find <customer-id>",
		Short: "Look up one customer and print name, city and email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var res lookup.Result
			term, widget, err := mount(cmd, opts, log, func(_ *page.Terminal, r lookup.Result) { res = r })
			if err != nil {
				return err
			}

			term.SetInput(lookup.InputCustomerID, args[0])
			widget.Submit(cmd.Context())
			widget.Wait()

			if !res.OK() {
				return fmt.Errorf("lookup %s failed (%s): %w", res.ID, res.Reason, res.Err)
			}
			return term.Flush()
		},
	}
}
