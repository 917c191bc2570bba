package main

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unclebandit/customer-lookup/internal/lookup"
	"github.com/unclebandit/customer-lookup/internal/page"
)

func newInteractiveCmd(opts *rootOptions, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Read customer ids from stdin, one per line, and show each result",
		Long: "Each line is submitted as soon as it is read, without waiting for earlier\n" +
			"lookups. Responses may arrive out of order; the display shows the last one to arrive.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			term, widget, err := mount(cmd, opts, log, func(t *page.Terminal, r lookup.Result) {
				if !r.OK() {
					t.Printf("lookup %s failed (%s): %v", r.ID, r.Reason, r.Err)
					return
				}
				t.Flush()
			})
			if err != nil {
				return err
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimRight(scanner.Text(), "\r")
				if line == "" {
					continue
				}
				term.SetInput(lookup.InputCustomerID, line)
				widget.Submit(cmd.Context())
			}
			widget.Wait()
			return scanner.Err()
		},
	}
}
