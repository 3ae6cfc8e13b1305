package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/ericksa/contractlens/internal/report"
	"github.com/ericksa/contractlens/internal/workers"
	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List and show saved analyses",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List saved analyses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openStores(); err != nil {
				return err
			}
			if limit == 0 {
				limit = a.cfg.History.ListLimit
			}
			rows, err := a.store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved analyses.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tFILE\tTYPE\tRISK\tCLAUSES\tUPLOADED")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d %s\t%d\t%s\n",
					r.ID, r.FileName, r.ContractType, r.OverallRiskScore, r.OverallRiskLevel,
					r.ClauseCount, r.UploadedAt.Local().Format(time.DateTime))
			}
			return tw.Flush()
		},
	}
	list.Flags().IntVarP(&limit, "limit", "n", 0, "maximum rows (defaults to history.list_limit)")

	var format string
	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Render a saved analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			if err := a.openStores(); err != nil {
				return err
			}
			w := workers.NewContractWorker(nil, a.store, a.auditor, a.log)
			body, _, err := w.Report(cmd.Context(), args[0], f)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(body))
			return nil
		},
	}
	show.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, markdown or html")

	cmd.AddCommand(list, show)
	return cmd
}
