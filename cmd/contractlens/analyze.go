package main

import (
	"fmt"

	"github.com/ericksa/contractlens/internal/analysis"
	"github.com/ericksa/contractlens/internal/report"
	"github.com/ericksa/contractlens/internal/workers"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		format string
		name   string
		save   bool
	)
	cmd := &cobra.Command{
		Use:   "analyze <file|->",
		Short: "Analyze a contract and print the risk report",
		Long: `Analyze a plain-text contract. Use "-" to read from stdin.

Examples:
  contractlens analyze offer-letter.txt
  contractlens analyze --format markdown lease.txt > lease-review.md
  cat vendor.txt | contractlens analyze --name vendor.txt --save -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			text, fileName, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			if name != "" {
				fileName = name
			}

			w := workers.NewContractWorker(analysis.NewAnalyzer(), nil, nil, a.log)
			if save {
				if err := a.openStores(); err != nil {
					return err
				}
				w = workers.NewContractWorker(analysis.NewAnalyzer(), a.store, a.auditor, a.log)
			}
			result, err := w.Analyze(cmd.Context(), text, fileName)
			if err != nil {
				return err
			}

			body, _, err := report.Render(result, f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, string(body))
			if save {
				fmt.Fprintf(cmd.ErrOrStderr(), "saved as %s\n", result.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, markdown or html")
	cmd.Flags().StringVar(&name, "name", "", "file name recorded in the report (defaults to the input file name)")
	cmd.Flags().BoolVar(&save, "save", false, "save the analysis to history")
	return cmd
}

func newTranslateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "translate <file|->",
		Short: "Mark Hindi (Devanagari) passages for translation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), analysis.TranslateHindi(text))
			return nil
		},
	}
}
