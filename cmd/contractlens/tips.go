package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ericksa/contractlens/internal/analysis"
	"github.com/ericksa/contractlens/internal/knowledge"
	"github.com/ericksa/contractlens/internal/workers"
	"github.com/spf13/cobra"
)

type tipsJSONOutput struct {
	ContractType analysis.ContractType `json:"contract_type"`
	Issues       []knowledge.Issue     `json:"issues"`
	Tips         []knowledge.TipSet    `json:"negotiation_tips,omitempty"`
	Statutes     []knowledge.Statute   `json:"statutes,omitempty"`
}

func newTipsCmd(a *app) *cobra.Command {
	var (
		clause   string
		statutes bool
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "tips <contract-type>",
		Short: "Show common issues and negotiation tips for a contract type",
		Long: `Show the common issues Indian SMEs run into for a contract type.

Contract types: employment, vendor, lease, partnership, service, nda.

Examples:
  contractlens tips employment
  contractlens tips service --clause liability
  contractlens tips lease --statutes --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := workers.ParseContractType(args[0])
			if err != nil {
				return err
			}
			kb, err := knowledge.Load()
			if err != nil {
				return err
			}

			out := tipsJSONOutput{ContractType: t, Issues: workers.NewKnowledgeWorker(kb).Issues(t)}
			if clause != "" {
				out.Tips = kb.TipsFor(analysis.ClauseType(strings.ToLower(clause)))
			}
			if statutes {
				out.Statutes = kb.Statutes()
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			fmt.Fprintf(w, "%s\n", t.DisplayName())
			if len(out.Issues) == 0 {
				fmt.Fprintln(w, "\nNo common issues recorded.")
			}
			for _, is := range out.Issues {
				fmt.Fprintf(w, "\n* %s\n  %s\n  Recommendation: %s\n", is.Title, is.Description, is.Recommendation)
			}
			for _, ts := range out.Tips {
				fmt.Fprintf(w, "\n%s:\n", ts.Scenario)
				for _, tip := range ts.Tips {
					fmt.Fprintf(w, "  - %s\n", tip)
				}
			}
			for _, st := range out.Statutes {
				fmt.Fprintf(w, "\n%s\n", st.Title)
				for _, p := range st.Provisions {
					fmt.Fprintf(w, "  - %s\n", p)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&clause, "clause", "", "also show negotiation tips for a clause type (e.g. liability, termination)")
	cmd.Flags().BoolVar(&statutes, "statutes", false, "also list relevant Indian statutes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}
