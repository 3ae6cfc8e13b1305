package main

import (
	"github.com/ericksa/contractlens/internal/analysis"
	"github.com/ericksa/contractlens/internal/documents"
	"github.com/ericksa/contractlens/internal/knowledge"
	"github.com/ericksa/contractlens/internal/workers"
	"github.com/ericksa/contractlens/pkg/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the contract, knowledge and documents tools over MCP on stdio",
		Long: `Serve every contractlens tool to an MCP client over stdin/stdout.
Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openStores(); err != nil {
				return err
			}
			kb, err := knowledge.Load()
			if err != nil {
				return err
			}
			contracts := workers.NewContractWorker(analysis.NewAnalyzer(), a.store, a.auditor, a.log)
			tools := []workers.Worker{contracts, workers.NewKnowledgeWorker(kb)}
			source, err := documents.NewSource(a.cfg.Storage.DocumentsDir, documents.BucketConfig(a.cfg.Storage.Bucket))
			if err != nil {
				return err
			}
			if source != nil {
				tools = append(tools, workers.NewDocumentWorker(source, contracts))
			}
			h := mcp.NewHandler(a.auditor, a.log.WithField("component", "mcp"), tools...)
			a.log.Info("serving MCP on stdio")
			return h.RunStdio(cmd.Context())
		},
	}
}
