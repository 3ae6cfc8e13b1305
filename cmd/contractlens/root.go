package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ericksa/contractlens/internal/audit"
	"github.com/ericksa/contractlens/internal/config"
	"github.com/ericksa/contractlens/internal/history"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
)

// app holds what the subcommands share. Stores are opened lazily so that
// commands which never touch history run without a data directory.
type app struct {
	historyPath string
	auditPath   string
	verbose     bool

	cfg     *config.Config
	log     *logrus.Entry
	store   *history.Store
	auditor *audit.Auditor
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:     "contractlens",
		Version: fmt.Sprintf("%s (%s)", Version, Commit),
		Short:   "Risk analysis for English and Hindi contracts",
		Long: `contractlens reviews employment, vendor, lease, partnership, service and
non-disclosure agreements for Indian small businesses. It splits a contract
into clauses, scores each clause for risk, extracts parties, dates and amounts,
and flags compliance gaps and vague wording.

This is not legal advice.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	root.PersistentFlags().StringVar(&a.historyPath, "history-db", "", "history database path (overrides storage.history_path)")
	root.PersistentFlags().StringVar(&a.auditPath, "audit-db", "", "audit database path (overrides storage.audit_path)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at the configured level instead of warnings only")

	root.AddCommand(
		newAnalyzeCmd(a),
		newTranslateCmd(a),
		newTipsCmd(a),
		newHistoryCmd(a),
		newMCPCmd(a),
	)
	return root
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.historyPath != "" {
		cfg.Storage.HistoryPath = a.historyPath
	}
	if a.auditPath != "" {
		cfg.Storage.AuditPath = a.auditPath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	logger.SetOutput(stderr)
	if !a.verbose {
		logger.SetLevel(logrus.WarnLevel)
	}
	a.cfg = cfg
	a.log = logrus.NewEntry(logger).WithField("component", "cli")
	return nil
}

// openStores opens the history and audit databases on first use.
func (a *app) openStores() error {
	if a.store != nil {
		return nil
	}
	if err := a.cfg.EnsureDirs(); err != nil {
		return fmt.Errorf("failed to create data directories: %w", err)
	}
	store, err := history.Open(a.cfg.Storage.HistoryPath)
	if err != nil {
		return err
	}
	auditor, err := audit.NewAuditor(a.cfg.Storage.AuditPath)
	if err != nil {
		store.Close()
		return err
	}
	a.store, a.auditor = store, auditor
	return nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	if aerr := a.auditor.Close(); err == nil {
		err = aerr
	}
	a.store, a.auditor = nil, nil
	return err
}

// readInput reads a file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) (string, string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "stdin.txt", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), filepath.Base(path), nil
}
