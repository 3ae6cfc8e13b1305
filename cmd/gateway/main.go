package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ericksa/contractlens/internal/analysis"
	"github.com/ericksa/contractlens/internal/audit"
	"github.com/ericksa/contractlens/internal/config"
	"github.com/ericksa/contractlens/internal/documents"
	"github.com/ericksa/contractlens/internal/history"
	"github.com/ericksa/contractlens/internal/knowledge"
	"github.com/ericksa/contractlens/internal/workers"
	"github.com/ericksa/contractlens/pkg/mcp"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		logrus.Fatalf("Invalid log config: %v", err)
	}
	log := logrus.NewEntry(logger).WithField("component", "gateway")

	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("Failed to create data directories: %v", err)
	}

	store, err := history.Open(cfg.Storage.HistoryPath)
	if err != nil {
		log.Fatalf("Failed to open history: %v", err)
	}
	defer store.Close()

	auditor, err := audit.NewAuditor(cfg.Storage.AuditPath)
	if err != nil {
		log.Fatalf("Failed to open audit log: %v", err)
	}
	defer auditor.Close()

	kb, err := knowledge.Load()
	if err != nil {
		log.Fatalf("Failed to load knowledge base: %v", err)
	}

	contracts := workers.NewContractWorker(analysis.NewAnalyzer(), store, auditor, log)
	kw := workers.NewKnowledgeWorker(kb)
	tools := []workers.Worker{contracts, kw}
	source, err := documents.NewSource(cfg.Storage.DocumentsDir, documents.BucketConfig(cfg.Storage.Bucket))
	if err != nil {
		log.Fatalf("Failed to open documents store: %v", err)
	}
	if source != nil {
		tools = append(tools, workers.NewDocumentWorker(source, contracts))
	}

	g := &gateway{
		contracts: contracts,
		knowledge: kw,
		kb:        kb,
		audit:     auditor,
		mcp:       mcp.NewHandler(auditor, log.WithField("component", "mcp"), tools...),
		config:    config.NewConfigAPI(cfg),
		log:       log,
	}

	pruner, err := history.StartPruner(store, cfg.History.PruneSchedule, cfg.History.RetentionDuration(), log.WithField("component", "pruner"))
	if err != nil {
		log.Fatalf("Failed to start history pruner: %v", err)
	}

	readTimeout, writeTimeout, shutdownTimeout := cfg.Server.Durations()

	// Start server
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      g.router(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Starting contractlens gateway on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	<-pruner.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server shutdown error: %v", err)
	}
	log.Info("Server stopped")
}
