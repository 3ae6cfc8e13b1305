package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

var reportFormats = map[string]bool{"markdown": true, "md": true, "html": true, "json": true, "text": true}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	// Validate server configuration
	if c.Server.Addr == "" {
		return errors.New("server address cannot be empty")
	}

	// Validate address format and port
	if _, err := net.ResolveTCPAddr("tcp", c.Server.Addr); err != nil {
		return fmt.Errorf("invalid server address: %v", err)
	}

	for name, value := range map[string]string{
		"server read_timeout":     c.Server.ReadTimeout,
		"server write_timeout":    c.Server.WriteTimeout,
		"server shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if err := positiveDuration(name, value); err != nil {
			return err
		}
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New("server max_body_bytes must be positive")
	}

	// Validate auth configuration
	if c.Auth.Enabled && c.Auth.Token == "" {
		return errors.New("auth token cannot be empty when auth is enabled")
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %v", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	if c.Storage.HistoryPath == "" {
		return errors.New("storage history_path cannot be empty")
	}
	if c.Storage.AuditPath == "" {
		return errors.New("storage audit_path cannot be empty")
	}
	if c.Storage.Bucket.Endpoint != "" && c.Storage.Bucket.Bucket == "" {
		return errors.New("storage bucket name is required when an endpoint is set")
	}

	// Validate history retention
	if err := positiveDuration("history retention", c.History.Retention); err != nil {
		return err
	}
	if _, err := cron.ParseStandard(c.History.PruneSchedule); err != nil {
		return fmt.Errorf("invalid history prune_schedule: %v", err)
	}
	if c.History.ListLimit <= 0 {
		return errors.New("history list_limit must be positive")
	}

	if !reportFormats[c.Report.DefaultFormat] {
		return fmt.Errorf("invalid report default_format: %s", c.Report.DefaultFormat)
	}

	return nil
}

func positiveDuration(name, value string) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %v", name, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}
