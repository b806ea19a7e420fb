package config

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-explorer/pkg/session"
	"github.com/mattsolo1/grove-explorer/pkg/snapshot"
)

// Explorer bundles the state shared by every command.
type Explorer struct {
	Config  *Config
	Logger  *logrus.Logger
	Session *session.Session
}

// InitExplorer loads the config, then opens a session over the snapshot.
func InitExplorer() (*Explorer, error) {
	cfg, err := InitConfig()
	if err != nil {
		return nil, err
	}
	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	t, err := snapshot.ReadFile(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load tree: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"file":  cfg.SeedFile,
		"nodes": t.Len(),
	}).Debug("snapshot loaded")

	s := session.New(t, logger)
	if cfg.ExpandAll {
		s.ExpandAll()
	}
	return &Explorer{Config: cfg, Logger: logger, Session: s}, nil
}

// Save writes the current tree to --out, or back to the snapshot it was read
// from, and returns the path written.
func (e *Explorer) Save() (string, error) {
	path := OutFile
	if path == "" {
		path = e.Config.SeedFile
	}
	if err := snapshot.WriteFile(path, e.Session.Current().Tree); err != nil {
		return "", err
	}
	e.Logger.WithField("file", path).Debug("snapshot saved")
	return path, nil
}
