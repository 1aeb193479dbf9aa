package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/multirange/internal/infra/configfinder"
	"github.com/aalvaropc/multirange/internal/infra/logger"
	"github.com/aalvaropc/multirange/internal/slider"
)

// resolveConfigPath returns the explicit --config path, or the nearest
// multirange config above the working directory.
func resolveConfigPath(configFlag string) (string, error) {
	in := strings.TrimSpace(configFlag)
	if in != "" {
		abs, err := filepath.Abs(in)
		if err != nil {
			return "", fmt.Errorf("invalid config path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	path, err := configfinder.NewFinder().FindConfig(wd)
	if err != nil {
		return "", fmt.Errorf("config not found from %q (tip: run `multirange init`): %w", wd, err)
	}
	return path, nil
}

// setupLogging opens the log file next to the config. Logging failures are
// not fatal: the global logger stays on a discard handler.
func setupLogging(configPath string, debug bool) func() {
	root := "."
	if configPath != "" {
		root = filepath.Dir(configPath)
	}

	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

// logChange writes one event per interval change, in transformed units.
func logChange(log *slog.Logger) slider.ChangeListener {
	return func(c slider.Change) {
		iv := c.Transformed()
		log.Info("slider.change",
			"kind", c.Kind.String(),
			"id", iv.ID,
			"start", iv.Start,
			"end", iv.End,
		)
	}
}
