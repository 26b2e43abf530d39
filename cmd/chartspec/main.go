// Package main provides the CLI entrypoint for chartspec.
//
// chartspec compiles YAML chart documents into Vega specifications:
//
//	chartspec [-indent n] [-inline-data] [-locale code] [-log-level level] [-o dir] chart.yaml...
//
// Each document is printed to stdout, or written to dir/<name>.json with -o.
// Diagnostics are logged as warnings.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"chartspec/internal/compile"
	"chartspec/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "chartspec:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	if len(cfg.Files) == 0 {
		return errors.New("usage: chartspec [flags] chart.yaml...")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	compiler, err := compile.New(cfg.CompileConfig(logger.With(slog.String("module", "compile"))))
	if err != nil {
		return err
	}

	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for _, path := range cfg.Files {
		if err := compileFile(compiler, logger, path, cfg.OutDir); err != nil {
			return err
		}
	}

	return nil
}

func compileFile(compiler *compile.Compiler, logger *slog.Logger, path, outDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read chart file %s: %w", path, err)
	}

	doc, err := compiler.CompileDocument(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if !doc.Diagnostics.IsEmpty() {
		logger.Debug("diagnostics", slog.String("file", path), slog.Any("codes", doc.Diagnostics.Codes()))

		for _, d := range doc.Diagnostics.All() {
			logger.Warn(d.String(), slog.String("file", path), slog.String("severity", d.Severity.String()))
		}
	}

	if outDir == "" {
		logger.Info("compiled chart", slog.String("file", path), slog.Int("bytes", len(doc.JSON)))

		_, err = fmt.Fprintln(os.Stdout, string(doc.JSON))

		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".json"
	out := filepath.Join(outDir, name)

	if err := os.WriteFile(out, append(doc.JSON, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	logger.Info("compiled chart", slog.String("file", path), slog.String("output", out), slog.Int("bytes", len(doc.JSON)))

	return nil
}
