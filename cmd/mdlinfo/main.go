/*
 * main.go, part of gomdl.
 *
 * Copyright 2026 The goChem authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Command mdlinfo reads molfiles and SD files and prints what it found in them.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	mdl "github.com/rmera/gomdl"
	"github.com/rmera/gomdl/internal/config"
	"github.com/rmera/gomdl/internal/logging"
	"github.com/rmera/gomdl/sdf"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// isSDF decides from the name (ignoring a compression extension) whether
// a file holds several records.
func isSDF(name string) bool {
	name = strings.ToLower(name)
	for _, ext := range []string{".gz", ".zst", ".zstd"} {
		name = strings.TrimSuffix(name, ext)
	}
	return filepath.Ext(name) == ".sdf" || filepath.Ext(name) == ".sd"
}

func loadFile(ctx context.Context, name string, forceSDF bool, workers int) ([]*mdl.Molecule, error) {
	if !forceSDF && !isSDF(name) {
		mol, err := mdl.Load(name)
		if err != nil {
			return nil, err
		}
		return []*mdl.Molecule{mol}, nil
	}
	r, err := mdl.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return sdf.ReadAll(ctx, r, workers)
}

func configure(cmd *cli.Command) (*config.Config, error) {
	cfg := config.Default()
	if err := config.Load(cmd.String("config"), cfg); err != nil {
		return nil, err
	}
	if cmd.IsSet("format") {
		cfg.Output.Format = cmd.String("format")
	}
	if cmd.IsSet("workers") {
		cfg.Workers = int(cmd.Int("workers"))
	}
	if cmd.IsSet("plot") {
		cfg.PlotDir = cmd.String("plot")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("no input files given")
	}
	cfg, err := configure(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	failed := 0
	for _, name := range files {
		mols, err := loadFile(ctx, name, cmd.Bool("sdf"), cfg.Workers)
		if err != nil {
			logger.Error("unable to read molecules", zap.String("file", name), zap.Error(err))
			failed++
			continue
		}
		logger.Info("read molecules", zap.String("file", name), zap.Int("molecules", len(mols)))
		if err := printMolecules(os.Stdout, cfg.Output.Format, name, mols); err != nil {
			return err
		}
		if cfg.PlotDir != "" {
			if err := plotMolecules(cfg.PlotDir, name, mols); err != nil {
				logger.Warn("unable to plot", zap.String("file", name), zap.Error(err))
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(files))
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:      "mdlinfo",
		Usage:     "Read MDL molfiles and SD files and summarize their contents",
		ArgsUsage: "FILE...",
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   "mdlinfo.yaml",
				Sources: cli.EnvVars("MDLINFO_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: text, json or yaml",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:  "sdf",
				Usage: "Read every input as a multi-record SD file",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of records parsed at the same time in SD files",
			},
			&cli.StringFlag{
				Name:  "plot",
				Usage: "Write a composition plot for each molecule to this directory",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "mdlinfo:", err)
		os.Exit(1)
	}
}
