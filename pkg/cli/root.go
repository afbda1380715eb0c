// Copyright (c) 2025, Zilly Inc.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/zillyinc/tellus-client-version/pkg/logging"
	"github.com/zillyinc/tellus-client-version/pkg/serializer"
)

const (
	name           = "tellus"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// rootFlags are created per command tree since urfave flags carry parse state.
func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "warn",
			Usage:   "log level (debug, info, warn, error)",
			Sources: cli.EnvVars(logging.EnvLogLevel),
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"t"},
			Value:   string(serializer.FormatTable),
			Usage:   fmt.Sprintf("output format (supported values: %v)", serializer.SupportedFormats()),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file path (default: stdout)",
		},
	}
}

// Execute runs the CLI and exits non-zero on error. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Inspect and compare client platform versions",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Writer:                out,
		Description: `tellus works with the client version headers sent by Zilly apps
(X-Zilly-Ios-Version, X-Zilly-Android-Version, ...):

headers - list the header names per platform
compare - order two version strings
label   - parse or build a friendly client label
client  - evaluate a client version against a version or requirement
gates   - validate and evaluate feature gate files
serve   - run the client version HTTP API`,
		Flags: rootFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
			)
			return ctx, nil
		},
		Commands: []*cli.Command{
			headersCmd(),
			compareCmd(),
			labelCmd(),
			clientCmd(),
			gatesCmd(),
			serveCmd(),
		},
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// writeResult serializes v to --output, or to the command writer.
func writeResult(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	var w *serializer.Writer
	if path := cmd.String("output"); path != "" {
		w = serializer.NewFileWriterOrStdout(format, path)
	} else {
		w = serializer.NewWriter(format, cmd.Root().Writer)
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close output", "error", err)
		}
	}()

	return w.Serialize(ctx, v)
}

// requireArgs checks the number of positional arguments.
func requireArgs(cmd *cli.Command, n int) error {
	if cmd.NArg() != n {
		return fmt.Errorf("%s: expected %d argument(s), got %d (usage: %s %s)",
			cmd.Name, n, cmd.NArg(), cmd.Name, cmd.ArgsUsage)
	}
	return nil
}
