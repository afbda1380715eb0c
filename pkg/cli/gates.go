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

	"github.com/urfave/cli/v3"

	"github.com/zillyinc/tellus-client-version/pkg/clientversion"
	"github.com/zillyinc/tellus-client-version/pkg/gate"
)

func gatesCmd() *cli.Command {
	return &cli.Command{
		Name:  "gates",
		Usage: "Validate and evaluate feature gate files",
		Commands: []*cli.Command{
			gatesValidateCmd(),
			gatesEvalCmd(),
		},
	}
}

func gatesValidateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check a gates file and list its features",
		ArgsUsage: "FILE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := requireArgs(cmd, 1); err != nil {
				return err
			}
			path := cmd.Args().First()

			set, err := gate.Load(path)
			if err != nil {
				return err
			}

			names := make([]string, 0, set.Len())
			for _, f := range set.Features {
				names = append(names, f.Name)
			}
			return writeResult(ctx, cmd, gateSummary{File: path, Valid: true, Features: names})
		},
	}
}

func gatesEvalCmd() *cli.Command {
	return &cli.Command{
		Name:  "eval",
		Usage: "Evaluate every feature in a gates file for one client",
		Description: `The client is given either as a friendly label:

  tellus gates eval --file gates.yaml --label "Zilly Ios 2.1.0"

or with --platform and --version. With neither, the blank client is evaluated
and every feature falls back to its default.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "gates file", Required: true},
			&cli.StringFlag{Name: "label", Aliases: []string{"l"}, Usage: `client label, e.g. "Zilly Android 3.1.4"`},
			appFlag(),
			&cli.StringFlag{Name: "platform", Aliases: []string{"p"}, Usage: "client platform"},
			&cli.StringFlag{Name: "version", Aliases: []string{"V"}, Usage: "client version"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			set, err := gate.Load(cmd.String("file"))
			if err != nil {
				return err
			}

			rec, err := evalClient(cmd)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, decisionRows(set.Evaluate(rec)))
		},
	}
}

// evalClient resolves the client from --label or --platform/--version.
func evalClient(cmd *cli.Command) (clientversion.Record, error) {
	if label := cmd.String("label"); label != "" {
		if cmd.IsSet("platform") || cmd.IsSet("version") {
			return clientversion.Blank(), fmt.Errorf("--label cannot be combined with --platform or --version")
		}
		rec := clientversion.ParseFriendlyLabel(label)
		if rec.IsBlank() {
			return rec, fmt.Errorf("label %q does not name a known client", label)
		}
		return rec, nil
	}
	if cmd.String("platform") == "" {
		return clientversion.Blank(), nil
	}
	return recordFromFlags(cmd)
}
