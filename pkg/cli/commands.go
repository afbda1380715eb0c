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
	"strings"

	"github.com/urfave/cli/v3"
	"k8s.io/utils/ptr"

	"github.com/zillyinc/tellus-client-version/pkg/clientversion"
	ver "github.com/zillyinc/tellus-client-version/pkg/version"
)

func headersCmd() *cli.Command {
	return &cli.Command{
		Name:  "headers",
		Usage: "List the request header carrying each platform's version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeResult(ctx, cmd, headerRows(clientversion.Headers()))
		},
	}
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Parse two versions and show how they order",
		ArgsUsage: "A B",
		Description: `Versions are parsed leniently: a "v" prefix and letters glued to digits
are dropped, so "V1.2.3" and "1.2.b3" both read as 1.2.3.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := requireArgs(cmd, 2); err != nil {
				return err
			}
			a, b := cmd.Args().Get(0), cmd.Args().Get(1)

			va, err := ver.Parse(a)
			if err != nil {
				return err
			}
			vb, err := ver.Parse(b)
			if err != nil {
				return err
			}

			return writeResult(ctx, cmd, compareResult{
				A:               a,
				B:               b,
				NormalizedA:     va.String(),
				NormalizedB:     vb.String(),
				Compare:         va.Compare(vb),
				LessThan:        va.LessThan(vb),
				LessThanOrEqual: va.LessThanOrEqual(vb),
				Equal:           va.Equal(vb),
			})
		},
	}
}

func labelCmd() *cli.Command {
	return &cli.Command{
		Name:      "label",
		Usage:     "Parse a friendly client label, or build one from flags",
		ArgsUsage: "[LABEL]",
		Description: `With an argument, parses a label such as "Zilly Ios 2.1.0".
Without one, builds the label for --app, --platform and --version.`,
		Flags: []cli.Flag{
			appFlag(),
			&cli.StringFlag{Name: "platform", Aliases: []string{"p"}, Usage: "client platform"},
			&cli.StringFlag{Name: "version", Aliases: []string{"V"}, Usage: "client version"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 {
				// unquoted labels arrive as separate arguments
				rec := clientversion.ParseFriendlyLabel(strings.Join(cmd.Args().Slice(), " "))
				return writeResult(ctx, cmd, newRecordView(rec))
			}

			rec, err := recordFromFlags(cmd)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, newRecordView(rec))
		},
	}
}

func clientCmd() *cli.Command {
	return &cli.Command{
		Name:  "client",
		Usage: "Evaluate a client version the way the server does",
		Flags: []cli.Flag{
			appFlag(),
			&cli.StringFlag{Name: "platform", Aliases: []string{"p"}, Usage: "client platform", Required: true},
			&cli.StringFlag{Name: "version", Aliases: []string{"V"}, Usage: "client version"},
			&cli.StringFlag{Name: "lt", Usage: "version to compare against (reports lessThan and lessThanOrEqual)"},
			&cli.StringFlag{Name: "requirement", Aliases: []string{"r"}, Usage: `requirement to check, e.g. ">= 2.0" or "~> 3.1"`},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rec, err := recordFromFlags(cmd)
			if err != nil {
				return err
			}

			res := clientResult{Client: newRecordView(rec)}

			if against := cmd.String("lt"); against != "" {
				if _, err := ver.Parse(against); err != nil {
					return err
				}
				lt, err := rec.LessThan(rec.Platform(), against)
				if err != nil {
					return err
				}
				lte, err := rec.LessThanOrEqual(rec.Platform(), against)
				if err != nil {
					return err
				}
				res.Against = against
				res.LessThan = ptr.To(lt)
				res.LessThanOrEqual = ptr.To(lte)
			}

			if cmd.IsSet("requirement") {
				req, err := ver.ParseRequirement(cmd.String("requirement"))
				if err != nil {
					return err
				}
				ok, err := rec.Satisfies(req)
				if err != nil {
					return err
				}
				res.Requirement = req.String()
				res.Matches = ptr.To(ok)
			}

			return writeResult(ctx, cmd, res)
		},
	}
}

func appFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "app",
		Value: string(clientversion.AppZilly),
		Usage: fmt.Sprintf("client app (supported values: %v)", clientversion.Apps()),
	}
}

// recordFromFlags builds a record from --app, --platform and --version.
func recordFromFlags(cmd *cli.Command) (clientversion.Record, error) {
	app, err := clientversion.ParseApp(cmd.String("app"))
	if err != nil {
		return clientversion.Blank(), err
	}
	platform, err := clientversion.ParsePlatform(cmd.String("platform"))
	if err != nil {
		return clientversion.Blank(), fmt.Errorf("%w, supported values: %v", err, clientversion.Platforms(app))
	}
	if _, ok := clientversion.HeaderFor(app, platform); !ok {
		return clientversion.Blank(), fmt.Errorf("platform %q is not used by app %q", platform, app)
	}
	return clientversion.New(app, platform, cmd.String("version")), nil
}
