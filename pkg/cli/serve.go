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

	"github.com/urfave/cli/v3"

	"github.com/zillyinc/tellus-client-version/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the client version HTTP API",
		Description: `Serves /v1/client and /v1/features along with /health, /ready and /metrics.
Settings not given as flags are read from the environment (PORT, GATES_FILE, ...).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "gates",
				Usage:   "feature gates file",
				Sources: cli.EnvVars(server.EnvGatesFile),
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "listen port",
				Sources: cli.EnvVars(server.EnvPort),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.NewConfig()
			if cmd.IsSet("gates") {
				cfg.GatesFile = cmd.String("gates")
			}
			if port := cmd.Int("port"); port > 0 {
				cfg.Port = port
			}

			s := server.New(
				server.WithConfig(cfg),
				server.WithName(name),
				server.WithVersion(version),
			)
			return s.Run(ctx)
		},
	}
}
