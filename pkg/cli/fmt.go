// Copyright (c) 2025, Cookbook Authors.  All rights reserved.
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
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cookbook-dev/cookbook/pkg/recipefile"
	"github.com/cookbook-dev/cookbook/pkg/serializer"
)

func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:                  "fmt",
		EnableShellCompletion: true,
		Usage:                 "Rewrite a recipe file in canonical form",
		ArgsUsage:             "<file>",
		Description: `Parse a recipe file and re-serialize it deterministically. Elements
without ids get them assigned, quantities stay exact, and field order is
normalized. Without --write the result goes to stdout in the file's own
format.

# Examples

Print the canonical form:
  cookbook fmt pancakes.yaml

Rewrite the file in place:
  cookbook fmt pancakes.yaml --write`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write the result back to the source file instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("missing recipe file argument")
			}

			codec := recipefile.NewCodec(nil)
			rec, err := codec.DecodeFile(path)
			if err != nil {
				return err
			}

			if cmd.Bool("write") {
				slog.Debug("rewriting recipe file", "path", path, "id", rec.ID)
				return codec.EncodeFile(ctx, path, rec)
			}

			format := serializer.FormatFromPath(path)
			if format.IsUnknown() {
				format = serializer.FormatYAML
			}
			return codec.Encode(ctx, os.Stdout, format, rec)
		},
	}
}
