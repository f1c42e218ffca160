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
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cookbook-dev/cookbook/pkg/recipefile"
	"github.com/cookbook-dev/cookbook/pkg/serializer"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:                  "show",
		EnableShellCompletion: true,
		Usage:                 "Render a recipe file",
		ArgsUsage:             "<file>",
		Description: `Parse a recipe file and render it in the requested format. JSON and
YAML emit the full document; table emits a flattened key/value view
suitable for terminal reading. The file argument may also be an http://
or https:// URL.

# Examples

Render as YAML (default):
  cookbook show pancakes.yaml

Render as a table:
  cookbook show pancakes.yaml --format table

Write JSON to a file:
  cookbook show pancakes.yaml --format json --output pancakes.json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("missing recipe file argument")
			}

			codec := recipefile.NewCodec(nil)
			rec, err := codec.DecodeFile(path)
			if err != nil {
				return err
			}

			var out io.Writer = os.Stdout
			if target := cmd.String("output"); target != "" {
				f, err := os.Create(target)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() {
					if err := f.Close(); err != nil {
						slog.Warn("failed to close output file", "error", err)
					}
				}()
				out = f
			}

			// The table view flattens the document; JSON and YAML keep the
			// recipe file wire form.
			if outFormat == serializer.FormatTable {
				return serializer.NewWriter(outFormat, out).Serialize(ctx, rec)
			}
			return codec.Encode(ctx, out, outFormat, rec)
		},
	}
}
