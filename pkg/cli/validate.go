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

	"github.com/urfave/cli/v3"

	"github.com/cookbook-dev/cookbook/pkg/recipefile"
	"github.com/cookbook-dev/cookbook/pkg/serializer"
)

// validateResult is the validate command output.
type validateResult struct {
	File        string `json:"file" yaml:"file"`
	Valid       bool   `json:"valid" yaml:"valid"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Steps       int    `json:"steps" yaml:"steps"`
	Ingredients int    `json:"ingredients" yaml:"ingredients"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate a recipe file",
		ArgsUsage:             "<file>",
		Description: `Parse a recipe file and check it against the document rules: required
fields, known units, category-safe quantities, and well-formed step
structure. Errors carry the document path of the offending element,
e.g. steps[2].ingredients[0].

# Examples

Validate a file:
  cookbook validate pancakes.yaml

Validate a remote recipe:
  cookbook validate https://example.com/pancakes.yaml

Validation result as JSON:
  cookbook validate pancakes.yaml --format json`,
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

			res := validateResult{
				File:  path,
				Valid: true,
				Name:  rec.Name,
				Steps: len(rec.Steps),
			}
			for _, step := range rec.Steps {
				res.Ingredients += len(step.Ingredients)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, res)
		},
	}
}
