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

	"github.com/cookbook-dev/cookbook/pkg/rational"
	"github.com/cookbook-dev/cookbook/pkg/serializer"
	"github.com/cookbook-dev/cookbook/pkg/unit"
)

// convertResult is the convert command output.
type convertResult struct {
	Input   string `json:"input" yaml:"input"`
	Result  string `json:"result" yaml:"result"`
	Decimal string `json:"decimal" yaml:"decimal"`
}

// convertDecimalDigits is the precision of the decimal rendering.
const convertDecimalDigits = 4

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:                  "convert",
		EnableShellCompletion: true,
		Usage:                 "Convert a quantity between units",
		Description: `Convert an exact quantity from one unit to another within the same
measurement category. Values accept integers and fractions like 1/2 or
3/4; the result stays exact, with a rounded decimal alongside.

# Examples

Half a cup in milliliters:
  cookbook convert --value 1/2 --from cup --to mL

Oven temperature in Fahrenheit:
  cookbook convert --value 190 --from °C --to °F`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "value",
				Aliases:  []string{"v"},
				Required: true,
				Usage:    "Quantity value, integer or fraction (e.g. 1/2)",
			},
			&cli.StringFlag{
				Name:     "from",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "Source unit abbreviation (e.g. cup)",
			},
			&cli.StringFlag{
				Name:     "to",
				Required: true,
				Usage:    "Target unit abbreviation (e.g. mL)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			v, err := rational.Parse(cmd.String("value"))
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", cmd.String("value"), err)
			}

			catalog := unit.Default()
			q, err := catalog.Quantity(v, cmd.String("from"))
			if err != nil {
				return err
			}

			converted, err := catalog.Convert(q, cmd.String("to"))
			if err != nil {
				return err
			}

			res := convertResult{
				Input:   q.String(),
				Result:  converted.String(),
				Decimal: converted.Decimal(convertDecimalDigits),
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
