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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/cookbook-dev/cookbook/pkg/serializer"
	"github.com/cookbook-dev/cookbook/pkg/unit"
)

// unitListing is the units command output.
type unitListing struct {
	Count int        `json:"count" yaml:"count"`
	Units []unitItem `json:"units" yaml:"units"`
}

type unitItem struct {
	Category     string `json:"category" yaml:"category"`
	Abbreviation string `json:"abbreviation" yaml:"abbreviation"`
	Name         string `json:"name" yaml:"name"`
}

func unitsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "units",
		EnableShellCompletion: true,
		Usage:                 "List supported measurement units",
		Description: `List every unit the catalog accepts in recipe files, grouped by
measurement category (mass, volume, time, temperature, quantity).

# Examples

List all units:
  cookbook units

List only volume units as a table:
  cookbook units --category volume --format table`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "Limit the listing to one category (e.g. mass, volume)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			categories := unit.SupportedCategories()
			if want := cmd.String("category"); want != "" {
				cat, err := parseCategory(want)
				if err != nil {
					return err
				}
				categories = []unit.Category{cat}
			}

			catalog := unit.Default()
			listing := unitListing{}
			for _, cat := range categories {
				for _, u := range catalog.UnitsIn(cat) {
					listing.Units = append(listing.Units, unitItem{
						Category:     cat.String(),
						Abbreviation: u.Abbr(),
						Name:         u.Name(),
					})
				}
			}
			listing.Count = len(listing.Units)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, listing)
		},
	}
}

// parseCategory resolves a case-insensitive category name.
func parseCategory(s string) (unit.Category, error) {
	for _, cat := range unit.SupportedCategories() {
		if strings.EqualFold(cat.String(), s) {
			return cat, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q (supported: %v)", s, unit.SupportedCategories())
}
