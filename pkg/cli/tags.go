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

	"github.com/cookbook-dev/cookbook/pkg/library"
	"github.com/cookbook-dev/cookbook/pkg/serializer"
)

// tagListing is the tags command output.
type tagListing struct {
	Recipes int      `json:"recipes" yaml:"recipes"`
	Count   int      `json:"count" yaml:"count"`
	Tags    []string `json:"tags" yaml:"tags"`
}

func tagsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "tags",
		EnableShellCompletion: true,
		Usage:                 "List tags across a recipe library",
		ArgsUsage:             "<dir>",
		Description: `Load every recipe file under a directory tree and list the distinct
tags, sorted. Useful for keeping a library's tag vocabulary tidy.

# Examples

List tags of a library:
  cookbook tags ./recipes

Tags as JSON:
  cookbook tags ./recipes --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			dir := cmd.Args().First()
			if dir == "" {
				return fmt.Errorf("missing library directory argument")
			}

			lib, err := library.Open(dir, nil)
			if err != nil {
				return fmt.Errorf("failed to open recipe library: %w", err)
			}

			tags := lib.Tags()
			listing := tagListing{
				Recipes: lib.Len(),
				Count:   len(tags),
				Tags:    tags,
			}

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
