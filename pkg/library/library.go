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

package library

import (
	"cmp"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/cookbook-dev/cookbook/pkg/document"
	"github.com/cookbook-dev/cookbook/pkg/recipefile"
)

// Library is an in-memory collection of recipes backed by a directory of
// recipe files. Open loads the whole tree up front; lookups never touch the
// filesystem afterwards.
//
// Library is not safe for concurrent mutation. Serving layers that mutate it
// must serialize access themselves.
type Library struct {
	dir     string
	codec   *recipefile.Codec
	recipes map[uuid.UUID]*document.Recipe
	paths   map[uuid.UUID]string
}

var recipeExtensions = []string{".yaml", ".yml", ".json"}

// Open loads every recipe file under dir, recursively. Files decoded without
// an id get one assigned in memory; call SaveAll to persist them. Passing a
// nil codec uses one bound to the default unit catalog.
func Open(dir string, codec *recipefile.Codec) (*Library, error) {
	if codec == nil {
		codec = recipefile.NewCodec(nil)
	}
	l := &Library{
		dir:     dir,
		codec:   codec,
		recipes: make(map[uuid.UUID]*document.Recipe),
		paths:   make(map[uuid.UUID]string),
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !slices.Contains(recipeExtensions, strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		rec, err := codec.DecodeFile(path)
		if err != nil {
			return err
		}
		if prev, exists := l.paths[rec.ID]; exists {
			return fmt.Errorf("duplicate recipe id %s in %s and %s", rec.ID, prev, path)
		}
		l.recipes[rec.ID] = rec
		l.paths[rec.ID] = path
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe library: %w", err)
	}

	slog.Debug("opened recipe library",
		slog.String("dir", dir),
		slog.Int("recipes", len(l.recipes)),
	)
	return l, nil
}

// Len returns the number of loaded recipes.
func (l *Library) Len() int {
	return len(l.recipes)
}

// Get returns the recipe with the given id.
func (l *Library) Get(id uuid.UUID) (*document.Recipe, bool) {
	rec, ok := l.recipes[id]
	return rec, ok
}

// Path returns the file the recipe was loaded from, or will be saved to.
func (l *Library) Path(id uuid.UUID) (string, bool) {
	path, ok := l.paths[id]
	return path, ok
}

// List returns all recipes ordered by name, with id as the tie breaker so
// the order is stable across loads.
func (l *Library) List() []*document.Recipe {
	out := make([]*document.Recipe, 0, len(l.recipes))
	for _, rec := range l.recipes {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b *document.Recipe) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out
}

// Tags compiles the distinct tags across all recipes, sorted.
func (l *Library) Tags() []string {
	seen := make(map[string]bool)
	for _, rec := range l.recipes {
		for _, tag := range rec.Tags {
			seen[tag] = true
		}
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Tagged returns the recipes carrying the given tag, in List order.
func (l *Library) Tagged(tag string) []*document.Recipe {
	var out []*document.Recipe
	for _, rec := range l.List() {
		if slices.Contains(rec.Tags, tag) {
			out = append(out, rec)
		}
	}
	return out
}

// Add validates and inserts a recipe that has no backing file yet. The
// backing path is derived from the id under the library root; Save writes
// it.
func (l *Library) Add(rec *document.Recipe) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	rec.EnsureIDs()
	if _, exists := l.recipes[rec.ID]; exists {
		return fmt.Errorf("recipe id %s already in library", rec.ID)
	}
	l.recipes[rec.ID] = rec
	l.paths[rec.ID] = filepath.Join(l.dir, rec.ID.String()+".yaml")
	return nil
}

// Remove drops a recipe from the collection. The backing file is left in
// place.
func (l *Library) Remove(id uuid.UUID) bool {
	if _, ok := l.recipes[id]; !ok {
		return false
	}
	delete(l.recipes, id)
	delete(l.paths, id)
	return true
}

// Save writes one recipe back to its backing file.
func (l *Library) Save(ctx context.Context, id uuid.UUID) error {
	rec, ok := l.recipes[id]
	if !ok {
		return fmt.Errorf("recipe %s not in library", id)
	}
	return l.codec.EncodeFile(ctx, l.paths[id], rec)
}

// SaveAll writes every recipe back to its backing file, persisting any ids
// assigned at load time.
func (l *Library) SaveAll(ctx context.Context) error {
	for id := range l.recipes {
		if err := l.Save(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
