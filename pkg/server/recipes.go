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

package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/cookbook-dev/cookbook/pkg/defaults"
	"github.com/cookbook-dev/cookbook/pkg/document"
	"github.com/cookbook-dev/cookbook/pkg/serializer"
)

// handleRecipes handles GET and POST /v1/recipes
func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listRecipes(w, r)
	case http.MethodPost:
		s.createRecipe(w, r)
	default:
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
	}
}

func (s *Server) listRecipes(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recipes := s.library.List()
	if tag := r.URL.Query().Get("tag"); tag != "" {
		recipes = s.library.Tagged(tag)
	}

	resp := RecipeListResponse{
		Count:   len(recipes),
		Recipes: make([]RecipeSummary, 0, len(recipes)),
	}
	for _, rec := range recipes {
		resp.Recipes = append(resp.Recipes, summarize(rec))
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

func summarize(rec *document.Recipe) RecipeSummary {
	sum := RecipeSummary{
		ID:          rec.ID.String(),
		Name:        rec.Name,
		Description: rec.Description,
		Author:      rec.Author,
		Tags:        rec.Tags,
		Steps:       len(rec.Steps),
	}
	if total, ok, err := rec.TotalTime(); err == nil && ok {
		sum.TotalTime = total.String()
	}
	return sum
}

func (s *Server) createRecipe(w http.ResponseWriter, r *http.Request) {
	rec, err := s.codec.Decode(r.Body, serializer.FormatJSON)
	if err != nil {
		if errors.Is(err, document.ErrValidation) {
			WriteError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
				err.Error(), false, nil)
			return
		}
		WriteError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"malformed recipe body", false, map[string]any{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.library.Add(rec); err != nil {
		WriteError(w, r, http.StatusConflict, ErrCodeConflict,
			err.Error(), false, nil)
		return
	}

	saveCtx, cancel := context.WithTimeout(r.Context(), defaults.LibrarySaveTimeout)
	defer cancel()
	if err := s.library.Save(saveCtx, rec.ID); err != nil {
		// keep the collection consistent with disk
		s.library.Remove(rec.ID)
		slog.Error("failed to persist recipe", "error", err, "recipe", rec.ID)
		WriteError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
			"failed to persist recipe", true, nil)
		return
	}

	libraryRecipes.Set(float64(s.library.Len()))
	serializer.RespondJSON(w, http.StatusCreated, RecipeCreatedResponse{ID: rec.ID.String()})
}

// handleRecipeByID handles GET /v1/recipes/{id}
func (s *Server) handleRecipeByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/v1/recipes/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"invalid recipe id", false, map[string]any{"id": idStr})
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.library.Get(id)
	if !ok {
		WriteError(w, r, http.StatusNotFound, ErrCodeNotFound,
			"recipe not found", false, map[string]any{"id": idStr})
		return
	}

	// EncodeView, not Encode: the recipe is shared and only a read lock is held
	w.Header().Set("Content-Type", "application/json")
	if err := s.codec.EncodeView(r.Context(), w, serializer.FormatJSON, rec); err != nil {
		slog.Error("failed to encode recipe", "error", err, "recipe", id)
	}
}

// handleTags handles GET /v1/tags
func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	s.mu.RLock()
	tags := s.library.Tags()
	s.mu.RUnlock()

	serializer.RespondJSON(w, http.StatusOK, TagsResponse{Tags: tags})
}
