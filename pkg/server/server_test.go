package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/cookbook-dev/cookbook/pkg/library"
)

const breadYAML = `
name: bread
source: grandma
author: me
tags: [baking, bread]
steps:
  - instructions: knead
    step_type: Prep
    time_needed: [15, 1]
    time_needed_unit: min
  - instructions: bake
    step_type: Cook
    time_needed: [40, 1]
    time_needed_unit: min
`

const soupYAML = `
name: soup
source: winter cookbook
author: me
tags: [dinner]
`

// newTestServer builds a ready server backed by a temp library with two
// recipes.
func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range map[string]string{
		"bread.yaml": breadYAML,
		"soup.yaml":  soupYAML,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s failed: %v", name, err)
		}
	}

	lib, err := library.Open(dir, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	cfg := NewConfig()
	cfg.LibraryDir = dir
	s := New(WithConfig(cfg), WithLibrary(lib))
	s.setReady(true)
	return s, s.setupRoutes()
}

func doRequest(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHealthAndReady(t *testing.T) {
	s, h := newTestServer(t)

	if w := doRequest(h, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
		t.Fatalf("/health status = %d, want 200", w.Code)
	}
	if w := doRequest(h, http.MethodGet, "/ready", ""); w.Code != http.StatusOK {
		t.Fatalf("/ready status = %d, want 200", w.Code)
	}

	s.setReady(false)
	w := doRequest(h, http.MethodGet, "/ready", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("/ready status = %d, want 503", w.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Status != "not_ready" {
		t.Fatalf("status = %q, want not_ready", resp.Status)
	}
}

func TestListRecipes(t *testing.T) {
	_, h := newTestServer(t)

	w := doRequest(h, http.MethodGet, "/v1/recipes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp RecipeListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("count = %d, want 2", resp.Count)
	}
	if resp.Recipes[0].Name != "bread" || resp.Recipes[1].Name != "soup" {
		t.Fatalf("unexpected order: %q, %q", resp.Recipes[0].Name, resp.Recipes[1].Name)
	}
	if resp.Recipes[0].Steps != 2 {
		t.Fatalf("bread steps = %d, want 2", resp.Recipes[0].Steps)
	}
	if resp.Recipes[0].TotalTime != "55 min" {
		t.Fatalf("bread total time = %q, want %q", resp.Recipes[0].TotalTime, "55 min")
	}
	if resp.Recipes[1].TotalTime != "" {
		t.Fatalf("soup total time = %q, want empty", resp.Recipes[1].TotalTime)
	}
}

func TestListRecipesByTag(t *testing.T) {
	_, h := newTestServer(t)

	w := doRequest(h, http.MethodGet, "/v1/recipes?tag=baking", "")
	var resp RecipeListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Count != 1 || resp.Recipes[0].Name != "bread" {
		t.Fatalf("tag filter returned %+v", resp)
	}

	w = doRequest(h, http.MethodGet, "/v1/recipes?tag=dessert", "")
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Count != 0 {
		t.Fatalf("unused tag count = %d, want 0", resp.Count)
	}
}

func TestGetRecipeByID(t *testing.T) {
	s, h := newTestServer(t)

	id := s.library.List()[0].ID
	w := doRequest(h, http.MethodGet, "/v1/recipes/"+id.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body["name"] != "bread" {
		t.Fatalf("name = %v, want bread", body["name"])
	}
	if body["id"] != id.String() {
		t.Fatalf("id = %v, want %s", body["id"], id)
	}
}

func TestGetRecipeErrors(t *testing.T) {
	_, h := newTestServer(t)

	if w := doRequest(h, http.MethodGet, "/v1/recipes/not-a-uuid", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid id status = %d, want 400", w.Code)
	}
	if w := doRequest(h, http.MethodGet, "/v1/recipes/"+uuid.New().String(), ""); w.Code != http.StatusNotFound {
		t.Fatalf("unknown id status = %d, want 404", w.Code)
	}
	if w := doRequest(h, http.MethodDelete, "/v1/recipes/"+uuid.New().String(), ""); w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("DELETE status = %d, want 405", w.Code)
	}
}

func TestCreateRecipe(t *testing.T) {
	s, h := newTestServer(t)

	const toast = `{
	  "name": "toast",
	  "source": "none",
	  "author": "me",
	  "steps": [
	    {"instructions": "toast it", "step_type": "Cook",
	     "time_needed": [3, 1], "time_needed_unit": "min"}
	  ]
	}`

	w := doRequest(h, http.MethodPost, "/v1/recipes", toast)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body)
	}
	var created RecipeCreatedResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	id, err := uuid.Parse(created.ID)
	if err != nil {
		t.Fatalf("created id %q is not a uuid: %v", created.ID, err)
	}

	// the recipe is retrievable and persisted
	if w := doRequest(h, http.MethodGet, "/v1/recipes/"+created.ID, ""); w.Code != http.StatusOK {
		t.Fatalf("get created status = %d, want 200", w.Code)
	}
	path, ok := s.library.Path(id)
	if !ok {
		t.Fatal("created recipe must have a backing path")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backing file missing: %v", err)
	}
}

func TestCreateRecipeErrors(t *testing.T) {
	s, h := newTestServer(t)

	t.Run("malformed body", func(t *testing.T) {
		if w := doRequest(h, http.MethodPost, "/v1/recipes", "{not json"); w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		w := doRequest(h, http.MethodPost, "/v1/recipes", `{"name": "x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var resp ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if resp.Code != ErrCodeInvalidRequest {
			t.Fatalf("code = %q, want %q", resp.Code, ErrCodeInvalidRequest)
		}
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		id := s.library.List()[0].ID
		body := `{"id": "` + id.String() + `", "name": "dup", "source": "s", "author": "a"}`
		if w := doRequest(h, http.MethodPost, "/v1/recipes", body); w.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", w.Code)
		}
	})
}

func TestUnitsEndpoint(t *testing.T) {
	_, h := newTestServer(t)

	w := doRequest(h, http.MethodGet, "/v1/units", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp UnitsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	mass, ok := resp.Categories["Mass"]
	if !ok {
		t.Fatalf("missing Mass category, got %v", resp.Categories)
	}
	found := false
	for _, u := range mass {
		if u.Abbreviation == "g" {
			found = true
		}
	}
	if !found {
		t.Fatal("Mass category must include grams")
	}
}

func TestTagsEndpoint(t *testing.T) {
	_, h := newTestServer(t)

	w := doRequest(h, http.MethodGet, "/v1/tags", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp TagsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := []string{"baking", "bread", "dinner"}
	if len(resp.Tags) != len(want) {
		t.Fatalf("Tags = %v, want %v", resp.Tags, want)
	}
	for i := range want {
		if resp.Tags[i] != want[i] {
			t.Fatalf("Tags = %v, want %v", resp.Tags, want)
		}
	}
}

func TestDefaultRoute(t *testing.T) {
	_, h := newTestServer(t)

	w := doRequest(h, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Name   string   `json:"name"`
		Ready  bool     `json:"ready"`
		Routes []string `json:"routes"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Name != "cookbook-server" {
		t.Fatalf("name = %q, want cookbook-server", resp.Name)
	}
	if !resp.Ready {
		t.Fatal("default route must report ready")
	}
	if len(resp.Routes) == 0 {
		t.Fatal("default route must list routes")
	}
}
