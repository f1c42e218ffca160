package server

import (
	"time"
)

// Wire types for the HTTP API

// ErrorResponse is the error body every endpoint returns on failure
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

// RecipeSummary is the list view of a recipe
type RecipeSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags,omitempty"`
	Steps       int      `json:"steps"`
	// TotalTime is the summed duration of all timed steps, rendered as an
	// exact quantity like "85 min". Empty when no step is timed.
	TotalTime string `json:"totalTime,omitempty"`
}

// RecipeListResponse is the body of GET /v1/recipes
type RecipeListResponse struct {
	Count   int             `json:"count"`
	Recipes []RecipeSummary `json:"recipes"`
}

// RecipeCreatedResponse is the body of a successful POST /v1/recipes
type RecipeCreatedResponse struct {
	ID string `json:"id"`
}

// UnitInfo describes one catalog unit
type UnitInfo struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
}

// UnitsResponse is the body of GET /v1/units: units grouped by category,
// keyed by the title-cased category name
type UnitsResponse struct {
	Categories map[string][]UnitInfo `json:"categories"`
}

// TagsResponse is the body of GET /v1/tags
type TagsResponse struct {
	Tags []string `json:"tags"`
}
