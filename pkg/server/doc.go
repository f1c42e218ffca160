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

// Package server serves a recipe library over HTTP.
//
// # Endpoints
//
//   - GET  /v1/recipes        list recipe summaries, filterable by ?tag=
//   - POST /v1/recipes        add a recipe, persisted to the library directory
//   - GET  /v1/recipes/{id}   full recipe document
//   - GET  /v1/units          unit catalog grouped by category
//   - GET  /v1/tags           distinct tags across the library
//   - GET  /health, /ready    probes
//   - GET  /metrics           Prometheus metrics
//
// API endpoints run behind a middleware chain providing request IDs, API
// version negotiation, token bucket rate limiting (golang.org/x/time/rate),
// panic recovery, request logging, and RED metrics.
//
// # Usage
//
// Basic server startup:
//
//	if err := server.Run(); err != nil {
//	    panic(err)
//	}
//
// Custom configuration:
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	cfg.LibraryDir = "/var/lib/cookbook/recipes"
//	if err := server.RunWithConfig(cfg); err != nil {
//	    panic(err)
//	}
//
// Configuration honors the PORT, LIBRARY_DIR, and SHUTDOWN_TIMEOUT_SECONDS
// environment variables.
package server
