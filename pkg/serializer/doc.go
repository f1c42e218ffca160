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

// Package serializer provides generic encoding and decoding of structured
// data in multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, suitable for API responses
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable, suitable for files under version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened key/value view for terminal output
//   - Write-only (no deserialization support)
//
// # Usage
//
// Writing:
//
//	writer := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// Reading with automatic format detection:
//
//	reader, err := serializer.NewFileReaderAuto("recipe.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
//	if err := reader.Deserialize(&recipe); err != nil {
//	    log.Fatal(err)
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// Format detection is extension based: .json, .yaml/.yml, .table/.txt, with
// JSON as the fallback. Readers also accept http:// and https:// URLs, which
// are downloaded to a temporary file first.
package serializer
