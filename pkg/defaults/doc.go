// Copyright (c) 2025, The resep Authors. All rights reserved.
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

// Package defaults provides centralized configuration constants for resep.
//
// This package defines the catalog endpoint, HTTP client timeouts, and
// rendering limits used across the codebase. Centralizing these values keeps
// the config layer, the catalog client, and the renderer in agreement.
//
// # Categories
//
//   - Catalog settings: base URL, user agent, retries, rate limit
//   - HTTP client settings: optional timeout and retry backoff
//   - Rendering: table widths, progress width, concurrency bounds
//   - CLI: default log level and language
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/resepfinder/resep/pkg/defaults"
//
//	client := catalog.NewClient(catalog.WithRetries(defaults.CatalogRetries))
package defaults
