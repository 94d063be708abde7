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

package defaults

import "time"

// Catalog endpoint settings.
const (
	// CatalogBaseURL is the public TheMealDB v1 API root using the shared test key.
	CatalogBaseURL = "https://www.themealdb.com/api/json/v1/1"

	// CatalogUserAgent is sent with every catalog request.
	CatalogUserAgent = "resep/1.0"

	// CatalogRetries is the number of extra attempts after a failed request.
	// Zero keeps one HTTP GET per catalog call.
	CatalogRetries = 0

	// CatalogRateLimit is the maximum number of requests per second.
	// Zero disables client-side limiting.
	CatalogRateLimit = 0.0

	// CatalogMaxBodyBytes caps how much of a response body is decoded.
	CatalogMaxBodyBytes = 4 << 20
)

// HTTP client settings for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for a catalog request.
	// Zero means no client-side limit beyond the transport defaults of
	// net/http; a timeout applies only when configured.
	HTTPClientTimeout time.Duration = 0

	// HTTPRetryWaitMin and HTTPRetryWaitMax bound the backoff between retries.
	HTTPRetryWaitMin = 500 * time.Millisecond
	HTTPRetryWaitMax = 5 * time.Second
)

// Rendering defaults.
const (
	// RenderConcurrency is the number of detail lookups in flight per batch.
	// One means strictly sequential.
	RenderConcurrency = 1

	// MaxRenderConcurrency bounds the configurable concurrency.
	MaxRenderConcurrency = 16

	// TableLabelWidth and TableDetailWidth are the column widths of a recipe table.
	TableLabelWidth  = 20
	TableDetailWidth = 80

	// ProgressWidth is the width of the progress bar in cells.
	ProgressWidth = 40
)

// CLI defaults.
const (
	// CLILogLevel keeps the interactive screen free of routine log lines.
	CLILogLevel = "warn"

	// CLILanguage is the default message language.
	CLILanguage = "id"
)
