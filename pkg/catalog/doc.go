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

// Package catalog is a read-only client for the TheMealDB recipe catalog.
//
// # Endpoints
//
//	list.php?a=list      area names
//	search.php?s=<name>  recipes by name
//	filter.php?a=<area>  recipes by area
//	lookup.php?i=<id>    full recipe detail
//
// Every response body has a top-level "meals" key holding null or an array.
// Non-200 responses are never decoded.
//
// # Outcomes
//
// SearchByName distinguishes three outcomes:
//
//	summaries, err := client.SearchByName(ctx, "spaghetti")
//	switch {
//	case errors.Is(err, catalog.ErrNoResults):
//	    // catalog answered, nothing matched
//	case err != nil:
//	    // non-200 status or catalog unreachable (matches catalog.ErrUnavailable)
//	default:
//	    // at least one summary
//	}
//
// ListAreas, FilterByArea, and GetDetail collapse non-200 responses into an
// empty result and only report failures to reach the catalog at all.
//
// # Options
//
// By default the client performs one GET per call with no retries and no
// rate limit. WithRetries enables retries through go-retryablehttp and
// WithRateLimit throttles requests with a token bucket.
//
// # Observability
//
// Each request carries an X-Request-Id header, is logged at debug level, and
// is counted in resep_catalog_requests_total and
// resep_catalog_request_duration_seconds.
package catalog
