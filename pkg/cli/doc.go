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

// Package cli implements the command-line interface of resep, an interactive
// recipe finder backed by TheMealDB.
//
// # Usage
//
//	resep [--base-url URL] [--timeout D] [--retries N] [--rate-limit R]
//	      [--concurrency N] [--format table|json|yaml] [--lang id|en]
//	      [--config FILE] [--env-file FILE] [--log-level L]
//	      [--metrics-file FILE]
//
// With no flags the program shows the Indonesian menu:
//
//	Pilih metode pencarian:
//	1. Cari berdasarkan nama makanan
//	2. Cari berdasarkan area/negara
//	3. Keluar
//
// # Configuration
//
// Settings are resolved with increasing precedence from defaults, the config
// file, the dotenv file, RESEP_* environment variables and flags:
//
//	RESEP_BASE_URL      Catalog API root
//	RESEP_TIMEOUT       Per-request timeout (e.g. 10s, default none)
//	RESEP_RETRIES       Extra attempts per request
//	RESEP_RATE_LIMIT    Requests per second, 0 for unlimited
//	RESEP_CONCURRENCY   Recipe details fetched at once
//	RESEP_FORMAT        table, json or yaml
//	RESEP_LANG          id or en
//	RESEP_LOG_LEVEL     debug, info, warn or error
//	RESEP_CONFIG        Config file path
//	RESEP_METRICS_FILE  Prometheus text file written on exit
//
// Logs are JSON on stderr so they never mix with the menu on stdout. With
// --format json or yaml the menu and prompts move to stderr as well, leaving
// only recipe documents on stdout.
//
// # Exit Codes
//
//	0  Normal exit, end of input or interrupt
//	1  Invalid configuration or input failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/resepfinder/resep/pkg/cli.version=1.0.0'"
package cli
