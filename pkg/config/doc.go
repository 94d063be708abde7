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

// Package config resolves runtime settings.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional YAML or JSON file, a dotenv file, RESEP_* environment variables,
// and command line flags.
//
//	cfg, err := config.Load(config.Sources{File: path, EnvFile: ".env"},
//	    config.WithConcurrency(4))
package config
