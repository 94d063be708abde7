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

// Package serializer encodes and decodes JSON and YAML.
//
// Writer is used to export recipe cards when the renderer runs in json or
// yaml mode; Reader and FromFile load the optional config file.
//
//	w := serializer.NewWriter(serializer.FormatYAML, &buf)
//	if err := w.Serialize(ctx, card); err != nil {
//	    return err
//	}
//
//	file, err := serializer.FromFile[config.File]("resep.yaml")
package serializer
