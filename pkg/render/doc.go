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

// Package render prints recipe details to a line-oriented sink.
//
// Each recipe becomes a titled two-column table (Kategori, Area,
// Bahan-bahan, Instruksi, Link Youtube) laid out with lipgloss, or a JSON or
// YAML card when another format is selected. A bubbles progress bar tracks
// the batch.
//
//	r := render.New(client, render.NewWriterSink(os.Stdout),
//	    render.WithConcurrency(4))
//	n := r.RenderBatch(ctx, summaries)
//
// Fetching may run concurrently; printing and progress always follow input
// order on the calling goroutine.
package render
