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

// Package menu implements the interactive search loop.
//
// The loop moves between four states:
//
//	MainMenu ──1──▶ SearchByName ──▶ MainMenu
//	MainMenu ──2──▶ SearchByArea ──▶ MainMenu
//	MainMenu ──3──▶ Exit
//
// Catalog failures are reported to the user and the loop returns to the main
// menu. End of input and context cancellation stop the loop without error.
package menu
