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

package recipe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Area is a region or country classification used by the catalog to group
// recipes, for example "Canadian" or "Indonesian".
type Area string

// String returns the area name.
func (a Area) String() string {
	return string(a)
}

// SummaryKind tells which variant a Summary holds.
type SummaryKind int

const (
	// SummaryInvalid is an entry without a usable identifier.
	SummaryInvalid SummaryKind = iota
	// SummaryBareID is an entry that is only an identifier string.
	SummaryBareID
	// SummaryRecord is a partial record carrying an identifier field.
	SummaryRecord
)

// String implements fmt.Stringer.
func (k SummaryKind) String() string {
	switch k {
	case SummaryBareID:
		return "bare-id"
	case SummaryRecord:
		return "record"
	default:
		return "invalid"
	}
}

// Summary is the minimal identifying data returned by the search and filter
// endpoints. It is either a bare identifier or a partial record; use ID to
// resolve the identifier instead of inspecting the kind directly.
type Summary struct {
	kind SummaryKind
	id   string

	// Name and Thumbnail are only populated for records.
	Name      string
	Thumbnail string
}

// BareID returns a Summary holding only an identifier.
func BareID(id string) Summary {
	return Summary{kind: SummaryBareID, id: id}
}

// Record returns a Summary for a partial record.
func Record(id, name, thumbnail string) Summary {
	return Summary{kind: SummaryRecord, id: id, Name: name, Thumbnail: thumbnail}
}

// Invalid returns a Summary without an identifier.
func Invalid() Summary {
	return Summary{kind: SummaryInvalid}
}

// Kind returns the variant held by s.
func (s Summary) Kind() SummaryKind {
	return s.kind
}

// ID resolves the identifier to look up. The boolean is false for invalid
// entries and for blank identifiers.
func (s Summary) ID() (string, bool) {
	if s.kind == SummaryInvalid {
		return "", false
	}
	id := strings.TrimSpace(s.id)
	return id, id != ""
}

// UnmarshalJSON decodes either a JSON string (bare identifier) or an object
// with an idMeal field. Anything else decodes to an invalid summary rather
// than failing the whole list.
func (s *Summary) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return fmt.Errorf("failed to decode summary id: %w", err)
		}
		*s = BareID(id)
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var raw struct {
			ID        json.RawMessage `json:"idMeal"`
			Name      *string         `json:"strMeal"`
			Thumbnail *string         `json:"strMealThumb"`
		}
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return fmt.Errorf("failed to decode summary record: %w", err)
		}
		id, ok := scalarString(raw.ID)
		if !ok {
			*s = Invalid()
			return nil
		}
		*s = Record(id, deref(raw.Name), deref(raw.Thumbnail))
		return nil
	}

	*s = Invalid()
	return nil
}

// scalarString accepts a JSON string or number and returns its text form.
func scalarString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str, true
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		return num.String(), true
	}
	return "", false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
