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

package header

import (
	"time"
)

// Kind identifies the type of an exported document.
type Kind string

// Valid Kind constants.
const (
	KindRecipe Kind = "Recipe"
)

// APIVersion is the schema version of exported documents.
const APIVersion = "resep/v1"

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair. Empty values are skipped.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if value == "" {
			return
		}
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithTimestamp records t in RFC 3339 form under the "timestamp" key.
func WithTimestamp(t time.Time) Option {
	return WithMetadata("timestamp", t.UTC().Format(time.RFC3339))
}

// Header precedes each exported document, in the style of Kubernetes
// resources.
type Header struct {
	Kind       Kind              `json:"kind" yaml:"kind"`
	APIVersion string            `json:"apiVersion" yaml:"apiVersion"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// New returns a Header of the given kind at APIVersion.
func New(kind Kind, opts ...Option) Header {
	h := Header{
		Kind:       kind,
		APIVersion: APIVersion,
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}
