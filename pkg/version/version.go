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

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
)

// Version is a release number such as v1.4.2 or 1.4.2-rc.1.
type Version struct {
	Major int
	Minor int
	Patch int

	// Extras holds the pre-release or build suffix without its separator.
	Extras string
}

// String returns "vMajor.Minor.Patch" followed by "-Extras" when present.
func (v Version) String() string {
	s := fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Extras != "" {
		s += "-" + v.Extras
	}
	return s
}

// ParseVersion parses "1", "1.2", "1.2.3", with an optional "v" prefix and a
// suffix after '-' or '+'. Missing components are zero.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	var v Version
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		v.Extras = s[i+1:]
		s = s[:i]
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrTooManyComponents, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, p)
		}
		nums[i] = n
	}
	v.Major, v.Minor, v.Patch = nums[0], nums[1], nums[2]
	return v, nil
}

// Info describes the running build. Fields are stamped with ldflags; an
// unstamped build reports Version "dev".
type Info struct {
	Version string
	Commit  string
	Date    string
}

// String formats the build for --version output.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}

// Release returns the parsed build version, or false for development builds.
func (i Info) Release() (Version, bool) {
	v, err := ParseVersion(i.Version)
	if err != nil {
		return Version{}, false
	}
	return v, true
}

// UserAgent returns "product/vX.Y.Z" for release builds and fallback
// otherwise.
func (i Info) UserAgent(product, fallback string) string {
	v, ok := i.Release()
	if !ok {
		return fallback
	}
	return product + "/" + v.String()
}
