// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package filter decides which pull request authors are included in an export.
// A filter is built once from the --creator flag value and consulted for every
// item a provider returns.
package filter

import "strings"

// Filter holds the configured author sets. The zero value skips nobody.
type Filter struct {
	exclude map[string]struct{}
	include map[string]struct{}
}

// Parse builds a Filter from a comma-separated username list. Entries
// prefixed with "!" are excluded; all other entries form the include set.
// Empty entries are ignored.
func Parse(list string) *Filter {
	f := &Filter{}
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if name, ok := strings.CutPrefix(entry, "!"); ok {
			f.exclude = addToSet(f.exclude, name)
			continue
		}
		f.include = addToSet(f.include, entry)
	}
	return f
}

// Skip reports whether items authored by user should be dropped from the
// export. A user is skipped when explicitly excluded, or when an include set
// is configured and the user is not in it. Exclude wins when a user appears
// in both sets.
func (f *Filter) Skip(user string) bool {
	if f == nil {
		return false
	}
	if _, ok := f.exclude[user]; ok {
		return true
	}
	if len(f.include) > 0 {
		if _, ok := f.include[user]; !ok {
			return true
		}
	}
	return false
}

// Excludes reports whether user is in the exclude set.
func (f *Filter) Excludes(user string) bool {
	if f == nil {
		return false
	}
	_, ok := f.exclude[user]
	return ok
}

// Includes reports whether user is in the include set.
func (f *Filter) Includes(user string) bool {
	if f == nil {
		return false
	}
	_, ok := f.include[user]
	return ok
}

func addToSet(set map[string]struct{}, s string) map[string]struct{} {
	if set == nil {
		set = make(map[string]struct{})
	}
	set[s] = struct{}{}
	return set
}
