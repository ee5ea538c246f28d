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

// Package timefmt renders provider timestamps for CSV output. Timestamps are
// converted to the local timezone and formatted with the strftime pattern
// "%m/%d/%y %H:%M:%S" (the C-locale expansion of "%x %X").
package timefmt

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"

	eprerrors "github.com/bigdata-memory/export-pull-requests/internal/errors"
)

const pattern = "%m/%d/%y %H:%M:%S"

// Format renders t in the local timezone using the display pattern.
func Format(t time.Time) string {
	return strftime.Format(pattern, t.Local())
}

// ParseAndFormat parses an RFC 3339 timestamp string as returned by the
// provider APIs and renders it with Format. A timestamp that cannot be parsed
// is a malformed-response condition; the error aborts the whole run.
func ParseAndFormat(s string) (string, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", fmt.Errorf("cannot parse timestamp %q: %w", s, eprerrors.ErrBadTimestamp)
	}
	return Format(t), nil
}
