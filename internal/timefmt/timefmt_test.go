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

package timefmt

import (
	"errors"
	"testing"
	"time"

	eprerrors "github.com/bigdata-memory/export-pull-requests/internal/errors"
)

func TestFormat(t *testing.T) {
	// Build the instant in local time so the expected string is stable
	// regardless of the timezone the tests run in.
	in := time.Date(2024, 1, 15, 10, 30, 5, 0, time.Local)

	got := Format(in)
	want := "01/15/24 10:30:05"
	if got != want {
		t.Errorf("Format(%v) = %q, want %q", in, got, want)
	}
}

func TestParseAndFormat(t *testing.T) {
	local := time.Date(2023, 12, 31, 23, 59, 59, 0, time.Local)
	input := local.UTC().Format(time.RFC3339)

	got, err := ParseAndFormat(input)
	if err != nil {
		t.Fatalf("ParseAndFormat(%q) error: %v", input, err)
	}
	want := "12/31/23 23:59:59"
	if got != want {
		t.Errorf("ParseAndFormat(%q) = %q, want %q", input, got, want)
	}
}

func TestParseAndFormatFractionalSeconds(t *testing.T) {
	// Bitbucket timestamps carry microseconds and an explicit offset.
	if _, err := ParseAndFormat("2024-06-01T08:15:30.123456+00:00"); err != nil {
		t.Errorf("ParseAndFormat error: %v", err)
	}
}

func TestParseAndFormatMalformed(t *testing.T) {
	tests := []string{"", "yesterday", "2024-13-40T99:00:00Z", "1718000000"}

	for _, input := range tests {
		_, err := ParseAndFormat(input)
		if err == nil {
			t.Errorf("ParseAndFormat(%q) error = nil, want error", input)
			continue
		}
		if !errors.Is(err, eprerrors.ErrBadTimestamp) {
			t.Errorf("ParseAndFormat(%q) error = %v, want ErrBadTimestamp", input, err)
		}
	}
}
