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

package provider

import "context"

// Mock is a mock implementation of the Provider interface for testing.
type Mock struct {
	// Rows to return, keyed by "owner/name". Repositories not present in the
	// map return no rows.
	Rows map[string][]Row

	// Err, when set, is returned by every Fetch call.
	Err error

	// FailOn, when non-empty, makes Fetch fail with Err only for that
	// "owner/name" repository.
	FailOn string

	// Track calls for verification
	Calls []MockCall
}

// MockCall records the arguments of one Fetch invocation.
type MockCall struct {
	Owner string
	Name  string
	State string
}

// Fetch implements the Provider interface.
func (m *Mock) Fetch(ctx context.Context, owner, name, state string) ([]Row, error) {
	m.Calls = append(m.Calls, MockCall{Owner: owner, Name: name, State: state})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	repo := owner + "/" + name
	if m.Err != nil && (m.FailOn == "" || m.FailOn == repo) {
		return nil, m.Err
	}

	return m.Rows[repo], nil
}
