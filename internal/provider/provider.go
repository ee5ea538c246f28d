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

// Package provider adapts the pull request listing APIs of GitHub, GitLab and
// Bitbucket into one common row shape. Each adapter knows how to authenticate,
// paginate and map its service's representation; everything downstream only
// sees Rows.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	eprerrors "github.com/bigdata-memory/export-pull-requests/internal/errors"
	"github.com/bigdata-memory/export-pull-requests/internal/filter"
)

// Row is the normalized shape of one pull/merge request. Created and Updated
// hold display strings already rendered in local time.
type Row struct {
	Repo    string
	Number  int
	User    string
	Title   string
	State   string
	Created string
	Updated string
	URL     string
}

// Provider defines the interface for fetching pull requests from a hosted
// code-review service. This interface allows for easy mocking in tests.
type Provider interface {
	// Fetch retrieves all pull requests of the repository matching the state
	// filter, across every page the service reports. The configured author
	// filter is applied before rows are built.
	Fetch(ctx context.Context, owner, name, state string) ([]Row, error)
}

// Options configures the construction of a provider adapter. The adapter and
// its underlying service client are built once per run and reused across
// repositories, so authentication is set up a single time.
type Options struct {
	// Token is the API token. May be empty for anonymous access where the
	// service allows it. For Bitbucket a "username:app_password" value
	// selects basic auth instead of a bearer token.
	Token string

	// Endpoint overrides the service's default API base URL, for GitHub
	// Enterprise or self-hosted GitLab deployments. Empty uses the default.
	Endpoint string

	// Filter decides which authors' pull requests are exported.
	Filter *filter.Filter
}

// New constructs the adapter for the named service. An unrecognized name is a
// configuration error detected before any network activity.
func New(name string, opts Options) (Provider, error) {
	switch name {
	case "github":
		return NewGitHub(opts)
	case "gitlab":
		return NewGitLab(opts)
	case "bitbucket":
		return NewBitbucket(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q (expected github, gitlab or bitbucket)", eprerrors.ErrUnknownProvider, name)
	}
}

// classifyStatus maps an upstream failure to a sentinel error based on the
// HTTP status of the response, falling back to a network-failure sentinel for
// transport errors. Unrecognized failures pass through unchanged.
func classifyStatus(err error, status int) error {
	switch status {
	case 401, 403:
		return fmt.Errorf("%v: %w", err, eprerrors.ErrInvalidToken)
	case 404:
		return fmt.Errorf("%v: %w", err, eprerrors.ErrRepoNotFound)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%v: %w", err, eprerrors.ErrNetworkFailure)
	}
	return err
}
