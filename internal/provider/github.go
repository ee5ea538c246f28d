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

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/bigdata-memory/export-pull-requests/internal/filter"
	"github.com/bigdata-memory/export-pull-requests/internal/timefmt"
)

// GitHub fetches pull requests through the GitHub REST v3 API.
type GitHub struct {
	client *github.Client
	filter *filter.Filter
}

// NewGitHub builds a GitHub adapter. With a token, requests are authenticated
// via an oauth2 static token source; without one, requests are anonymous and
// subject to the unauthenticated rate limit. A non-empty Endpoint switches
// the client to a GitHub Enterprise deployment.
func NewGitHub(opts Options) (*GitHub, error) {
	var httpClient *http.Client
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	if opts.Endpoint != "" {
		var err error
		client, err = client.WithEnterpriseURLs(opts.Endpoint, opts.Endpoint)
		if err != nil {
			return nil, err
		}
	}

	return &GitHub{client: client, filter: opts.Filter}, nil
}

// Fetch lists pull requests page by page until the response reports no next
// page. The state filter is passed through to the API unchanged.
func (g *GitHub) Fetch(ctx context.Context, owner, name, state string) ([]Row, error) {
	opt := &github.PullRequestListOptions{
		State:       state,
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var rows []Row
	for {
		prs, resp, err := g.client.PullRequests.List(ctx, owner, name, opt)
		if err != nil {
			return nil, classifyGitHubError(err)
		}

		// A trailing empty page contributes nothing; skip it rather than
		// walking an empty batch.
		if len(prs) > 0 {
			for _, pr := range prs {
				user := pr.GetUser().GetLogin()
				if g.filter.Skip(user) {
					continue
				}
				rows = append(rows, Row{
					Repo:    owner + "/" + name,
					Number:  pr.GetNumber(),
					User:    user,
					Title:   pr.GetTitle(),
					State:   pr.GetState(),
					Created: timefmt.Format(pr.GetCreatedAt().Time),
					Updated: timefmt.Format(pr.GetUpdatedAt().Time),
					URL:     pr.GetHTMLURL(),
				})
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return rows, nil
}

func classifyGitHubError(err error) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return classifyStatus(err, ghErr.Response.StatusCode)
	}
	return classifyStatus(err, 0)
}
