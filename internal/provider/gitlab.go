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
	"time"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/bigdata-memory/export-pull-requests/internal/filter"
	"github.com/bigdata-memory/export-pull-requests/internal/timefmt"
)

// GitLab fetches merge requests through the GitLab v4 API.
type GitLab struct {
	client *gitlab.Client
	filter *filter.Filter
}

// NewGitLab builds a GitLab adapter. A non-empty Endpoint points the client
// at a self-hosted instance instead of gitlab.com.
func NewGitLab(opts Options) (*GitLab, error) {
	var clientOpts []gitlab.ClientOptionFunc
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, gitlab.WithBaseURL(opts.Endpoint))
	}

	client, err := gitlab.NewClient(opts.Token, clientOpts...)
	if err != nil {
		return nil, err
	}

	return &GitLab{client: client, filter: opts.Filter}, nil
}

// Fetch lists the project's merge requests page by page. GitLab has no "open"
// state; it is translated to "opened" before the request, while closed, all
// and merged pass through unchanged. The row number is the per-project iid,
// not the instance-global merge request id.
func (g *GitLab) Fetch(ctx context.Context, owner, name, state string) ([]Row, error) {
	if state == "open" {
		state = "opened"
	}

	opt := &gitlab.ListProjectMergeRequestsOptions{
		State:       gitlab.Ptr(state),
		ListOptions: gitlab.ListOptions{PerPage: 100, Page: 1},
	}

	project := owner + "/" + name

	var rows []Row
	for {
		mrs, resp, err := g.client.MergeRequests.ListProjectMergeRequests(project, opt, gitlab.WithContext(ctx))
		if err != nil {
			status := 0
			if resp != nil {
				status = resp.StatusCode
			}
			return nil, classifyStatus(err, status)
		}

		for _, mr := range mrs {
			var user string
			if mr.Author != nil {
				user = mr.Author.Username
			}
			if g.filter.Skip(user) {
				continue
			}
			rows = append(rows, Row{
				Repo:    project,
				Number:  mr.IID,
				User:    user,
				Title:   mr.Title,
				State:   mr.State,
				Created: formatTimePtr(mr.CreatedAt),
				Updated: formatTimePtr(mr.UpdatedAt),
				URL:     mr.WebURL,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return rows, nil
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timefmt.Format(*t)
}
