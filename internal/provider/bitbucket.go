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
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bigdata-memory/export-pull-requests/internal/filter"
	"github.com/bigdata-memory/export-pull-requests/internal/timefmt"
)

const defaultBitbucketEndpoint = "https://api.bitbucket.org/2.0"

// Bitbucket fetches pull requests through the Bitbucket Cloud 2.0 API.
// Unlike the other services there is no typed client library to lean on, so
// the adapter carries its own small HTTP client with typed response structs.
type Bitbucket struct {
	endpoint string
	client   *http.Client
	filter   *filter.Filter
}

// NewBitbucket builds a Bitbucket adapter. A token containing ":" is treated
// as "username:app_password" basic credentials; any other non-empty token is
// sent as a bearer token.
func NewBitbucket(opts Options) *Bitbucket {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = defaultBitbucketEndpoint
	}

	return &Bitbucket{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client:   &http.Client{Transport: &bitbucketAuthTransport{token: opts.Token, base: http.DefaultTransport}},
		filter:   opts.Filter,
	}
}

// bitbucketPage is one page of the pullrequests listing. The next field holds
// the URL of the following page and is absent on the last one.
type bitbucketPage struct {
	Values []bitbucketPullRequest `json:"values"`
	Next   string                 `json:"next"`
}

type bitbucketPullRequest struct {
	ID        int            `json:"id"`
	Title     string         `json:"title"`
	State     string         `json:"state"`
	CreatedOn string         `json:"created_on"`
	UpdatedOn string         `json:"updated_on"`
	Author    *bitbucketUser `json:"author"`
	Links     bitbucketLinks `json:"links"`
}

type bitbucketUser struct {
	Nickname string `json:"nickname"`
}

type bitbucketLinks struct {
	HTML struct {
		Href string `json:"href"`
	} `json:"html"`
}

// Fetch lists pull requests with a manual page-number loop, continuing
// exactly while each response declares a next page. Bitbucket requires the
// state filter in upper case. A pull request without an author (deleted
// account) is rendered with user "-" and bypasses the author filter, which
// only applies when an author is present.
func (b *Bitbucket) Fetch(ctx context.Context, owner, name, state string) ([]Row, error) {
	var rows []Row
	for page := 1; ; page++ {
		resp, err := b.listPage(ctx, owner, name, state, page)
		if err != nil {
			return nil, err
		}

		for _, pr := range resp.Values {
			user := "-"
			if pr.Author != nil {
				if b.filter.Skip(pr.Author.Nickname) {
					continue
				}
				user = pr.Author.Nickname
			}

			created, err := timefmt.ParseAndFormat(pr.CreatedOn)
			if err != nil {
				return nil, err
			}
			updated, err := timefmt.ParseAndFormat(pr.UpdatedOn)
			if err != nil {
				return nil, err
			}

			rows = append(rows, Row{
				Repo:    owner + "/" + name,
				Number:  pr.ID,
				User:    user,
				Title:   pr.Title,
				State:   pr.State,
				Created: created,
				Updated: updated,
				URL:     pr.Links.HTML.Href,
			})
		}

		if resp.Next == "" {
			break
		}
	}

	return rows, nil
}

func (b *Bitbucket) listPage(ctx context.Context, owner, name, state string, page int) (*bitbucketPage, error) {
	endpoint := fmt.Sprintf("%s/repositories/%s/%s/pullrequests", b.endpoint, owner, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("state", strings.ToUpper(state))
	q.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = q.Encode()

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, classifyStatus(err, 0)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("bitbucket: listing %s/%s returned %s", owner, name, resp.Status)
		return nil, classifyStatus(err, resp.StatusCode)
	}

	var body bitbucketPage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("bitbucket: decoding response for %s/%s: %w", owner, name, err)
	}

	return &body, nil
}

// bitbucketAuthTransport attaches credentials to every request.
type bitbucketAuthTransport struct {
	token string
	base  http.RoundTripper
}

func (t *bitbucketAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token == "" {
		return t.base.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	if user, pass, ok := strings.Cut(t.token, ":"); ok {
		req.SetBasicAuth(user, pass)
	} else {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	return t.base.RoundTrip(req)
}
