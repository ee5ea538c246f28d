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

package export

import (
	"fmt"
	"regexp"

	eprerrors "github.com/bigdata-memory/export-pull-requests/internal/errors"
)

// repoPattern matches <owner>/<name> with both parts non-empty. The owner
// part is greedy, so "group/subgroup/project" parses with owner
// "group/subgroup", which is how GitLab nests projects.
var repoPattern = regexp.MustCompile(`^(\S+)/(\S+)$`)

// RepoRef identifies one repository. Immutable once parsed.
type RepoRef struct {
	Owner string
	Name  string
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepos validates and splits the raw repository arguments. It fails on
// the first malformed argument, naming it, so bad input is rejected before
// any network call is attempted.
func ParseRepos(args []string) ([]RepoRef, error) {
	repos := make([]RepoRef, 0, len(args))
	for _, arg := range args {
		m := repoPattern.FindStringSubmatch(arg)
		if m == nil {
			return nil, fmt.Errorf("%w: %q (expected <owner>/<name>)", eprerrors.ErrBadRepoFormat, arg)
		}
		repos = append(repos, RepoRef{Owner: m[1], Name: m[2]})
	}
	return repos, nil
}
