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

package main

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// providerModules are the provider client libraries whose versions are
// reported alongside the tool version. Bitbucket has no client library; its
// adapter is built in.
var providerModules = []string{
	"github.com/google/go-github/v62",
	"gitlab.com/gitlab-org/api/client-go",
}

// buildVersionString assembles the --version output: the tool version plus
// one line per provider client library, with versions read from the build
// info embedded in the binary.
func buildVersionString() string {
	var b strings.Builder
	b.WriteString(version)

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, path := range providerModules {
			for _, dep := range info.Deps {
				if dep.Path == path {
					fmt.Fprintf(&b, "\n  %s %s", dep.Path, dep.Version)
				}
			}
		}
	}
	b.WriteString("\n  bitbucket: built-in client (API 2.0)")

	return b.String()
}
