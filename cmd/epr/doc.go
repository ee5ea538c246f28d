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

// Package main implements the epr command-line interface. The tool exports
// pull/merge requests from GitHub, GitLab or Bitbucket as CSV rows, filtered
// by state and optionally by author.
//
// The CLI supports:
//   - One or more <owner>/<repo> arguments, exported in order
//   - Provider selection with --provider (or the EPR_SERVICE env var)
//   - Author include/exclude filtering with --creator
//   - Token authentication via flag, EPR_TOKEN env var or config file
//   - Customizable output destinations (stdout or file)
//
// Usage:
//
//	epr [flags] <owner>/<repo> [<owner>/<repo>...]
//
// Example:
//
//	export EPR_TOKEN=your_token
//	epr -s closed -c '!dependabot' golang/go golang/tools > prs.csv
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Configuration/authorization error
//   - 3: Network error
package main
