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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrBadRepoFormat indicates a repository argument did not match the
	// required <owner>/<name> shape. Detected before any network call.
	// Maps to exit code 2.
	ErrBadRepoFormat = errors.New("invalid repository format")

	// ErrUnknownProvider indicates the configured service name is not one of
	// github, gitlab or bitbucket.
	// Maps to exit code 2.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrInvalidState indicates the requested state filter is not one of
	// open, closed, all or merged.
	// Maps to exit code 2.
	ErrInvalidState = errors.New("invalid state filter")

	// ErrInvalidToken indicates authentication with the provider failed.
	// Maps to exit code 2.
	ErrInvalidToken = errors.New("invalid api token")

	// ErrRepoNotFound indicates the specified repository does not exist or is not accessible.
	// Maps to exit code 2.
	ErrRepoNotFound = errors.New("repository not found")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrBadTimestamp indicates a provider returned a timestamp that could
	// not be parsed. Treated as a malformed-response condition; never retried.
	ErrBadTimestamp = errors.New("malformed timestamp in response")
)
