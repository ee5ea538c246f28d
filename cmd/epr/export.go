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
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bigdata-memory/export-pull-requests/internal/config"
	eprerrors "github.com/bigdata-memory/export-pull-requests/internal/errors"
	"github.com/bigdata-memory/export-pull-requests/internal/export"
	"github.com/bigdata-memory/export-pull-requests/internal/filter"
	"github.com/bigdata-memory/export-pull-requests/internal/provider"
)

// exportOptions carries the flag values of one invocation.
type exportOptions struct {
	creator  string
	provider string
	state    string
	token    string
	output   string
}

func newRootCommand() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "epr [flags] <owner>/<repo> [<owner>/<repo>...]",
		Short: "Export pull requests from GitHub, GitLab or Bitbucket to CSV",
		Long: `epr exports pull/merge requests from GitHub, GitLab or Bitbucket into CSV
rows on standard output, filtered by state and optionally by author.

Repositories must be specified in the format: <owner>/<repo>
For example: golang/go, gitlab-org/gitlab

Authentication is optional but strongly recommended:
  - Use --token to provide a token directly
  - Or set the EPR_TOKEN environment variable
  - Or configure tokens per service in ~/.epr/config.yaml
For Bitbucket, a token of the form "username:app_password" selects basic auth.`,
		Version:       buildVersionString(),
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past argument validation every error is a runtime error;
			// re-printing usage would only bury the message.
			cmd.SilenceUsage = true

			return runExport(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.creator, "creator", "c", "", "Comma-separated usernames to include; prefix an entry with \"!\" to exclude it")
	cmd.Flags().StringVarP(&opts.provider, "provider", "p", "", "Service to export from: github, gitlab or bitbucket (default: $EPR_SERVICE or github)")
	cmd.Flags().StringVarP(&opts.state, "state", "s", "open", "State filter: open, closed, all or merged")
	cmd.Flags().StringVarP(&opts.token, "token", "t", "", "API token (overrides EPR_TOKEN env var and config file)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

// runExport executes one export run
func runExport(ctx context.Context, args []string, opts exportOptions) error {
	// Parse repository arguments first: malformed input must never cost an
	// API call.
	repos, err := export.ParseRepos(args)
	if err != nil {
		return err
	}

	if err := validateState(opts.state); err != nil {
		return err
	}

	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	service := opts.provider
	if service == "" {
		service = cfg.Service
	}

	p, err := provider.New(service, provider.Options{
		Token:    resolveToken(opts.token, cfg, service),
		Endpoint: cfg.EndpointFor(service),
		Filter:   filter.Parse(opts.creator),
	})
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if opts.output != "" {
		file, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	exporter := &export.Exporter{Provider: p, State: opts.state}
	return exporter.Run(ctx, repos, out)
}

func validateState(state string) error {
	switch state {
	case "open", "closed", "all", "merged":
		return nil
	}
	return fmt.Errorf("%w: %q (expected open, closed, all or merged)", eprerrors.ErrInvalidState, state)
}

// resolveToken returns the API token for the run: the --token flag wins, then
// a non-blank EPR_TOKEN environment variable, then the config file (the
// per-service entry before the shared fallback). Empty means anonymous.
func resolveToken(flagToken string, cfg *config.Config, service string) string {
	if flagToken != "" {
		return flagToken
	}
	if env := strings.TrimSpace(os.Getenv("EPR_TOKEN")); env != "" {
		return env
	}
	return cfg.TokenFor(service)
}
