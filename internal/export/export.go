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

// Package export drives an export run: it iterates the requested
// repositories, dispatches to the provider adapter and streams the resulting
// rows as CSV. Rows are flushed as they are written, so the output of
// repositories that finished remains visible even when a later fetch fails.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/bigdata-memory/export-pull-requests/internal/provider"
)

// header is the full column set; the Repository column is dropped when the
// run covers a single repository, where it would repeat the same value on
// every row.
var header = []string{"Repository", "Number", "User", "Title", "State", "Created", "Updated", "URL"}

// Exporter runs one export over a constructed provider adapter. The adapter
// is built once and reused across repositories, so authentication happens a
// single time per run.
type Exporter struct {
	Provider provider.Provider
	State    string
}

// Run exports every repository in order, writing a header line followed by
// the data rows for each one. Whether the Repository column is included is
// decided once, from the repository count, and applied to every line of the
// run. The first fetch error aborts the run.
func (e *Exporter) Run(ctx context.Context, repos []RepoRef, out io.Writer) error {
	withRepo := len(repos) > 1
	w := csv.NewWriter(out)

	for _, repo := range repos {
		rows, err := e.Provider.Fetch(ctx, repo.Owner, repo.Name, e.State)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", repo, err)
		}

		if err := writeLine(w, headerLine(withRepo)); err != nil {
			return err
		}

		for _, row := range rows {
			if err := writeLine(w, record(row, withRepo)); err != nil {
				return err
			}
		}
	}

	return nil
}

func headerLine(withRepo bool) []string {
	if withRepo {
		return header
	}
	return header[1:]
}

func record(row provider.Row, withRepo bool) []string {
	rec := []string{
		row.Repo,
		strconv.Itoa(row.Number),
		row.User,
		row.Title,
		row.State,
		row.Created,
		row.Updated,
		row.URL,
	}
	if withRepo {
		return rec
	}
	return rec[1:]
}

// writeLine emits one CSV line and flushes immediately so output streams
// line by line rather than accumulating until the end of the run.
func writeLine(w *csv.Writer, rec []string) error {
	if err := w.Write(rec); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
