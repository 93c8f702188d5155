// Copyright 2026 The backupctl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"backupctl/backups"
	"backupctl/cmdline"
	"backupctl/fsroot"
)

const defaultHistoryLength = 10

type historyCommand struct{}

func (historyCommand) Usage() string {
	return historyUsage
}

func (c historyCommand) Execute(ctx context.Context, env *Env, line *cmdline.Line) error {
	limit := defaultHistoryLength
	if line.Number != "" {
		parsed, err := strconv.Atoi(line.Number)
		if err != nil {
			return failUsage(env, historyUsage, "history",
				"illegal argument for history length: %s", line.Number)
		}
		limit = parsed
	}

	tableName := backups.TableName("")
	if line.Table != "" {
		parsed, err := backups.ParseTableName(line.Table)
		if err != nil {
			return failUsage(env, historyUsage, "history",
				"illegal argument for table name: %s", line.Table)
		}
		tableName = parsed
	}

	// Both filters accept everything when their option is absent.
	filters := []backups.Filter{
		backups.TableFilter(tableName),
		backups.SetNameFilter(line.Set),
	}

	var history []backups.Info
	if line.Path != "" {
		var err error
		history, err = fsroot.GetHistory(ctx, line.Path, limit, filters...)
		if errors.Is(err, fsroot.ErrInvalidRoot) {
			return failUsage(env, historyUsage, "history",
				"illegal argument for backup root path: %s", line.Path)
		}
		if err != nil {
			return err
		}
	} else {
		conn, err := env.Connect(ctx, env.Config)
		if err != nil {
			return err
		}
		defer conn.Close()

		history, err = env.store(conn).GetBackupHistory(ctx, limit, filters...)
		if err != nil {
			return err
		}
	}

	for _, info := range history {
		fmt.Fprintln(env.Stdout, info.ShortDescription())
	}
	return nil
}
