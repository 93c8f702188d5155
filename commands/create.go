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
	"fmt"
	"strconv"

	"backupctl/backups"
	"backupctl/cmdline"
)

type createCommand struct{}

func (createCommand) Usage() string {
	return createUsage
}

func (c createCommand) Execute(ctx context.Context, env *Env, line *cmdline.Line) error {
	args := line.Args
	if len(args) < 3 || len(args) > 4 {
		return failUsage(env, createUsage, "create", "wrong number of arguments: %d", len(args))
	}

	backupType, err := backups.ParseType(args[1])
	if err != nil {
		return failUsage(env, createUsage, "create", "invalid backup type: %s", args[1])
	}

	req := backups.Request{
		Type:          backupType,
		TargetRootDir: args[2],
		Workers:       -1,
		Bandwidth:     -1,
	}

	// A set-driven request carries only the set name; the table list is
	// resolved by the admin when the session is submitted.
	if line.Set != "" {
		if len(args) == 4 {
			return failUsage(env, createUsage, "create",
				"table list and --set are mutually exclusive")
		}
		req.SetName = line.Set
	} else if len(args) == 4 {
		tables, err := backups.ParseTableNames(args[3])
		if err != nil {
			return failUsage(env, createUsage, "create", "invalid table list: %v", err)
		}
		req.Tables = tables
	}

	if req.Workers, err = parseOptionalInt(line.Workers); err != nil {
		return failUsage(env, createUsage, "create", "invalid worker count: %s", line.Workers)
	}
	if req.Bandwidth, err = parseOptionalInt(line.Bandwidth); err != nil {
		return failUsage(env, createUsage, "create", "invalid bandwidth: %s", line.Bandwidth)
	}

	conn, err := env.Connect(ctx, env.Config)
	if err != nil {
		return err
	}
	defer conn.Close()

	if req.SetName != "" {
		tables, err := env.store(conn).DescribeBackupSet(ctx, req.SetName)
		if err != nil {
			return err
		}
		if len(tables) == 0 {
			return failUsage(env, createUsage, "create",
				"backup set '%s' is either empty or does not exist", req.SetName)
		}
	}

	id, err := conn.Admin().SubmitBackup(ctx, req)
	if err != nil {
		fmt.Fprintln(env.Stderr, "Backup session finished. Status: FAILURE")
		return err
	}
	fmt.Fprintf(env.Stdout, "Backup session %s finished. Status: SUCCESS\n", id)
	return nil
}

// parseOptionalInt maps an absent option to the -1 sentinel.
func parseOptionalInt(value string) (int, error) {
	if value == "" {
		return -1, nil
	}
	return strconv.Atoi(value)
}
