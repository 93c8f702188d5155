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

	"backupctl/backups"
	"backupctl/cmdline"
)

// setCommand dispatches on the second positional token.
type setCommand struct{}

func (setCommand) Usage() string {
	return setUsage
}

func (c setCommand) Execute(ctx context.Context, env *Env, line *cmdline.Line) error {
	args := line.Args
	if len(args) < 2 {
		return failUsage(env, setUsage, "set", "command line format")
	}

	switch args[1] {
	case "add":
		return c.add(ctx, env, args)
	case "remove":
		return c.remove(ctx, env, args)
	case "delete":
		return c.delete(ctx, env, args)
	case "describe":
		return c.describe(ctx, env, args)
	case "list":
		return c.list(ctx, env)
	default:
		return failUsage(env, setUsage, "set", "unknown command for 'set': %s", args[1])
	}
}

func (c setCommand) add(ctx context.Context, env *Env, args []string) error {
	name, tables, err := c.nameAndTables(env, "set add", args)
	if err != nil {
		return err
	}

	conn, err := env.Connect(ctx, env.Config)
	if err != nil {
		return err
	}
	defer conn.Close()

	return conn.Admin().AddToBackupSet(ctx, name, tables)
}

func (c setCommand) remove(ctx context.Context, env *Env, args []string) error {
	name, tables, err := c.nameAndTables(env, "set remove", args)
	if err != nil {
		return err
	}

	conn, err := env.Connect(ctx, env.Config)
	if err != nil {
		return err
	}
	defer conn.Close()

	return conn.Admin().RemoveFromBackupSet(ctx, name, tables)
}

func (c setCommand) nameAndTables(env *Env, command string, args []string) (string, []backups.TableName, error) {
	if len(args) != 4 {
		return "", nil, failUsage(env, setUsage, "set",
			"wrong number of args for '%s' command: %d", command, len(args))
	}
	tables, err := backups.ParseTableNames(args[3])
	if err != nil {
		return "", nil, failUsage(env, setUsage, "set", "invalid table list: %v", err)
	}
	return args[2], tables, nil
}

func (c setCommand) delete(ctx context.Context, env *Env, args []string) error {
	if len(args) != 3 {
		return failUsage(env, setUsage, "set",
			"wrong number of args for 'set delete' command: %d", len(args))
	}
	name := args[2]

	conn, err := env.Connect(ctx, env.Config)
	if err != nil {
		return err
	}
	defer conn.Close()

	deleted, err := conn.Admin().DeleteBackupSet(ctx, name)
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintf(env.Stdout, "Delete set %s OK.\n", name)
	} else {
		fmt.Fprintf(env.Stdout, "Set %s does not exist\n", name)
	}
	return nil
}

func (c setCommand) describe(ctx context.Context, env *Env, args []string) error {
	if len(args) != 3 {
		return failUsage(env, setUsage, "set",
			"wrong number of args for 'set describe' command: %d", len(args))
	}
	name := args[2]

	conn, err := env.Connect(ctx, env.Config)
	if err != nil {
		return err
	}
	defer conn.Close()

	// An absent set is a printable result here, not a failure.
	tables, err := env.store(conn).DescribeBackupSet(ctx, name)
	if err != nil {
		return err
	}
	if tables == nil {
		fmt.Fprintf(env.Stdout, "Set '%s' does not exist.\n", name)
		return nil
	}
	fmt.Fprintln(env.Stdout, backups.Set{Name: name, Tables: tables})
	return nil
}

func (c setCommand) list(ctx context.Context, env *Env) error {
	conn, err := env.Connect(ctx, env.Config)
	if err != nil {
		return err
	}
	defer conn.Close()

	sets, err := conn.Admin().ListBackupSets(ctx)
	if err != nil {
		return err
	}
	for _, set := range sets {
		fmt.Fprintln(env.Stdout, set)
	}
	return nil
}
