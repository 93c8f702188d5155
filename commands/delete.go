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

	"backupctl/cmdline"
)

type deleteCommand struct{}

func (deleteCommand) Usage() string {
	return deleteUsage
}

func (c deleteCommand) Execute(ctx context.Context, env *Env, line *cmdline.Line) error {
	args := line.Args
	if len(args) < 2 {
		return failUsage(env, deleteUsage, "delete", "no backup id(s) was specified")
	}
	ids := args[1:]

	conn, err := env.Connect(ctx, env.Config)
	if err != nil {
		return err
	}
	defer conn.Close()

	deleted, err := conn.Admin().DeleteBackups(ctx, ids)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Deleted %d backups. Total requested: %d\n", deleted, len(ids))
	return nil
}
