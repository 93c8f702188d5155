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

type describeCommand struct{}

func (describeCommand) Usage() string {
	return describeUsage
}

func (c describeCommand) Execute(ctx context.Context, env *Env, line *cmdline.Line) error {
	args := line.Args
	if len(args) != 2 {
		return failUsage(env, describeUsage, "describe", "wrong number of arguments: %d", len(args))
	}
	backupID := args[1]

	conn, err := env.Connect(ctx, env.Config)
	if err != nil {
		return err
	}
	defer conn.Close()

	info, err := env.store(conn).ReadBackupInfo(ctx, backupID)
	if err != nil {
		return err
	}
	if info == nil {
		return failUsage(env, describeUsage, "describe", "%s does not exist", backupID)
	}
	fmt.Fprintln(env.Stdout, info.ShortDescription())
	return nil
}
