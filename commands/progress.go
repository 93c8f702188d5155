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

type progressCommand struct{}

func (progressCommand) Usage() string {
	return progressUsage
}

func (c progressCommand) Execute(ctx context.Context, env *Env, line *cmdline.Line) error {
	args := line.Args
	if len(args) > 2 {
		return failUsage(env, progressUsage, "progress", "wrong number of arguments: %d", len(args))
	}

	backupID := ""
	if len(args) == 2 {
		backupID = args[1]
	} else {
		fmt.Fprintln(env.Stderr,
			"No backup id was specified, will retrieve the most recent (ongoing) sessions")
	}

	conn, err := env.Connect(ctx, env.Config)
	if err != nil {
		return err
	}
	defer conn.Close()

	info, err := env.store(conn).ReadBackupInfo(ctx, backupID)
	if err != nil {
		return err
	}
	// An absent session and a session without recorded progress read the
	// same to the operator.
	if info == nil || info.Progress < 0 {
		fmt.Fprintln(env.Stderr, "No info was found for backup id: "+backupID)
		return nil
	}
	fmt.Fprintf(env.Stdout, "%s progress=%d%%\n", info.ID, info.Progress)
	return nil
}
