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

// cancelCommand validates its arguments and acquires the admin handle
// but performs no cancellation.
// TODO: submit an abort once the admin surface grows one; today the
// engine has no way to stop a running session.
type cancelCommand struct{}

func (cancelCommand) Usage() string {
	return cancelUsage
}

func (c cancelCommand) Execute(ctx context.Context, env *Env, line *cmdline.Line) error {
	args := line.Args
	if len(args) > 2 {
		return failUsage(env, cancelUsage, "cancel", "wrong number of arguments: %d", len(args))
	}
	if len(args) < 2 {
		fmt.Fprintln(env.Stderr, "No backup id(s) was specified, will use the most recent one")
	}

	conn, err := env.Connect(ctx, env.Config)
	if err != nil {
		return err
	}
	defer conn.Close()

	return nil
}
