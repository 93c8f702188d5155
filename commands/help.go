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
	"strings"

	"backupctl/cmdline"
)

type helpCommand struct{}

func (helpCommand) Usage() string {
	return TopUsage
}

func (c helpCommand) Execute(ctx context.Context, env *Env, line *cmdline.Line) error {
	args := line.Args
	if len(args) != 2 {
		return failUsage(env, TopUsage, "help",
			"only supports help message of a single command type")
	}

	name := strings.ToLower(args[1])
	usage, ok := usageByCommand[name]
	if !ok {
		fmt.Fprintln(env.Stdout, "Unknown command : "+args[1])
		fmt.Fprintln(env.Stderr, TopUsage)
		return nil
	}
	fmt.Fprintln(env.Stdout, usage)
	return nil
}
