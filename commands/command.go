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

// Package commands maps a parsed command line onto the backup
// operations. Each variant owns its validation rules; the metadata
// store and admin handles are acquired per invocation and released on
// every exit path.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"backupctl/client"
	"backupctl/cmdline"
	"backupctl/infocache"
	"backupctl/metrics"
)

// Env carries the per-invocation collaborators. Stdout receives command
// results, Stderr receives warnings and usage text.
type Env struct {
	Config  *client.Config
	Connect client.ConnectFunc
	Cache   *infocache.Cache
	Stdout  io.Writer
	Stderr  io.Writer
}

func (e *Env) store(conn client.Connection) client.Store {
	return infocache.WrapStore(conn.Store(), e.Cache)
}

type Command interface {
	Execute(ctx context.Context, env *Env, line *cmdline.Line) error
	Usage() string
}

var registry = map[string]func() Command{
	"create":   func() Command { return createCommand{} },
	"describe": func() Command { return describeCommand{} },
	"progress": func() Command { return progressCommand{} },
	"delete":   func() Command { return deleteCommand{} },
	"cancel":   func() Command { return cancelCommand{} },
	"history":  func() Command { return historyCommand{} },
	"set":      func() Command { return setCommand{} },
	"help":     func() Command { return helpCommand{} },
}

// Run dispatches on the command keyword. An explicit help request
// short-circuits to the variant's usage text before any validation.
func Run(ctx context.Context, env *Env, line *cmdline.Line) error {
	if len(line.Args) == 0 {
		fmt.Fprintln(env.Stderr, TopUsage)
		return &UsageError{Reason: "no command given"}
	}

	keyword := strings.ToLower(line.Args[0])
	construct, ok := registry[keyword]
	if !ok {
		fmt.Fprintln(env.Stderr, "Unknown command: "+line.Args[0])
		fmt.Fprintln(env.Stderr, TopUsage)
		return &UsageError{Command: keyword, Reason: "unknown command"}
	}
	cmd := construct()
	metrics.Commands.Executed(keyword).Inc()

	var err error
	if line.Help {
		fmt.Fprintln(env.Stderr, cmd.Usage())
		err = &UsageError{Command: keyword, Reason: "help requested"}
	} else {
		err = cmd.Execute(ctx, env, line)
	}
	if err != nil {
		kind := "transport"
		if IsUsageError(err) {
			kind = "usage"
		}
		metrics.Commands.Errors(keyword, kind).Inc()
	}
	return err
}
