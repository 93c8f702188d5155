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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"backupctl/client"
	"backupctl/cmdline"
	"backupctl/commands"
	"backupctl/infocache"
	"backupctl/metrics"

	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	exitUsage     = 2
	exitTransport = 1
)

func setupLogger() func() {
	var logger *zap.Logger
	var err error
	if term.IsTerminal(int(os.Stdin.Fd())) {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)

	return func() {
		_ = logger.Sync()
	}
}

func setupInterruptContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		select {
		case sig := <-c:
			zap.S().Infow("shutting_down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()
	onExit := func() {
		signal.Stop(c)
		cancel()
	}
	return ctx, onExit
}

// loadConfig tolerates a missing file only at the default location;
// an explicitly named config file must exist.
func loadConfig(path string) (*client.Config, error) {
	cfg, err := client.LoadConfig(path)
	if os.IsNotExist(err) && path == cmdline.DefaultConfigFile {
		return client.DefaultConfig(), nil
	}
	return cfg, err
}

func run() int {
	line, err := cmdline.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: "+err.Error())
		fmt.Fprintln(os.Stderr, commands.TopUsage)
		return exitUsage
	}

	logSync := setupLogger()
	defer logSync()
	lgr := zap.S()

	ctx, onExit := setupInterruptContext()
	defer onExit()

	metrics.SetupPrometheus(line.MetricsListenAddress, line.MetricsPath)

	cfg, err := loadConfig(line.ConfigFile)
	if err != nil {
		lgr.Errorw("config_load_error", "path", line.ConfigFile, "err", err)
		return exitTransport
	}

	var cache *infocache.Cache
	if line.CacheFile != "" {
		cache, err = infocache.Open(line.CacheFile, 0o644)
		if err != nil {
			lgr.Errorw("cache_open_error", "path", line.CacheFile, "err", err)
			return exitTransport
		}
		defer func() {
			if closeErr := cache.Close(); closeErr != nil {
				lgr.Errorw("cache_close_error", "err", closeErr)
			}
		}()
	}

	env := &commands.Env{
		Config:  cfg,
		Connect: client.CreateConnection,
		Cache:   cache,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
	err = commands.Run(ctx, env, line)
	switch {
	case err == nil:
		return 0
	case commands.IsUsageError(err):
		return exitUsage
	default:
		lgr.Errorw("command_error", "err", err)
		return exitTransport
	}
}

func main() {
	os.Exit(run())
}
