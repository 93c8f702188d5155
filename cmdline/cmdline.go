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

// Package cmdline turns the raw argument vector into a command keyword,
// a positional argument list, and a set of named options. It deliberately
// leaves all per-command validation (arity, numeric parsing, mutual
// exclusivity) to the commands package: option values stay strings here.
package cmdline

import (
	"io"

	"github.com/alecthomas/kingpin/v2"
)

// Line is the parsed argument vector. Args[0] is the command keyword.
// String options are empty when absent.
type Line struct {
	Args []string
	Help bool

	Set       string
	Workers   string
	Bandwidth string
	Path      string
	Number    string
	Table     string

	ConfigFile           string
	CacheFile            string
	MetricsListenAddress string
	MetricsPath          string
}

const DefaultConfigFile = "/etc/backupctl/backupctl.yaml"

// Parse tokenizes argv. Help flags are detected before the kingpin parse
// so an explicit help request surfaces as option presence instead of
// kingpin's own usage path; every other parse failure is reported to the
// caller as an error.
func Parse(argv []string) (*Line, error) {
	line := &Line{}

	rest := make([]string, 0, len(argv))
	for _, tok := range argv {
		if tok == "-h" || tok == "--help" {
			line.Help = true
			continue
		}
		rest = append(rest, tok)
	}

	app := kingpin.New("backupctl", "Backup administration tool.")
	app.Terminate(nil)
	app.UsageWriter(io.Discard)
	app.ErrorWriter(io.Discard)

	app.Flag("config", "Client configuration file.").Default(DefaultConfigFile).StringVar(&line.ConfigFile)
	app.Flag("cache-file", "Location of the local backup info cache file.").StringVar(&line.CacheFile)
	app.Flag("web.listen-address", "Address on which to expose metrics.").StringVar(&line.MetricsListenAddress)
	app.Flag("web.telemetry-path", "Path under which to expose metrics.").Default("/metrics").StringVar(&line.MetricsPath)

	app.Flag("set", "Backup set name.").StringVar(&line.Set)
	app.Flag("workers", "Number of parallel workers.").Short('w').StringVar(&line.Workers)
	app.Flag("bandwidth", "Bandwidth per worker in MB/s.").Short('b').StringVar(&line.Bandwidth)
	app.Flag("path", "Backup root path.").StringVar(&line.Path)
	app.Flag("number", "Number of history entries.").Short('n').StringVar(&line.Number)
	app.Flag("table", "Table name.").Short('t').StringVar(&line.Table)

	app.Arg("args", "Command and arguments.").StringsVar(&line.Args)

	if _, err := app.Parse(rest); err != nil {
		return nil, err
	}
	return line, nil
}
