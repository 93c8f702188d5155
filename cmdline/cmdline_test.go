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

package cmdline

import (
	"testing"

	"github.com/go-test/deep"
)

func TestParsePositionalsAndOptions(t *testing.T) {
	line, err := Parse([]string{"create", "full", "/backups/prod", "t1,t2", "-w", "3", "-b", "100"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(line.Args, []string{"create", "full", "/backups/prod", "t1,t2"}); diff != nil {
		t.Fatal(diff)
	}
	if line.Workers != "3" || line.Bandwidth != "100" {
		t.Fatalf("unexpected options: %+v", line)
	}
	if line.Help {
		t.Fatal("help should not be set")
	}
}

func TestParseHelpFlag(t *testing.T) {
	for _, argv := range [][]string{
		{"create", "-h"},
		{"--help", "history"},
	} {
		line, err := Parse(argv)
		if err != nil {
			t.Fatal(err)
		}
		if !line.Help {
			t.Fatalf("help not detected for %v", argv)
		}
		if len(line.Args) != 1 {
			t.Fatalf("unexpected args for %v: %v", argv, line.Args)
		}
	}
}

func TestParseNonNumericOptionValue(t *testing.T) {
	// Numeric validation belongs to the commands, not the parser.
	line, err := Parse([]string{"history", "-n", "abc"})
	if err != nil {
		t.Fatal(err)
	}
	if line.Number != "abc" {
		t.Fatalf("unexpected number option: %q", line.Number)
	}
}

func TestParseUnknownFlag(t *testing.T) {
	if _, err := Parse([]string{"create", "--bogus"}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseRunnerDefaults(t *testing.T) {
	line, err := Parse([]string{"history"})
	if err != nil {
		t.Fatal(err)
	}
	if line.ConfigFile != DefaultConfigFile {
		t.Fatalf("unexpected config default: %q", line.ConfigFile)
	}
	if line.MetricsPath != "/metrics" {
		t.Fatalf("unexpected telemetry path default: %q", line.MetricsPath)
	}
}
