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
	"strings"
	"testing"

	"backupctl/backups"
)

func TestSetAddDescribeRoundTrip(t *testing.T) {
	env := newTestEnv()
	if err := env.run(t, "set", "add", "X", "t1,t2"); err != nil {
		t.Fatal(err)
	}
	if err := env.run(t, "set", "describe", "X"); err != nil {
		t.Fatal(err)
	}
	if got := env.stdout.String(); got != "X={t1,t2}\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestSetAddIdempotent(t *testing.T) {
	env := newTestEnv()
	for i := 0; i < 2; i++ {
		if err := env.run(t, "set", "add", "X", "t1"); err != nil {
			t.Fatal(err)
		}
	}
	if err := env.run(t, "set", "describe", "X"); err != nil {
		t.Fatal(err)
	}
	if got := env.stdout.String(); got != "X={t1}\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestSetRemove(t *testing.T) {
	env := newTestEnv()
	env.fake.Sets["X"] = []backups.TableName{"t1", "t2"}
	if err := env.run(t, "set", "remove", "X", "t2"); err != nil {
		t.Fatal(err)
	}
	if err := env.run(t, "set", "describe", "X"); err != nil {
		t.Fatal(err)
	}
	if got := env.stdout.String(); got != "X={t1}\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestSetDescribeMissing(t *testing.T) {
	env := newTestEnv()
	if err := env.run(t, "set", "describe", "nosuchset"); err != nil {
		t.Fatalf("absent set is not a failure: %v", err)
	}
	if got := env.stdout.String(); got != "Set 'nosuchset' does not exist.\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestSetDelete(t *testing.T) {
	env := newTestEnv()
	env.fake.Sets["X"] = []backups.TableName{"t1"}

	if err := env.run(t, "set", "delete", "X"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(env.stdout.String(), "Delete set X OK.") {
		t.Errorf("stdout = %q", env.stdout.String())
	}

	env.stdout.Reset()
	if err := env.run(t, "set", "delete", "X"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(env.stdout.String(), "Set X does not exist") {
		t.Errorf("stdout = %q", env.stdout.String())
	}
}

func TestSetList(t *testing.T) {
	env := newTestEnv()
	env.fake.Sets["weekly"] = []backups.TableName{"t2"}
	env.fake.Sets["nightly"] = []backups.TableName{"t1"}

	if err := env.run(t, "set", "list"); err != nil {
		t.Fatal(err)
	}
	if got := env.stdout.String(); got != "nightly={t1}\nweekly={t2}\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestSetValidation(t *testing.T) {
	cases := [][]string{
		{"set"},
		{"set", "bogus"},
		{"set", "add", "X"},
		{"set", "add", "X", "t1", "extra"},
		{"set", "remove", "X"},
		{"set", "delete"},
		{"set", "delete", "X", "extra"},
		{"set", "describe"},
		{"set", "add", "X", "t1,,t2"},
	}
	for _, argv := range cases {
		env := newTestEnv()
		if err := env.run(t, argv...); !IsUsageError(err) {
			t.Errorf("%v: expected usage error, got %v", argv, err)
		}
	}
}
