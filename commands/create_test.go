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
	"errors"
	"strings"
	"testing"

	"backupctl/backups"

	"github.com/go-test/deep"
)

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		argv []string
		ok   bool
	}{
		{[]string{"create", "full", "/root"}, true},
		{[]string{"create", "full", "/root", "t1,t2"}, true},
		{[]string{"create", "incremental", "/root"}, true},
		{[]string{"create", "FULL", "/root"}, true},
		{[]string{"create", "bogus", "/root"}, false},
		{[]string{"create", "full"}, false},
		{[]string{"create", "full", "/root", "t1", "extra"}, false},
		{[]string{"create", "full", "/root", "t1,,t2"}, false},
		{[]string{"create", "full", "/root", "-w", "abc"}, false},
		{[]string{"create", "full", "/root", "-b", "x"}, false},
	}
	for _, tc := range cases {
		env := newTestEnv()
		err := env.run(t, tc.argv...)
		if tc.ok && err != nil {
			t.Errorf("%v: unexpected error %v", tc.argv, err)
		}
		if !tc.ok && !IsUsageError(err) {
			t.Errorf("%v: expected usage error, got %v", tc.argv, err)
		}
	}
}

func TestCreateRequest(t *testing.T) {
	env := newTestEnv()
	if err := env.run(t, "create", "full", "/backups", "ks.t1,t2", "-w", "4", "-b", "100"); err != nil {
		t.Fatal(err)
	}
	if len(env.fake.SubmittedRequests) != 1 {
		t.Fatalf("SubmittedRequests = %v", env.fake.SubmittedRequests)
	}
	want := backups.Request{
		Type:          backups.TypeFull,
		Tables:        []backups.TableName{"ks.t1", "t2"},
		TargetRootDir: "/backups",
		Workers:       4,
		Bandwidth:     100,
	}
	if diff := deep.Equal(want, env.fake.SubmittedRequests[0]); diff != nil {
		t.Fatal(diff)
	}
	if !strings.Contains(env.stdout.String(), "finished. Status: SUCCESS") {
		t.Errorf("stdout = %q", env.stdout.String())
	}
}

func TestCreateDefaultsToUnsetSentinels(t *testing.T) {
	env := newTestEnv()
	if err := env.run(t, "create", "incremental", "/backups"); err != nil {
		t.Fatal(err)
	}
	req := env.fake.SubmittedRequests[0]
	if req.Workers != -1 || req.Bandwidth != -1 {
		t.Errorf("workers=%d bandwidth=%d", req.Workers, req.Bandwidth)
	}
	if len(req.Tables) != 0 {
		t.Errorf("empty table list means all tables, got %v", req.Tables)
	}
}

func TestCreateSetAndTablesAreExclusive(t *testing.T) {
	env := newTestEnv()
	env.fake.Sets["nightly"] = []backups.TableName{"t1"}
	err := env.run(t, "create", "full", "/backups", "t1,t2", "--set", "nightly")
	if !IsUsageError(err) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if len(env.fake.SubmittedRequests) != 0 {
		t.Errorf("conflicting request must not be submitted: %v", env.fake.SubmittedRequests)
	}
}

func TestCreateFromSet(t *testing.T) {
	env := newTestEnv()
	env.fake.Sets["nightly"] = []backups.TableName{"t1", "t2"}
	if err := env.run(t, "create", "full", "/backups", "--set", "nightly"); err != nil {
		t.Fatal(err)
	}
	req := env.fake.SubmittedRequests[0]
	if req.SetName != "nightly" {
		t.Errorf("SetName = %q", req.SetName)
	}
	if len(req.Tables) != 0 {
		t.Errorf("set-driven request must not carry a table list: %v", req.Tables)
	}
}

func TestCreateUnknownSet(t *testing.T) {
	env := newTestEnv()
	err := env.run(t, "create", "full", "/backups", "--set", "nosuchset")
	if !IsUsageError(err) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(env.stderr.String(), "'nosuchset' is either empty or does not exist") {
		t.Errorf("stderr = %q", env.stderr.String())
	}
}

func TestCreateSubmitFailure(t *testing.T) {
	env := newTestEnv()
	boom := errors.New("connection reset")
	env.fake.SubmitErr = boom
	err := env.run(t, "create", "full", "/backups")
	if !errors.Is(err, boom) {
		t.Fatalf("transport failure must pass through unchanged, got %v", err)
	}
	if IsUsageError(err) {
		t.Fatal("transport failure misclassified as usage error")
	}
	if !strings.Contains(env.stderr.String(), "Backup session finished. Status: FAILURE") {
		t.Errorf("stderr = %q", env.stderr.String())
	}
}

// The request invariant: a submitted request never carries both a table
// list and a set name, whichever way it was phrased.
func TestCreateRequestsNeverMixTablesAndSet(t *testing.T) {
	env := newTestEnv()
	env.fake.Sets["nightly"] = []backups.TableName{"t1"}

	_ = env.run(t, "create", "full", "/backups", "t1,t2")
	_ = env.run(t, "create", "full", "/backups", "--set", "nightly")
	_ = env.run(t, "create", "full", "/backups")

	for _, req := range env.fake.SubmittedRequests {
		if len(req.Tables) > 0 && req.SetName != "" {
			t.Errorf("request carries both tables and set: %+v", req)
		}
	}
}
