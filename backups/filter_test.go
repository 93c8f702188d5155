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

package backups

import (
	"testing"

	"backupctl/unixtime"
)

func historyFixture() []Info {
	return []Info{
		{ID: "backup_1", Tables: []TableName{"t1"}, StartTime: unixtime.Seconds(100)},
		{ID: "nightly_backup_2", Tables: []TableName{"t1", "t2"}, StartTime: unixtime.Seconds(200)},
		{ID: "backup_3", Tables: []TableName{"t3"}, StartTime: unixtime.Seconds(300)},
	}
}

func TestSelectHistoryOrderAndCap(t *testing.T) {
	got := SelectHistory(historyFixture(), 2)
	if len(got) != 2 || got[0].ID != "backup_3" || got[1].ID != "nightly_backup_2" {
		t.Fatalf("unexpected selection: %v", got)
	}
}

func TestSelectHistoryFilters(t *testing.T) {
	got := SelectHistory(historyFixture(), 10, TableFilter("t1"), SetNameFilter(""))
	if len(got) != 2 || got[0].ID != "nightly_backup_2" || got[1].ID != "backup_1" {
		t.Fatalf("unexpected table filter selection: %v", got)
	}

	got = SelectHistory(historyFixture(), 10, TableFilter(""), SetNameFilter("nightly"))
	if len(got) != 1 || got[0].ID != "nightly_backup_2" {
		t.Fatalf("unexpected set filter selection: %v", got)
	}

	got = SelectHistory(historyFixture(), 10, TableFilter("t1"), SetNameFilter("nightly"))
	if len(got) != 1 || got[0].ID != "nightly_backup_2" {
		t.Fatalf("filters should compose: %v", got)
	}
}

func TestShortDescription(t *testing.T) {
	info := Info{
		ID:        "backup_42",
		Type:      TypeFull,
		State:     StateComplete,
		Tables:    []TableName{"t1", "t2"},
		Progress:  100,
		StartTime: unixtime.Seconds(1700000000),
		EndTime:   unixtime.Seconds(1700000500),
	}
	want := "{ID=backup_42,Type=FULL,Tables={t1,t2},State=COMPLETE," +
		"Start time=2023-11-14T22:13:20Z,End time=2023-11-14T22:21:40Z,Progress=100%}"
	if got := info.ShortDescription(); got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}
