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

package fsroot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"backupctl/backups"
)

func makeRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		panic(err)
	}
	t.Cleanup(func() {
		if cleanupErr := os.RemoveAll(dir); cleanupErr != nil {
			panic(cleanupErr)
		}
	})
	return dir
}

func writeManifest(t *testing.T, root string, info backups.Info) {
	t.Helper()
	dir := filepath.Join(root, info.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data, err := backups.EncodeManifest(info)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, backups.ManifestFileName), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDirHistory(t *testing.T) {
	root := makeRoot(t)
	writeManifest(t, root, backups.Info{ID: "backup_1", Type: backups.TypeFull, State: backups.StateComplete, StartTime: 1})
	writeManifest(t, root, backups.Info{ID: "backup_2", Type: backups.TypeIncremental, State: backups.StateComplete, StartTime: 2})
	writeManifest(t, root, backups.Info{ID: "backup_3", Type: backups.TypeFull, State: backups.StateRunning, StartTime: 3})

	// Session directory without a manifest yet; skipped.
	if err := os.MkdirAll(filepath.Join(root, "backup_4"), 0o755); err != nil {
		t.Fatal(err)
	}
	// Corrupt manifest; logged and skipped.
	if err := os.MkdirAll(filepath.Join(root, "backup_5"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "backup_5", backups.ManifestFileName), []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	history, err := GetHistory(context.Background(), root, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Fatalf("history = %+v", history)
	}
	if history[0].ID != "backup_3" || history[1].ID != "backup_2" {
		t.Errorf("wrong order: %s, %s", history[0].ID, history[1].ID)
	}
}

func TestDirHistoryFilters(t *testing.T) {
	root := makeRoot(t)
	writeManifest(t, root, backups.Info{ID: "nightly_backup_1", Tables: []backups.TableName{"t1"}, StartTime: 1})
	writeManifest(t, root, backups.Info{ID: "backup_2", Tables: []backups.TableName{"t2"}, StartTime: 2})

	history, err := GetHistory(context.Background(), root, 10, backups.SetNameFilter("nightly"))
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].ID != "nightly_backup_1" {
		t.Errorf("history = %+v", history)
	}
}

func TestGetHistoryInvalidRoots(t *testing.T) {
	for _, root := range []string{"", "ftp://host/x", "s3://"} {
		_, err := GetHistory(context.Background(), root, 10)
		if !errors.Is(err, ErrInvalidRoot) {
			t.Errorf("%q: expected ErrInvalidRoot, got %v", root, err)
		}
	}
}

func TestParseS3Root(t *testing.T) {
	bucket, prefix, err := parseS3Root("s3://my-bucket/cluster/backups/")
	if err != nil {
		t.Fatal(err)
	}
	if bucket != "my-bucket" || prefix != "cluster/backups/" {
		t.Errorf("bucket=%q prefix=%q", bucket, prefix)
	}

	bucket, prefix, err = parseS3Root("s3://my-bucket")
	if err != nil {
		t.Fatal(err)
	}
	if bucket != "my-bucket" || prefix != "" {
		t.Errorf("bucket=%q prefix=%q", bucket, prefix)
	}
}
