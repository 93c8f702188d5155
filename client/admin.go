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

package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"backupctl/backups"
	"backupctl/unixtime"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
)

// Admin exposes the mutating backup operations. Submission records the
// accepted session; the engine that moves data is a separate process.
type Admin interface {
	SubmitBackup(ctx context.Context, req backups.Request) (string, error)
	DeleteBackups(ctx context.Context, ids []string) (int, error)
	AddToBackupSet(ctx context.Context, name string, tables []backups.TableName) error
	RemoveFromBackupSet(ctx context.Context, name string, tables []backups.TableName) error
	DeleteBackupSet(ctx context.Context, name string) (bool, error)
	ListBackupSets(ctx context.Context) ([]backups.Set, error)
}

// NewBackupID generates a session id. Set-driven sessions carry the set
// name as a prefix, which is what the history set-name filter keys on.
func NewBackupID(setName string) string {
	id := "backup_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	if setName != "" {
		id = setName + "_" + id
	}
	return id
}

type cqlAdmin struct {
	session *gocql.Session
}

func (a *cqlAdmin) SubmitBackup(ctx context.Context, req backups.Request) (string, error) {
	tables := req.Tables
	if req.SetName != "" {
		store := &cqlStore{session: a.session}
		resolved, err := store.DescribeBackupSet(ctx, req.SetName)
		if err != nil {
			return "", err
		}
		if len(resolved) == 0 {
			return "", fmt.Errorf("backup set %q is either empty or does not exist", req.SetName)
		}
		tables = resolved
	}

	id := NewBackupID(req.SetName)
	tableStrings := make([]string, len(tables))
	for i, t := range tables {
		tableStrings[i] = string(t)
	}
	err := a.session.Query(
		`INSERT INTO backup_info (id, backup_type, state, tables, target_root, progress, start_ts, end_ts)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.Type.String(), backups.StateRunning.String(), tableStrings,
		req.TargetRootDir, 0, int64(unixtime.Now()), int64(0),
	).WithContext(ctx).Exec()
	if err != nil {
		return "", err
	}
	return id, nil
}

func (a *cqlAdmin) DeleteBackups(ctx context.Context, ids []string) (int, error) {
	deleted := 0
	for _, id := range ids {
		applied, err := a.session.Query(
			`DELETE FROM backup_info WHERE id = ? IF EXISTS`, id,
		).WithContext(ctx).MapScanCAS(map[string]interface{}{})
		if err != nil {
			return deleted, err
		}
		if applied {
			deleted++
		}
	}
	return deleted, nil
}

func (a *cqlAdmin) AddToBackupSet(ctx context.Context, name string, tables []backups.TableName) error {
	return a.session.Query(
		`UPDATE backup_sets SET tables = tables + ? WHERE name = ?`,
		tableSet(tables), name,
	).WithContext(ctx).Exec()
}

func (a *cqlAdmin) RemoveFromBackupSet(ctx context.Context, name string, tables []backups.TableName) error {
	return a.session.Query(
		`UPDATE backup_sets SET tables = tables - ? WHERE name = ?`,
		tableSet(tables), name,
	).WithContext(ctx).Exec()
}

func (a *cqlAdmin) DeleteBackupSet(ctx context.Context, name string) (bool, error) {
	return a.session.Query(
		`DELETE FROM backup_sets WHERE name = ? IF EXISTS`, name,
	).WithContext(ctx).MapScanCAS(map[string]interface{}{})
}

func (a *cqlAdmin) ListBackupSets(ctx context.Context) ([]backups.Set, error) {
	iter := a.session.Query(`SELECT name, tables FROM backup_sets`).WithContext(ctx).Iter()
	var sets []backups.Set
	var name string
	var tables []string
	for iter.Scan(&name, &tables) {
		set := backups.Set{Name: name}
		for _, t := range tables {
			set.Tables = append(set.Tables, backups.TableName(t))
		}
		sets = append(sets, set)
		tables = nil
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return sets, nil
}

func tableSet(tables []backups.TableName) []string {
	result := make([]string, len(tables))
	for i, t := range tables {
		result[i] = string(t)
	}
	return result
}
