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
	"errors"

	"backupctl/backups"
	"backupctl/unixtime"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
)

// Store exposes the read side of the backup metadata.
type Store interface {
	// ReadBackupInfo returns nil without error when no session matches.
	// An empty id resolves to the most recently started session that is
	// still running.
	ReadBackupInfo(ctx context.Context, id string) (*backups.Info, error)

	// DescribeBackupSet returns nil when the set does not exist and an
	// empty non-nil slice when it exists with no tables.
	DescribeBackupSet(ctx context.Context, name string) ([]backups.TableName, error)

	GetBackupHistory(ctx context.Context, limit int, filters ...backups.Filter) ([]backups.Info, error)
}

type cqlStore struct {
	session *gocql.Session
}

const selectInfoColumns = `SELECT id, backup_type, state, tables, target_root, progress, start_ts, end_ts FROM backup_info`

func (s *cqlStore) ReadBackupInfo(ctx context.Context, id string) (*backups.Info, error) {
	if id == "" {
		return s.mostRecentRunning(ctx)
	}

	var row infoRow
	err := s.session.Query(selectInfoColumns+` WHERE id = ?`, id).
		WithContext(ctx).
		Scan(row.dests()...)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	info, err := row.info()
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *cqlStore) mostRecentRunning(ctx context.Context) (*backups.Info, error) {
	infos, err := s.scanAll(ctx)
	if err != nil {
		return nil, err
	}
	var latest *backups.Info
	for i := range infos {
		if infos[i].State != backups.StateRunning {
			continue
		}
		if latest == nil || infos[i].StartTime > latest.StartTime {
			latest = &infos[i]
		}
	}
	return latest, nil
}

func (s *cqlStore) DescribeBackupSet(ctx context.Context, name string) ([]backups.TableName, error) {
	var tables []string
	err := s.session.Query(`SELECT tables FROM backup_sets WHERE name = ?`, name).
		WithContext(ctx).
		Scan(&tables)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	result := make([]backups.TableName, 0, len(tables))
	for _, t := range tables {
		result = append(result, backups.TableName(t))
	}
	return result, nil
}

func (s *cqlStore) GetBackupHistory(ctx context.Context, limit int, filters ...backups.Filter) ([]backups.Info, error) {
	infos, err := s.scanAll(ctx)
	if err != nil {
		return nil, err
	}
	return backups.SelectHistory(infos, limit, filters...), nil
}

// The backup_info table stays small (one row per retained session), so
// history and null-id lookups scan it rather than maintaining an index.
func (s *cqlStore) scanAll(ctx context.Context) ([]backups.Info, error) {
	iter := s.session.Query(selectInfoColumns).WithContext(ctx).Iter()
	var infos []backups.Info
	var row infoRow
	for iter.Scan(row.dests()...) {
		info, err := row.info()
		if err != nil {
			_ = iter.Close()
			return nil, err
		}
		infos = append(infos, info)
		row = infoRow{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return infos, nil
}

type infoRow struct {
	id         string
	backupType string
	state      string
	tables     []string
	targetRoot string
	progress   int
	startTs    int64
	endTs      int64
}

func (r *infoRow) dests() []interface{} {
	return []interface{}{
		&r.id, &r.backupType, &r.state, &r.tables,
		&r.targetRoot, &r.progress, &r.startTs, &r.endTs,
	}
}

func (r *infoRow) info() (backups.Info, error) {
	backupType, err := backups.ParseType(r.backupType)
	if err != nil {
		return backups.Info{}, err
	}
	state, err := backups.ParseState(r.state)
	if err != nil {
		return backups.Info{}, err
	}
	info := backups.Info{
		ID:            r.id,
		Type:          backupType,
		State:         state,
		TargetRootDir: r.targetRoot,
		Progress:      r.progress,
		StartTime:     unixtime.Seconds(r.startTs),
		EndTime:       unixtime.Seconds(r.endTs),
	}
	for _, t := range r.tables {
		info.Tables = append(info.Tables, backups.TableName(t))
	}
	return info, nil
}
