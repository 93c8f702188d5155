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
	"sort"
	"sync"

	"backupctl/backups"
	"backupctl/unixtime"
)

// Fake is an in-memory Connection/Admin/Store implementation for unit
// tests. Set mutations follow CQL set semantics (unordered, deduplicated;
// removing the last table leaves an empty set behind).
type Fake struct {
	mu    sync.Mutex
	Infos map[string]backups.Info
	Sets  map[string][]backups.TableName

	SubmittedRequests []backups.Request
	DeleteRequests    [][]string

	NextID     string
	ConnectErr error
	SubmitErr  error

	nextStart unixtime.Seconds
}

func NewFake() *Fake {
	return &Fake{
		Infos: map[string]backups.Info{},
		Sets:  map[string][]backups.TableName{},
	}
}

// Connect satisfies ConnectFunc.
func (f *Fake) Connect(ctx context.Context, cfg *Config) (Connection, error) {
	if f.ConnectErr != nil {
		return nil, f.ConnectErr
	}
	return &fakeConnection{fake: f}, nil
}

type fakeConnection struct {
	fake *Fake
}

func (c *fakeConnection) Admin() Admin { return c.fake }
func (c *fakeConnection) Store() Store { return c.fake }
func (c *fakeConnection) Close()       {}

func (f *Fake) SubmitBackup(ctx context.Context, req backups.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.SubmittedRequests = append(f.SubmittedRequests, req)
	if f.SubmitErr != nil {
		return "", f.SubmitErr
	}

	tables := req.Tables
	if req.SetName != "" {
		resolved, ok := f.Sets[req.SetName]
		if !ok || len(resolved) == 0 {
			return "", fmt.Errorf("backup set %q is either empty or does not exist", req.SetName)
		}
		tables = append([]backups.TableName(nil), resolved...)
	}

	id := f.NextID
	if id == "" {
		id = NewBackupID(req.SetName)
	}
	f.nextStart++
	f.Infos[id] = backups.Info{
		ID:            id,
		Type:          req.Type,
		State:         backups.StateRunning,
		Tables:        tables,
		TargetRootDir: req.TargetRootDir,
		StartTime:     f.nextStart,
	}
	return id, nil
}

func (f *Fake) DeleteBackups(ctx context.Context, ids []string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.DeleteRequests = append(f.DeleteRequests, append([]string(nil), ids...))
	deleted := 0
	for _, id := range ids {
		if _, ok := f.Infos[id]; ok {
			delete(f.Infos, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *Fake) AddToBackupSet(ctx context.Context, name string, tables []backups.TableName) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing := f.Sets[name]
	for _, t := range tables {
		found := false
		for _, e := range existing {
			if e == t {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, t)
		}
	}
	sort.Slice(existing, func(i, j int) bool { return existing[i] < existing[j] })
	f.Sets[name] = existing
	return nil
}

func (f *Fake) RemoveFromBackupSet(ctx context.Context, name string, tables []backups.TableName) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.Sets[name]
	if !ok {
		return nil
	}
	remaining := existing[:0]
	for _, e := range existing {
		keep := true
		for _, t := range tables {
			if e == t {
				keep = false
				break
			}
		}
		if keep {
			remaining = append(remaining, e)
		}
	}
	f.Sets[name] = remaining
	return nil
}

func (f *Fake) DeleteBackupSet(ctx context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.Sets[name]; !ok {
		return false, nil
	}
	delete(f.Sets, name)
	return true, nil
}

func (f *Fake) ListBackupSets(ctx context.Context) ([]backups.Set, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sets := make([]backups.Set, 0, len(f.Sets))
	for name, tables := range f.Sets {
		sets = append(sets, backups.Set{Name: name, Tables: append([]backups.TableName(nil), tables...)})
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Name < sets[j].Name })
	return sets, nil
}

func (f *Fake) ReadBackupInfo(ctx context.Context, id string) (*backups.Info, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id == "" {
		var latest *backups.Info
		for key := range f.Infos {
			info := f.Infos[key]
			if info.State != backups.StateRunning {
				continue
			}
			if latest == nil || info.StartTime > latest.StartTime {
				latest = &info
			}
		}
		return latest, nil
	}
	if info, ok := f.Infos[id]; ok {
		return &info, nil
	}
	return nil, nil
}

func (f *Fake) DescribeBackupSet(ctx context.Context, name string) ([]backups.TableName, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tables, ok := f.Sets[name]
	if !ok {
		return nil, nil
	}
	return append(make([]backups.TableName, 0, len(tables)), tables...), nil
}

func (f *Fake) GetBackupHistory(ctx context.Context, limit int, filters ...backups.Filter) ([]backups.Info, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	infos := make([]backups.Info, 0, len(f.Infos))
	for _, info := range f.Infos {
		infos = append(infos, info)
	}
	return backups.SelectHistory(infos, limit, filters...), nil
}
