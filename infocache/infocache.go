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

// Package infocache keeps a local copy of completed backup session
// records so repeated describe/progress lookups do not have to round-trip
// to the metadata store. Only completed sessions are cached: anything
// still running has live progress that must stay fresh.
package infocache

import (
	"context"
	"os"

	"backupctl/backups"
	"backupctl/client"
	"backupctl/metrics"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var bucketName = []byte("backup_info")

type Cache struct {
	db *bbolt.DB
}

func Open(path string, mode os.FileMode) (*Cache, error) {
	db, err := bbolt.Open(path, mode, nil)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

// Get returns nil without error on a miss. A record that no longer
// decodes is treated as a miss rather than an error; the next Put
// overwrites it.
func (c *Cache) Get(id string) (*backups.Info, error) {
	var info *backups.Info
	err := c.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		value := bucket.Get([]byte(id))
		if value == nil {
			return nil
		}
		decoded, err := backups.DecodeManifest(value)
		if err != nil {
			zap.S().Warnw("infocache_bad_record", "id", id, "err", err)
			return nil
		}
		info = &decoded
		return nil
	})
	if err != nil {
		return nil, err
	}
	if info == nil {
		metrics.InfoCache.Misses.Inc()
	} else {
		metrics.InfoCache.Hits.Inc()
	}
	return info, nil
}

func (c *Cache) Put(info backups.Info) error {
	value, err := backups.EncodeManifest(info)
	if err != nil {
		return err
	}
	metrics.InfoCache.Puts.Inc()
	return c.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(info.ID), value)
	})
}

// WrapStore fronts a metadata store with the cache. Null-id lookups
// always hit the store since they resolve to ongoing sessions.
func WrapStore(inner client.Store, cache *Cache) client.Store {
	if cache == nil {
		return inner
	}
	return &cachedStore{inner: inner, cache: cache}
}

type cachedStore struct {
	inner client.Store
	cache *Cache
}

func (s *cachedStore) ReadBackupInfo(ctx context.Context, id string) (*backups.Info, error) {
	if id != "" {
		if info, err := s.cache.Get(id); err != nil {
			return nil, err
		} else if info != nil {
			return info, nil
		}
	}
	info, err := s.inner.ReadBackupInfo(ctx, id)
	if err != nil {
		return nil, err
	}
	if info != nil && info.State == backups.StateComplete {
		if putErr := s.cache.Put(*info); putErr != nil {
			zap.S().Warnw("infocache_put_error", "id", info.ID, "err", putErr)
		}
	}
	return info, nil
}

func (s *cachedStore) DescribeBackupSet(ctx context.Context, name string) ([]backups.TableName, error) {
	return s.inner.DescribeBackupSet(ctx, name)
}

func (s *cachedStore) GetBackupHistory(ctx context.Context, limit int, filters ...backups.Filter) ([]backups.Info, error) {
	return s.inner.GetBackupHistory(ctx, limit, filters...)
}
