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

// Package fsroot reads backup history straight from a backup root,
// bypassing the metadata store. The engine leaves one manifest per
// session at <root>/<backupId>/.backup.manifest; roots may be local
// directories or s3://bucket/prefix locations.
package fsroot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"backupctl/backups"

	"go.uber.org/zap"
)

// ErrInvalidRoot marks a root that could not be understood as a
// location, as opposed to one that failed to read.
var ErrInvalidRoot = errors.New("invalid backup root path")

func GetHistory(ctx context.Context, root string, limit int, filters ...backups.Filter) ([]backups.Info, error) {
	if root == "" {
		return nil, ErrInvalidRoot
	}
	if strings.Contains(root, "://") {
		bucket, prefix, err := parseS3Root(root)
		if err != nil {
			return nil, err
		}
		return s3History(ctx, bucket, prefix, limit, filters...)
	}
	return dirHistory(root, limit, filters...)
}

func dirHistory(root string, limit int, filters ...backups.Filter) ([]backups.Info, error) {
	lgr := zap.S()
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var infos []backups.Info
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifestPath := filepath.Join(root, entry.Name(), backups.ManifestFileName)
		data, err := os.ReadFile(manifestPath)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		info, err := backups.DecodeManifest(data)
		if err != nil {
			lgr.Warnw("fsroot_ignoring_bad_manifest", "path", manifestPath, "err", err)
			continue
		}
		infos = append(infos, info)
	}
	return backups.SelectHistory(infos, limit, filters...), nil
}
