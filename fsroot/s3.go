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
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"backupctl/backups"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

func parseS3Root(root string) (bucket, prefix string, err error) {
	u, parseErr := url.Parse(root)
	if parseErr != nil {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidRoot, root)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidRoot, root)
	}
	prefix = strings.Trim(u.Path, "/")
	if prefix != "" {
		prefix += "/"
	}
	return u.Host, prefix, nil
}

func s3History(ctx context.Context, bucket, prefix string, limit int, filters ...backups.Filter) ([]backups.Info, error) {
	lgr := zap.S()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	svc := s3.NewFromConfig(awsCfg)

	paginator := s3.NewListObjectsV2Paginator(svc, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})

	var infos []backups.Info
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if path.Base(key) != backups.ManifestFileName {
				continue
			}
			info, err := getManifest(ctx, svc, bucket, key)
			if err != nil {
				if isNoSuchKey(err) {
					// Session deleted between list and get.
					lgr.Debugw("fsroot_manifest_vanished", "key", key)
					continue
				}
				return nil, err
			}
			infos = append(infos, info)
		}
	}
	return backups.SelectHistory(infos, limit, filters...), nil
}

func getManifest(ctx context.Context, svc *s3.Client, bucket, key string) (backups.Info, error) {
	lgr := zap.S()
	out, err := svc.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return backups.Info{}, err
	}
	defer func() {
		if closeErr := out.Body.Close(); closeErr != nil {
			lgr.Errorw("fsroot_manifest_close_error", "key", key, "err", closeErr)
		}
	}()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return backups.Info{}, err
	}
	return backups.DecodeManifest(data)
}

func isNoSuchKey(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "NoSuchKey"
	}
	return false
}
