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
	"fmt"
	"strings"
)

// TableName is a validated table identifier, optionally qualified with a
// keyspace as "keyspace.table".
type TableName string

func ParseTableName(value string) (TableName, error) {
	if value == "" {
		return "", fmt.Errorf("empty table name")
	}
	parts := strings.Split(value, ".")
	if len(parts) > 2 {
		return "", fmt.Errorf("invalid table name %q", value)
	}
	for _, part := range parts {
		if !validIdentifier(part) {
			return "", fmt.Errorf("invalid table name %q", value)
		}
	}
	return TableName(value), nil
}

func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// ParseTableNames splits a comma separated table list. Blank entries are
// rejected rather than skipped so that typos like "t1,,t2" surface.
func ParseTableNames(value string) ([]TableName, error) {
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	names := make([]TableName, 0, len(parts))
	for _, part := range parts {
		name, err := ParseTableName(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func JoinTableNames(names []TableName) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = string(name)
	}
	return strings.Join(parts, ",")
}
