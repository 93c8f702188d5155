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

type Type int

const (
	TypeFull Type = iota
	TypeIncremental
)

func (t Type) String() string {
	switch t {
	case TypeFull:
		return "FULL"
	case TypeIncremental:
		return "INCREMENTAL"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func ParseType(value string) (Type, error) {
	switch strings.ToUpper(value) {
	case "FULL":
		return TypeFull, nil
	case "INCREMENTAL":
		return TypeIncremental, nil
	}
	return 0, fmt.Errorf("invalid backup type %q", value)
}

// Request describes one backup submission. Tables and SetName are mutually
// exclusive: a set-driven request carries only the set name and the admin
// resolves it against the metadata store, a table-driven request carries
// only the table list. Both empty means all tables.
type Request struct {
	Type          Type
	Tables        []TableName
	TargetRootDir string
	Workers       int
	Bandwidth     int
	SetName       string
}
