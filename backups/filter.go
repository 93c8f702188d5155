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
	"sort"
	"strings"
)

// Filter narrows a history query. All filters must accept an Info for it
// to be returned.
type Filter func(Info) bool

// TableFilter accepts sessions that include the given table. The zero
// value accepts everything.
func TableFilter(name TableName) Filter {
	return func(info Info) bool {
		if name == "" {
			return true
		}
		for _, t := range info.Tables {
			if t == name {
				return true
			}
		}
		return false
	}
}

// SetNameFilter accepts sessions whose backup id carries the given set
// name prefix. Empty accepts everything.
func SetNameFilter(setName string) Filter {
	return func(info Info) bool {
		if setName == "" {
			return true
		}
		return strings.HasPrefix(info.ID, setName)
	}
}

// SelectHistory applies filters to a session list, orders it most recent
// first, and caps it at limit entries. The input slice is not modified.
func SelectHistory(infos []Info, limit int, filters ...Filter) []Info {
	selected := make([]Info, 0, len(infos))
outer:
	for _, info := range infos {
		for _, filter := range filters {
			if !filter(info) {
				continue outer
			}
		}
		selected = append(selected, info)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].StartTime > selected[j].StartTime
	})
	if limit >= 0 && len(selected) > limit {
		selected = selected[:limit]
	}
	return selected
}
