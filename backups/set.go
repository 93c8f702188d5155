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

// Set is a named, persisted grouping of tables, managed independently of
// any single backup session.
type Set struct {
	Name   string
	Tables []TableName
}

func (s Set) String() string {
	return s.Name + "={" + JoinTableNames(s.Tables) + "}"
}
