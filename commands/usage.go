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

package commands

const TopUsage = `Usage: backupctl COMMAND [command-specific arguments]
where COMMAND is one of:
  create          Create a new backup image
  delete          Delete an existing backup image
  describe        Show detailed information of a backup image
  history         Show history of all successful backups
  progress        Show the progress of the latest backup request
  set             Backup set management
Run 'backupctl COMMAND -h' to see help message for each command`

const createUsage = `Usage: backupctl create <type> <backup_root> [tables] [--set name] [-w workers] [-b bandwidth]
  type            "full" to create a full backup image
                  "incremental" to create an incremental backup image
  backup_root     Full path to store the backup image
Options:
  tables          Comma separated list of tables. If no tables are
                  specified, all tables are backed up.
  -w              Number of parallel workers
  -b              Bandwidth per worker in MB/s
  --set           Name of backup set to use (mutually exclusive with [tables])`

const describeUsage = `Usage: backupctl describe <backupId>
  backupId        Backup session id`

const progressUsage = `Usage: backupctl progress [<backupId>]
  backupId        Backup session id. If no id is specified, the most
                  recent ongoing session is used.`

const deleteUsage = `Usage: backupctl delete <backupId> [<backupId>...]
  backupId        Backup session id`

const cancelUsage = `Usage: backupctl cancel [<backupId>]
  backupId        Backup session id`

const historyUsage = `Usage: backupctl history [--path BACKUP_ROOT] [-n N] [-t table] [--set name]
  -n N            Show up to N last backup sessions, default 10
  --path          Backup root path (directory or s3://bucket/prefix)
  -t table        Show only backup sessions which contain this table
  --set           Show only backup sessions started from this set`

const setUsage = `Usage: backupctl set COMMAND [name] [tables]
  name            Backup set name
  tables          Comma separated list of tables
COMMAND is one of:
  add             Add tables to a set, create the set if needed
  remove          Remove tables from a set
  list            List all backup sets in the system
  describe        Describe backup set
  delete          Delete backup set`

var usageByCommand = map[string]string{
	"create":   createUsage,
	"describe": describeUsage,
	"progress": progressUsage,
	"delete":   deleteUsage,
	"cancel":   cancelUsage,
	"history":  historyUsage,
	"set":      setUsage,
}
