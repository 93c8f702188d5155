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

	"backupctl/unixtime"

	"go.uber.org/zap/zapcore"
)

type State int

const (
	StateRunning State = iota
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StateComplete:
		return "COMPLETE"
	case StateFailed:
		return "FAILED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func ParseState(value string) (State, error) {
	switch strings.ToUpper(value) {
	case "RUNNING":
		return StateRunning, nil
	case "COMPLETE":
		return StateComplete, nil
	case "FAILED":
		return StateFailed, nil
	}
	return 0, fmt.Errorf("invalid backup state %q", value)
}

// Info is a read-only snapshot of one backup session as recorded by the
// metadata store.
type Info struct {
	ID            string
	Type          Type
	State         State
	Tables        []TableName
	TargetRootDir string
	Progress      int
	StartTime     unixtime.Seconds
	EndTime       unixtime.Seconds
}

func (i Info) ShortDescription() string {
	var sb strings.Builder
	sb.WriteString("{ID=")
	sb.WriteString(i.ID)
	sb.WriteString(",Type=")
	sb.WriteString(i.Type.String())
	sb.WriteString(",Tables={")
	sb.WriteString(JoinTableNames(i.Tables))
	sb.WriteString("},State=")
	sb.WriteString(i.State.String())
	sb.WriteString(",Start time=")
	sb.WriteString(i.StartTime.String())
	if i.EndTime != 0 {
		sb.WriteString(",End time=")
		sb.WriteString(i.EndTime.String())
	}
	fmt.Fprintf(&sb, ",Progress=%d%%}", i.Progress)
	return sb.String()
}

func (i Info) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("id", i.ID)
	enc.AddString("type", i.Type.String())
	enc.AddString("state", i.State.String())
	enc.AddInt("progress", i.Progress)
	return nil
}
