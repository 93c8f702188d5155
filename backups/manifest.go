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
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// ManifestFileName is the per-session record the backup engine leaves
// under <root>/<backupId>/. The same encoding doubles as the local cache
// value format.
const ManifestFileName = ".backup.manifest"

func EncodeManifest(info Info) ([]byte, error) {
	return easyjson.Marshal(info)
}

func DecodeManifest(data []byte) (Info, error) {
	var info Info
	err := easyjson.Unmarshal(data, &info)
	return info, err
}

func (i Info) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"id":`)
	w.String(i.ID)
	w.RawString(`,"type":`)
	w.String(i.Type.String())
	w.RawString(`,"state":`)
	w.String(i.State.String())
	w.RawString(`,"tables":[`)
	for n, t := range i.Tables {
		if n > 0 {
			w.RawByte(',')
		}
		w.String(string(t))
	}
	w.RawString(`],"target_root_dir":`)
	w.String(i.TargetRootDir)
	w.RawString(`,"progress":`)
	w.Int(i.Progress)
	w.RawString(`,"start_time":`)
	i.StartTime.MarshalEasyJSON(w)
	w.RawString(`,"end_time":`)
	i.EndTime.MarshalEasyJSON(w)
	w.RawByte('}')
}

func (i *Info) UnmarshalEasyJSON(l *jlexer.Lexer) {
	isTopLevel := l.IsStart()
	if l.IsNull() {
		if isTopLevel {
			l.Consumed()
		}
		l.Skip()
		return
	}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		if l.IsNull() {
			l.Skip()
			l.WantComma()
			continue
		}
		switch key {
		case "id":
			i.ID = l.String()
		case "type":
			t, err := ParseType(l.String())
			if err != nil {
				l.AddNonFatalError(err)
			} else {
				i.Type = t
			}
		case "state":
			s, err := ParseState(l.String())
			if err != nil {
				l.AddNonFatalError(err)
			} else {
				i.State = s
			}
		case "tables":
			i.Tables = nil
			l.Delim('[')
			for !l.IsDelim(']') {
				i.Tables = append(i.Tables, TableName(l.String()))
				l.WantComma()
			}
			l.Delim(']')
		case "target_root_dir":
			i.TargetRootDir = l.String()
		case "progress":
			i.Progress = l.Int()
		case "start_time":
			i.StartTime.UnmarshalEasyJSON(l)
		case "end_time":
			i.EndTime.UnmarshalEasyJSON(l)
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	if isTopLevel {
		l.Consumed()
	}
}
