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

import (
	"errors"
	"fmt"
)

// UsageError covers everything the operator can fix on the next
// invocation: wrong argument counts, unparseable numbers, unknown
// sub-commands, and lookups of ids or sets that do not exist. Failures
// raised by the metadata store or admin pass through untouched.
type UsageError struct {
	Command string
	Reason  string
}

func (e *UsageError) Error() string {
	if e.Reason == "" {
		return "incorrect usage"
	}
	return "incorrect usage: " + e.Reason
}

func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

// failUsage prints the reason and the variant's usage text to stderr,
// then returns the typed error for the runner to map to an exit code.
func failUsage(env *Env, usage, command, format string, args ...interface{}) error {
	reason := fmt.Sprintf(format, args...)
	if reason != "" {
		fmt.Fprintln(env.Stderr, "ERROR: "+reason)
	}
	fmt.Fprintln(env.Stderr, usage)
	return &UsageError{Command: command, Reason: reason}
}
