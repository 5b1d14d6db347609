// Copyright 2025 by Harald Albrecht
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package envini

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isBlank returns true if the line is empty or consists only of whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isComment returns true if the (trimmed) line starts with either a “;” or a
// “#”.
func isComment(line string) bool {
	return line != "" && (line[0] == ';' || line[0] == '#')
}

// isSectionHeader returns true if the (trimmed) line starts with “[” and ends
// with “]”.
func isSectionHeader(line string) bool {
	return len(line) >= 2 && line[0] == '[' && line[len(line)-1] == ']'
}

// continuationPending returns true if the (trimmed) line ends in a backslash,
// so the value continues on the next line.
func continuationPending(line string) bool {
	return line != "" && line[len(line)-1] == '\\'
}

// startsWithWhitespace returns true if the raw, untrimmed line starts with a
// whitespace character.
func startsWithWhitespace(raw string) bool {
	r, size := utf8.DecodeRuneInString(raw)
	return size > 0 && unicode.IsSpace(r)
}

// sectionName returns the name enclosed in the specified section header line,
// with whitespace and a single pair of enclosing double quotes removed.
func sectionName(header string) string {
	name := strings.TrimSpace(header[1 : len(header)-1])
	if len(name) >= 2 && name[0] == '"' && name[len(name)-1] == '"' {
		name = name[1 : len(name)-1]
	}
	return name
}

// splitKeyValue splits a (trimmed) content line at its first “=” into the
// trimmed key and value. If there is no “=” then the whole line is the key and
// hasValue is false.
func splitKeyValue(line string) (key string, value string, hasValue bool) {
	key, value, hasValue = strings.Cut(line, "=")
	if !hasValue {
		return line, "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}
